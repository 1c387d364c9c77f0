package dashboard

import (
	"context"
	"time"

	"github.com/wichananm65/drink-shop-backend/internal/order"
)

// OrderListRepository aggregates by scanning an order repository. It backs
// tests and small local setups; production uses the SQL aggregation.
type OrderListRepository struct {
	orders order.Repository
}

func NewOrderListRepository(orders order.Repository) *OrderListRepository {
	return &OrderListRepository{orders: orders}
}

func (r *OrderListRepository) DeliveredBetween(_ context.Context, from, to time.Time) (WindowStats, error) {
	all, err := r.orders.ListAll()
	if err != nil {
		return WindowStats{}, err
	}

	stats := WindowStats{}
	for _, ord := range all {
		if ord.Status != order.StatusDelivered {
			continue
		}
		if ord.CreatedAt.Before(from) || ord.CreatedAt.After(to) {
			continue
		}
		stats.Revenue += ord.Total
		stats.Orders++
	}
	return stats, nil
}

func (r *OrderListRepository) CountByStatus(_ context.Context) (map[order.Status]int, error) {
	all, err := r.orders.ListAll()
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int)
	for _, ord := range all {
		counts[ord.Status]++
	}
	return counts, nil
}
