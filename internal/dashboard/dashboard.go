// Package dashboard aggregates delivered-order revenue for the admin view
// and keeps it fresh with a periodic refresh tied to an explicit
// start/stop lifecycle.
package dashboard

import (
	"context"
	"time"

	"github.com/wichananm65/drink-shop-backend/internal/order"
)

// WindowStats is the revenue of one time window. Only delivered orders
// count: cancelled and in-flight orders contribute to neither the revenue
// nor the order count.
type WindowStats struct {
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// Summary is the whole dashboard payload.
type Summary struct {
	Today       WindowStats          `json:"today"`
	ThisWeek    WindowStats          `json:"thisWeek"`
	ThisMonth   WindowStats          `json:"thisMonth"`
	ByStatus    map[order.Status]int `json:"byStatus"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// Repository provides the two aggregation queries the dashboard needs.
type Repository interface {
	// DeliveredBetween sums total and counts orders with the delivered
	// status created inside [from, to].
	DeliveredBetween(ctx context.Context, from, to time.Time) (WindowStats, error)
	// CountByStatus counts all orders grouped by status.
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}
