package dashboard

import (
	"context"
	"database/sql"
	"time"

	"github.com/wichananm65/drink-shop-backend/internal/order"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	deliveredBetweenQuery = `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM orders
		WHERE status = $1 AND created_at BETWEEN $2 AND $3
	`
	countByStatusQuery = `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`
)

func (r *PostgresRepository) DeliveredBetween(ctx context.Context, from, to time.Time) (WindowStats, error) {
	stats := WindowStats{}
	err := r.db.QueryRowContext(ctx, deliveredBetweenQuery, string(order.StatusDelivered), from, to).
		Scan(&stats.Revenue, &stats.Orders)
	if err != nil {
		return WindowStats{}, err
	}
	return stats, nil
}

func (r *PostgresRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	rows, err := r.db.QueryContext(ctx, countByStatusQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[order.Status(status)] = n
	}
	return counts, rows.Err()
}
