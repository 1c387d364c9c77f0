package order

import (
	"database/sql"
	"errors"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	insertOrderQuery = `
		INSERT INTO orders (order_number, user_id, total, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING order_id
	`
	insertOrderItemQuery = `
		INSERT INTO order_item (order_id, drink_id, drink_name, unit_price, quantity, ice_level, sugar_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	insertHistoryQuery = `
		INSERT INTO order_history (order_id, action, actor, created_at)
		VALUES ($1, $2, $3, $4)
	`
	getOrderQuery = `
		SELECT order_id, order_number, user_id, total, status, version, created_at, updated_at
		FROM orders
		WHERE order_id = $1
	`
	listOrdersByUserQuery = `
		SELECT order_id, order_number, user_id, total, status, version, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	listAllOrdersQuery = `
		SELECT order_id, order_number, user_id, total, status, version, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`
	listOrderItemsQuery = `
		SELECT drink_id, drink_name, unit_price, quantity, ice_level, sugar_level
		FROM order_item
		WHERE order_id = $1
		ORDER BY order_item_id
	`
	listHistoryQuery = `
		SELECT created_at, action, actor
		FROM order_history
		WHERE order_id = $1
		ORDER BY history_id
	`
	updateStatusQuery = `
		UPDATE orders
		SET status = $1, version = version + 1, updated_at = $2
		WHERE order_id = $3 AND version = $4
	`
)

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, fmt.Errorf("begin create order: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(insertOrderQuery,
		ord.Number, ord.UserID, ord.Total, string(ord.Status), ord.Version, ord.CreatedAt, ord.UpdatedAt,
	).Scan(&ord.ID)
	if err != nil {
		return Order{}, fmt.Errorf("insert order: %w", err)
	}

	for _, it := range ord.Items {
		if _, err := tx.Exec(insertOrderItemQuery,
			ord.ID, it.DrinkID, it.DrinkName, it.UnitPrice, it.Quantity, it.IceLevel, it.SugarLevel,
		); err != nil {
			return Order{}, fmt.Errorf("insert order item: %w", err)
		}
	}

	for _, entry := range ord.History {
		if _, err := tx.Exec(insertHistoryQuery, ord.ID, entry.Action, entry.Actor, entry.At); err != nil {
			return Order{}, fmt.Errorf("insert order history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, fmt.Errorf("commit create order: %w", err)
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	ord, err := r.scanOrderRow(r.db.QueryRow(getOrderQuery, id))
	if err != nil {
		return Order{}, err
	}
	if err := r.attachDetails(&ord); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	return r.listOrders(listOrdersByUserQuery, userID)
}

func (r *PostgresRepository) ListAll() ([]Order, error) {
	return r.listOrders(listAllOrdersQuery)
}

func (r *PostgresRepository) UpdateStatus(id int, fromVersion int, to Status, entry HistoryEntry) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, fmt.Errorf("begin status update: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(updateStatusQuery, string(to), entry.At, id, fromVersion)
	if err != nil {
		return Order{}, fmt.Errorf("update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Order{}, fmt.Errorf("update status: %w", err)
	}
	if n == 0 {
		// either the order is gone or someone else advanced it first
		var exists bool
		if err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM orders WHERE order_id = $1)`, id).Scan(&exists); err != nil {
			return Order{}, fmt.Errorf("check order exists: %w", err)
		}
		if !exists {
			return Order{}, ErrNotFound
		}
		return Order{}, ErrVersionConflict
	}

	if _, err := tx.Exec(insertHistoryQuery, id, entry.Action, entry.Actor, entry.At); err != nil {
		return Order{}, fmt.Errorf("insert order history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Order{}, fmt.Errorf("commit status update: %w", err)
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) listOrders(query string, args ...any) ([]Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := r.scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	for i := range orders {
		if err := r.attachDetails(&orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) scanOrderRow(scanner rowScanner) (Order, error) {
	ord := Order{}
	var status string
	err := scanner.Scan(&ord.ID, &ord.Number, &ord.UserID, &ord.Total, &status, &ord.Version, &ord.CreatedAt, &ord.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, fmt.Errorf("scan order: %w", err)
	}
	ord.Status = Status(status)
	return ord, nil
}

func (r *PostgresRepository) attachDetails(ord *Order) error {
	rows, err := r.db.Query(listOrderItemsQuery, ord.ID)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		it := Item{}
		if err := rows.Scan(&it.DrinkID, &it.DrinkName, &it.UnitPrice, &it.Quantity, &it.IceLevel, &it.SugarLevel); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		ord.Items = append(ord.Items, it)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list order items: %w", err)
	}

	histRows, err := r.db.Query(listHistoryQuery, ord.ID)
	if err != nil {
		return fmt.Errorf("list order history: %w", err)
	}
	defer histRows.Close()
	for histRows.Next() {
		entry := HistoryEntry{}
		if err := histRows.Scan(&entry.At, &entry.Action, &entry.Actor); err != nil {
			return fmt.Errorf("scan order history: %w", err)
		}
		ord.History = append(ord.History, entry)
	}
	return histRows.Err()
}
