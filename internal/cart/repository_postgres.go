package cart

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	upsertCartItemQuery = `
		INSERT INTO cart_item (user_id, drink_id, quantity, ice_level, sugar_level)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, drink_id, ice_level, sugar_level)
		DO UPDATE SET quantity = cart_item.quantity + EXCLUDED.quantity
	`
	getCartQuery = `
		SELECT drink_id, quantity, ice_level, sugar_level
		FROM cart_item
		WHERE user_id = $1
		ORDER BY cart_item_id
	`
	setQuantityQuery = `
		UPDATE cart_item
		SET quantity = $1
		WHERE user_id = $2 AND drink_id = $3 AND ice_level = $4 AND sugar_level = $5
	`
	removeCartItemQuery = `
		DELETE FROM cart_item
		WHERE user_id = $1 AND drink_id = $2 AND ice_level = $3 AND sugar_level = $4
	`
	clearCartQuery = `DELETE FROM cart_item WHERE user_id = $1`
)

func (r *PostgresRepository) Add(userID int, item Item) error {
	_, err := r.db.Exec(upsertCartItemQuery, userID, item.DrinkID, item.Quantity, item.IceLevel, item.SugarLevel)
	return err
}

func (r *PostgresRepository) Get(userID int) ([]Item, error) {
	rows, err := r.db.Query(getCartQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		it := Item{}
		if err := rows.Scan(&it.DrinkID, &it.Quantity, &it.IceLevel, &it.SugarLevel); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) SetQuantity(userID int, item Item) error {
	if item.Quantity <= 0 {
		return r.Remove(userID, item)
	}
	res, err := r.db.Exec(setQuantityQuery, item.Quantity, userID, item.DrinkID, item.IceLevel, item.SugarLevel)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Remove(userID int, item Item) error {
	res, err := r.db.Exec(removeCartItemQuery, userID, item.DrinkID, item.IceLevel, item.SugarLevel)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Clear(userID int) error {
	_, err := r.db.Exec(clearCartQuery, userID)
	return err
}
