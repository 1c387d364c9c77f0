// Package db opens the Postgres connection and bootstraps the schema the
// way the service expects it. Tables are created on startup when missing so
// a fresh database works without a separate migration step.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open connects to Postgres using the pgx stdlib driver and verifies the
// connection with a ping.
func Open(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return conn, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'customer',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS category (
		category_id SERIAL PRIMARY KEY,
		category_name TEXT NOT NULL,
		category_img TEXT,
		ord INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS drink (
		drink_id SERIAL PRIMARY KEY,
		drink_name TEXT NOT NULL,
		category_id INT REFERENCES category (category_id),
		price NUMERIC NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT,
		quantity INT NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cart_item (
		cart_item_id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users (user_id),
		drink_id INT NOT NULL REFERENCES drink (drink_id),
		quantity INT NOT NULL,
		ice_level TEXT NOT NULL DEFAULT '',
		sugar_level TEXT NOT NULL DEFAULT '',
		UNIQUE (user_id, drink_id, ice_level, sugar_level)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id SERIAL PRIMARY KEY,
		order_number TEXT NOT NULL UNIQUE,
		user_id INT NOT NULL REFERENCES users (user_id),
		total NUMERIC NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		version INT NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_item (
		order_item_id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders (order_id),
		drink_id INT NOT NULL,
		drink_name TEXT NOT NULL,
		unit_price NUMERIC NOT NULL,
		quantity INT NOT NULL,
		ice_level TEXT NOT NULL DEFAULT '',
		sugar_level TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS order_history (
		history_id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders (order_id),
		action TEXT NOT NULL,
		actor TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS review (
		review_id SERIAL PRIMARY KEY,
		drink_id INT NOT NULL REFERENCES drink (drink_id),
		user_id INT NOT NULL REFERENCES users (user_id),
		rating INT NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS favorite (
		user_id INT NOT NULL REFERENCES users (user_id),
		drink_id INT NOT NULL REFERENCES drink (drink_id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, drink_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status_created_at ON orders (status, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders (user_id)`,
}

// EnsureSchema creates any missing tables and indexes.
func EnsureSchema(conn *sql.DB) error {
	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
