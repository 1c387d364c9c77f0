package drink

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	drinkColumns = `drink_id, drink_name, category_id, price, description, image_url, quantity, active, created_at, updated_at`

	insertDrinkQuery = `
		INSERT INTO drink (drink_name, category_id, price, description, image_url, quantity, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING drink_id
	`
	updateDrinkQuery = `
		UPDATE drink
		SET drink_name = $1,
			category_id = $2,
			price = $3,
			description = $4,
			image_url = $5,
			quantity = $6,
			active = $7,
			updated_at = $8
		WHERE drink_id = $9
	`
	deleteDrinkQuery = `DELETE FROM drink WHERE drink_id = $1`
)

func (r *PostgresRepository) List(activeOnly bool) ([]Drink, error) {
	query := `SELECT ` + drinkColumns + ` FROM drink`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY drink_id`
	return r.queryDrinks(query)
}

func (r *PostgresRepository) ListByCategory(categoryID int, activeOnly bool) ([]Drink, error) {
	query := `SELECT ` + drinkColumns + ` FROM drink WHERE category_id = $1`
	if activeOnly {
		query += ` AND active`
	}
	query += ` ORDER BY drink_id`
	return r.queryDrinks(query, categoryID)
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Drink, error) {
	if len(ids) == 0 {
		return []Drink{}, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := `SELECT ` + drinkColumns + ` FROM drink WHERE drink_id IN (` + strings.Join(placeholders, ",") + `)`
	return r.queryDrinks(query, args...)
}

func (r *PostgresRepository) GetByID(id int) (Drink, error) {
	d, err := scanDrink(r.db.QueryRow(`SELECT `+drinkColumns+` FROM drink WHERE drink_id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Drink{}, ErrNotFound
	}
	return d, err
}

func (r *PostgresRepository) Create(d Drink) (Drink, error) {
	err := r.db.QueryRow(insertDrinkQuery,
		d.Name, d.CategoryID, d.Price, d.Description, d.ImageURL, d.Quantity, d.Active, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		return Drink{}, err
	}
	return d, nil
}

func (r *PostgresRepository) Update(id int, d Drink) (Drink, error) {
	res, err := r.db.Exec(updateDrinkQuery,
		d.Name, d.CategoryID, d.Price, d.Description, d.ImageURL, d.Quantity, d.Active, d.UpdatedAt, id,
	)
	if err != nil {
		return Drink{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Drink{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteDrinkQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) queryDrinks(query string, args ...any) ([]Drink, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drinks := make([]Drink, 0)
	for rows.Next() {
		d, err := scanDrink(rows)
		if err != nil {
			return nil, err
		}
		drinks = append(drinks, d)
	}
	return drinks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDrink(scanner rowScanner) (Drink, error) {
	d := Drink{}
	var categoryID sql.NullInt64
	var imageURL sql.NullString
	err := scanner.Scan(
		&d.ID,
		&d.Name,
		&categoryID,
		&d.Price,
		&d.Description,
		&imageURL,
		&d.Quantity,
		&d.Active,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return Drink{}, err
	}
	if categoryID.Valid {
		v := int(categoryID.Int64)
		d.CategoryID = &v
	}
	if imageURL.Valid {
		d.ImageURL = &imageURL.String
	}
	return d, nil
}
