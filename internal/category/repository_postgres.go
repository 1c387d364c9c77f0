package category

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	listCategoriesQuery = `
		SELECT category_id, category_name, category_img, ord
		FROM category
		ORDER BY ord DESC, category_id
	`
	getCategoryQuery    = `SELECT category_id, category_name, category_img, ord FROM category WHERE category_id = $1`
	insertCategoryQuery = `INSERT INTO category (category_name, category_img, ord) VALUES ($1, $2, $3) RETURNING category_id`
	updateCategoryQuery = `UPDATE category SET category_name = $1, category_img = $2, ord = $3 WHERE category_id = $4`
	deleteCategoryQuery = `DELETE FROM category WHERE category_id = $1`
)

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Category, error) {
	c, err := scanCategory(r.db.QueryRow(getCategoryQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, ErrNotFound
	}
	return c, err
}

func (r *PostgresRepository) Create(c Category) (Category, error) {
	err := r.db.QueryRow(insertCategoryQuery, c.Name, c.ImageURL, c.Ord).Scan(&c.ID)
	if err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Update(id int, c Category) (Category, error) {
	res, err := r.db.Exec(updateCategoryQuery, c.Name, c.ImageURL, c.Ord, id)
	if err != nil {
		return Category{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Category{}, ErrNotFound
	}
	c.ID = id
	return c, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteCategoryQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(scanner rowScanner) (Category, error) {
	c := Category{}
	var img sql.NullString
	if err := scanner.Scan(&c.ID, &c.Name, &img, &c.Ord); err != nil {
		return Category{}, err
	}
	if img.Valid {
		c.ImageURL = &img.String
	}
	return c, nil
}
