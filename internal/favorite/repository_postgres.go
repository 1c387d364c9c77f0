package favorite

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	insertFavoriteQuery = `
		INSERT INTO favorite (user_id, drink_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, drink_id) DO NOTHING
	`
	deleteFavoriteQuery = `DELETE FROM favorite WHERE user_id = $1 AND drink_id = $2`
	listFavoritesQuery  = `
		SELECT drink_id FROM favorite
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
)

func (r *PostgresRepository) Add(userID, drinkID int) error {
	res, err := r.db.Exec(insertFavoriteQuery, userID, drinkID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrAlreadyFavorite
	}
	return nil
}

func (r *PostgresRepository) Remove(userID, drinkID int) error {
	res, err := r.db.Exec(deleteFavoriteQuery, userID, drinkID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFavorite
	}
	return nil
}

func (r *PostgresRepository) List(userID int) ([]int, error) {
	rows, err := r.db.Query(listFavoritesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
