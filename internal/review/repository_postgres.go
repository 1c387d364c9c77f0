package review

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	insertReviewQuery = `
		INSERT INTO review (drink_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING review_id
	`
	listByDrinkQuery = `
		SELECT review_id, drink_id, user_id, rating, comment, created_at
		FROM review
		WHERE drink_id = $1
		ORDER BY created_at DESC
	`
	deleteReviewQuery = `DELETE FROM review WHERE review_id = $1`
)

func (r *PostgresRepository) Create(rev Review) (Review, error) {
	err := r.db.QueryRow(insertReviewQuery,
		rev.DrinkID, rev.UserID, rev.Rating, rev.Comment, rev.CreatedAt,
	).Scan(&rev.ID)
	if err != nil {
		return Review{}, err
	}
	return rev, nil
}

func (r *PostgresRepository) ListByDrink(drinkID int) ([]Review, error) {
	rows, err := r.db.Query(listByDrinkQuery, drinkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]Review, 0)
	for rows.Next() {
		var rev Review
		if err := rows.Scan(&rev.ID, &rev.DrinkID, &rev.UserID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteReviewQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
