package review

import "time"

type ServiceInterface interface {
	Create(drinkID, userID, rating int, comment string) (Review, error)
	ListByDrink(drinkID int) ([]Review, error)
	Delete(id int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(drinkID, userID, rating int, comment string) (Review, error) {
	if rating < 1 || rating > 5 {
		return Review{}, ErrInvalidRating
	}
	return s.repo.Create(Review{
		DrinkID:   drinkID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *Service) ListByDrink(drinkID int) ([]Review, error) {
	return s.repo.ListByDrink(drinkID)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
