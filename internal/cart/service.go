package cart

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be a positive number")

// ServiceInterface is implemented by Service and by test doubles.
type ServiceInterface interface {
	Add(userID int, item Item) error
	Get(userID int) ([]Item, error)
	SetQuantity(userID int, item Item) error
	Remove(userID int, item Item) error
	Clear(userID int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(userID int, item Item) error {
	if userID <= 0 || item.DrinkID <= 0 {
		return ErrNotFound
	}
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.repo.Add(userID, item)
}

func (s *Service) Get(userID int) ([]Item, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.Get(userID)
}

func (s *Service) SetQuantity(userID int, item Item) error {
	if userID <= 0 || item.DrinkID <= 0 {
		return ErrNotFound
	}
	return s.repo.SetQuantity(userID, item)
}

func (s *Service) Remove(userID int, item Item) error {
	if userID <= 0 || item.DrinkID <= 0 {
		return ErrNotFound
	}
	return s.repo.Remove(userID, item)
}

func (s *Service) Clear(userID int) error {
	if userID <= 0 {
		return ErrNotFound
	}
	return s.repo.Clear(userID)
}
