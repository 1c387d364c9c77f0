package favorite

import "errors"

var ErrInvalidID = errors.New("user id and drink id must be positive")

type ServiceInterface interface {
	Add(userID, drinkID int) error
	Remove(userID, drinkID int) error
	List(userID int) ([]int, error)
	// Toggle adds the drink when absent and removes it when present.
	// It reports whether the drink is a favorite afterwards.
	Toggle(userID, drinkID int) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(userID, drinkID int) error {
	if userID <= 0 || drinkID <= 0 {
		return ErrInvalidID
	}
	return s.repo.Add(userID, drinkID)
}

func (s *Service) Remove(userID, drinkID int) error {
	if userID <= 0 || drinkID <= 0 {
		return ErrInvalidID
	}
	return s.repo.Remove(userID, drinkID)
}

func (s *Service) List(userID int) ([]int, error) {
	if userID <= 0 {
		return nil, ErrInvalidID
	}
	return s.repo.List(userID)
}

func (s *Service) Toggle(userID, drinkID int) (bool, error) {
	if userID <= 0 || drinkID <= 0 {
		return false, ErrInvalidID
	}
	err := s.repo.Add(userID, drinkID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, ErrAlreadyFavorite) {
		return false, err
	}
	if err := s.repo.Remove(userID, drinkID); err != nil {
		return false, err
	}
	return false, nil
}
