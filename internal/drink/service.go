package drink

import (
	"errors"
	"time"
)

var ErrInvalidDrink = errors.New("drink name is required and price must be non-negative")

// ServiceInterface is implemented by Service and by test doubles in other
// packages.
type ServiceInterface interface {
	Catalog() ([]Drink, error)
	CatalogByCategory(categoryID int) ([]Drink, error)
	ListAll() ([]Drink, error)
	ListByIDs(ids []int) ([]Drink, error)
	GetByID(id int) (Drink, error)
	Create(d Drink) (Drink, error)
	Update(id int, d Drink) (Drink, error)
	Delete(id int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Catalog returns the customer-facing menu: active drinks only.
func (s *Service) Catalog() ([]Drink, error) {
	return s.repo.List(true)
}

func (s *Service) CatalogByCategory(categoryID int) ([]Drink, error) {
	return s.repo.ListByCategory(categoryID, true)
}

// ListAll returns every drink including inactive ones, for admin screens.
func (s *Service) ListAll() ([]Drink, error) {
	return s.repo.List(false)
}

func (s *Service) ListByIDs(ids []int) ([]Drink, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) GetByID(id int) (Drink, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(d Drink) (Drink, error) {
	if d.Name == "" || d.Price < 0 {
		return Drink{}, ErrInvalidDrink
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.repo.Create(d)
}

func (s *Service) Update(id int, d Drink) (Drink, error) {
	if d.Name == "" || d.Price < 0 {
		return Drink{}, ErrInvalidDrink
	}
	d.UpdatedAt = time.Now().UTC()
	return s.repo.Update(id, d)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
