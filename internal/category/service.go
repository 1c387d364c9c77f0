package category

import "errors"

var ErrInvalidCategory = errors.New("category name is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Category, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(c Category) (Category, error) {
	if c.Name == "" {
		return Category{}, ErrInvalidCategory
	}
	return s.repo.Create(c)
}

func (s *Service) Update(id int, c Category) (Category, error) {
	if c.Name == "" {
		return Category{}, ErrInvalidCategory
	}
	return s.repo.Update(id, c)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
