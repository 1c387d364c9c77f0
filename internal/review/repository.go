package review

import (
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("review not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type Repository interface {
	Create(rev Review) (Review, error)
	ListByDrink(drinkID int) ([]Review, error)
	Delete(id int) error
}

// InMemoryRepository backs tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Review
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(rev Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rev.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, rev)
	return rev, nil
}

func (r *InMemoryRepository) ListByDrink(drinkID int) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Review, 0)
	for i := len(r.storage) - 1; i >= 0; i-- {
		if r.storage[i].DrinkID == drinkID {
			out = append(out, r.storage[i])
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rev := range r.storage {
		if rev.ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
