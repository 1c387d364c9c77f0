// Package favorite stores the drinks a customer has bookmarked.
package favorite

import (
	"errors"
	"sync"
)

var (
	ErrAlreadyFavorite = errors.New("drink already in favorites")
	ErrNotFavorite     = errors.New("drink not in favorites")
)

type Repository interface {
	Add(userID, drinkID int) error
	Remove(userID, drinkID int) error
	// List returns the favorited drink ids, newest first.
	List(userID int) ([]int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu   sync.RWMutex
	favs map[int][]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{favs: make(map[int][]int)}
}

func (r *InMemoryRepository) Add(userID, drinkID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.favs[userID] {
		if id == drinkID {
			return ErrAlreadyFavorite
		}
	}
	r.favs[userID] = append(r.favs[userID], drinkID)
	return nil
}

func (r *InMemoryRepository) Remove(userID, drinkID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.favs[userID]
	for i, id := range ids {
		if id == drinkID {
			r.favs[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return ErrNotFavorite
}

func (r *InMemoryRepository) List(userID int) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.favs[userID]
	out := make([]int, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, ids[i])
	}
	return out, nil
}
