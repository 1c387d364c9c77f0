package cart

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("cart item not found")

type Repository interface {
	// Add merges the item into the user's cart: an existing line with the
	// same drink and options has its quantity incremented.
	Add(userID int, item Item) error
	Get(userID int) ([]Item, error)
	// SetQuantity replaces the quantity of a matching line. A quantity of
	// zero or less removes the line.
	SetQuantity(userID int, item Item) error
	Remove(userID int, item Item) error
	Clear(userID int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[int][]Item)}
}

func sameLine(a, b Item) bool {
	return a.DrinkID == b.DrinkID && a.IceLevel == b.IceLevel && a.SugarLevel == b.SugarLevel
}

func (r *InMemoryRepository) Add(userID int, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := r.carts[userID]
	for i := range lines {
		if sameLine(lines[i], item) {
			lines[i].Quantity += item.Quantity
			r.carts[userID] = lines
			return nil
		}
	}
	r.carts[userID] = append(lines, item)
	return nil
}

func (r *InMemoryRepository) Get(userID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := r.carts[userID]
	out := make([]Item, len(lines))
	copy(out, lines)
	return out, nil
}

func (r *InMemoryRepository) SetQuantity(userID int, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := r.carts[userID]
	for i := range lines {
		if sameLine(lines[i], item) {
			if item.Quantity <= 0 {
				r.carts[userID] = append(lines[:i], lines[i+1:]...)
				return nil
			}
			lines[i].Quantity = item.Quantity
			r.carts[userID] = lines
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Remove(userID int, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := r.carts[userID]
	for i := range lines {
		if sameLine(lines[i], item) {
			r.carts[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Clear(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}
