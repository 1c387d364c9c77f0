package drink

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("drink not found")

type Repository interface {
	// List returns drinks, optionally restricted to active ones.
	List(activeOnly bool) ([]Drink, error)
	ListByCategory(categoryID int, activeOnly bool) ([]Drink, error)
	ListByIDs(ids []int) ([]Drink, error)
	GetByID(id int) (Drink, error)
	Create(d Drink) (Drink, error)
	Update(id int, d Drink) (Drink, error)
	Delete(id int) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Drink
	nextID  int
}

func NewInMemoryRepository(seed []Drink) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Drink, 0, len(seed)),
		nextID:  1,
	}
	maxID := 0
	for _, d := range seed {
		r.storage = append(r.storage, d)
		if d.ID > maxID {
			maxID = d.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(activeOnly bool) ([]Drink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Drink, 0, len(r.storage))
	for _, d := range r.storage {
		if activeOnly && !d.Active {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *InMemoryRepository) ListByCategory(categoryID int, activeOnly bool) ([]Drink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Drink, 0)
	for _, d := range r.storage {
		if d.CategoryID == nil || *d.CategoryID != categoryID {
			continue
		}
		if activeOnly && !d.Active {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]Drink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]Drink, 0, len(ids))
	for _, d := range r.storage {
		if _, ok := want[d.ID]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Drink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.storage {
		if d.ID == id {
			return d, nil
		}
	}
	return Drink{}, ErrNotFound
}

func (r *InMemoryRepository) Create(d Drink) (Drink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == 0 {
		d.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, d)
	return d, nil
}

func (r *InMemoryRepository) Update(id int, d Drink) (Drink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			d.ID = id
			r.storage[i] = d
			return d, nil
		}
	}
	return Drink{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
