package order

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrTerminalStatus    = errors.New("order is in a terminal status")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrVersionConflict   = errors.New("order was modified concurrently")
)

type Repository interface {
	Create(ord Order) (Order, error)
	GetByID(id int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	ListAll() ([]Order, error)
	// UpdateStatus transitions the order to the target status, appends the
	// history entry and bumps the version, all atomically. It fails with
	// ErrVersionConflict when the stored version differs from fromVersion.
	UpdateStatus(id int, fromVersion int, to Status, entry HistoryEntry) (Order, error)
}

// InMemoryRepository backs tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	nextID int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{
		orders: make([]Order, 0, len(seed)),
		nextID: 1,
	}
	maxID := 0
	for _, o := range seed {
		r.orders = append(r.orders, o)
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ord.ID == 0 {
		ord.ID = r.nextID
		r.nextID++
	}
	if ord.Version == 0 {
		ord.Version = 1
	}
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, cloneOrder(r.orders[i]))
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListAll() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, cloneOrder(r.orders[i]))
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, fromVersion int, to Status, entry HistoryEntry) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		if r.orders[i].Version != fromVersion {
			return Order{}, ErrVersionConflict
		}
		r.orders[i].Status = to
		r.orders[i].Version++
		r.orders[i].UpdatedAt = entry.At
		r.orders[i].History = append(r.orders[i].History, entry)
		return cloneOrder(r.orders[i]), nil
	}
	return Order{}, ErrNotFound
}

func cloneOrder(o Order) Order {
	items := make([]Item, len(o.Items))
	copy(items, o.Items)
	hist := make([]HistoryEntry, len(o.History))
	copy(hist, o.History)
	o.Items = items
	o.History = hist
	return o
}

// SeedOrder is a convenience for tests building orders in a given state.
func SeedOrder(id, userID int, status Status, total float64, createdAt time.Time) Order {
	return Order{
		ID:        id,
		UserID:    userID,
		Items:     []Item{{DrinkID: 1, DrinkName: "Thai Tea", UnitPrice: total, Quantity: 1}},
		Total:     total,
		Status:    status,
		Version:   1,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}
