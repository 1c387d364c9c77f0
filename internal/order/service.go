package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ServiceInterface is implemented by Service and by test doubles.
type ServiceInterface interface {
	Create(userID int, items []Item) (Order, error)
	GetByID(id int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	ListAll() ([]Order, error)
	Advance(id int, target Status, actor string) (Order, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create builds a pending order from checkout items. The total is computed
// from the item snapshots, not trusted from the client.
func (s *Service) Create(userID int, items []Item) (Order, error) {
	if userID <= 0 {
		return Order{}, ErrNotFound
	}
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}

	total := 0.0
	for _, it := range items {
		if it.Quantity <= 0 || it.UnitPrice < 0 {
			return Order{}, ErrEmptyOrder
		}
		total += it.UnitPrice * float64(it.Quantity)
	}

	now := time.Now().UTC()
	ord := Order{
		Number:    uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    StatusPending,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		History: []HistoryEntry{
			{At: now, Action: "order placed", Actor: fmt.Sprintf("user:%d", userID)},
		},
	}
	return s.repo.Create(ord)
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) ListAll() ([]Order, error) {
	return s.repo.ListAll()
}

// Advance moves an order to the target status. Only the immediate successor
// in the forward chain or a cancellation of a non-terminal order is legal;
// terminal orders reject every transition. The update carries the version
// the decision was based on, so a concurrent transition surfaces as
// ErrVersionConflict instead of silently winning.
func (s *Service) Advance(id int, target Status, actor string) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}

	if IsTerminal(ord.Status) {
		return Order{}, ErrTerminalStatus
	}
	if !CanTransition(ord.Status, target) {
		return Order{}, ErrInvalidTransition
	}

	entry := HistoryEntry{
		At:     time.Now().UTC(),
		Action: fmt.Sprintf("status %s -> %s", ord.Status, target),
		Actor:  actor,
	}
	return s.repo.UpdateStatus(id, ord.Version, target, entry)
}
