package session

import (
	"context"
	"sync"
)

// Manager is the single source of truth for "is someone logged in, and with
// what role" for one credential store. Only Initialize, Login and Logout
// mutate the state; everything else reads it.
type Manager struct {
	store Store

	mu    sync.RWMutex
	state State
}

// NewManager returns a manager in the initializing phase. Initialize must
// run before the state is meaningful.
func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		state: State{Phase: PhaseInitializing},
	}
}

// State returns the current in-memory session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Initialize performs the one credential read that moves the manager from
// initializing to ready. A read failure fails closed: the store is cleared
// so a corrupt partial credential is not retained, and the session is
// treated as logged out. The error from the clear is ignored; the outcome
// is logged out either way.
func (m *Manager) Initialize(ctx context.Context) State {
	token, role, ok, err := m.store.Load(ctx)

	next := State{Phase: PhaseReady}
	switch {
	case err != nil:
		_ = m.store.Clear(ctx)
	case ok && token != "":
		next.LoggedIn = true
		next.Role = role
	}

	m.mu.Lock()
	m.state = next
	m.mu.Unlock()
	return next
}

// Login persists the credentials and then updates the in-memory state. When
// the persistence write fails the in-memory state is left untouched, so the
// session is never ahead of durable storage.
func (m *Manager) Login(ctx context.Context, token string, role Role) error {
	if token == "" {
		return ErrEmptyToken
	}
	if !ValidRole(role) {
		return ErrInvalidRole
	}

	if err := m.store.Save(ctx, token, role); err != nil {
		return err
	}

	m.mu.Lock()
	m.state = State{Phase: PhaseReady, LoggedIn: true, Role: role}
	m.mu.Unlock()
	return nil
}

// Logout clears the credential store and resets the in-memory state. It is
// idempotent: logging out an already logged-out session is a no-op success.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	m.state = State{Phase: PhaseReady}
	m.mu.Unlock()
	return nil
}
