package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process credential store used in tests and local
// scenarios. Operations can be made to fail through the Fail* toggles.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	role  Role
	set   bool

	FailSave  error
	FailLoad  error
	FailClear error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, token string, role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	s.token = token
	s.role = role
	s.set = true
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (string, Role, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailLoad != nil {
		return "", RoleNone, false, s.FailLoad
	}
	if !s.set {
		return "", RoleNone, false, nil
	}
	return s.token, s.role, true, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailClear != nil {
		return s.FailClear
	}
	s.token = ""
	s.role = RoleNone
	s.set = false
	return nil
}

// Stored reports the current durable content, for assertions.
func (s *MemoryStore) Stored() (string, Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.role, s.set
}
