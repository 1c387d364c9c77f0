// Package session holds the client session core: the credential store, the
// session manager deriving the logged-in state from it, and the navigation
// resolver picking which screen tree a client should mount.
package session

import (
	"context"
	"errors"
)

// Role classifies the access level of an authenticated user.
type Role string

const (
	RoleNone     Role = ""
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether r is one of the known authenticated roles.
func ValidRole(r Role) bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Phase tells whether the manager has finished its initial credential read.
type Phase string

const (
	PhaseInitializing Phase = "initializing"
	PhaseReady        Phase = "ready"
)

// State is the in-memory view of the current session. Role is only set
// while LoggedIn is true.
type State struct {
	Phase    Phase `json:"phase"`
	LoggedIn bool  `json:"loggedIn"`
	Role     Role  `json:"role"`
}

var (
	ErrEmptyToken  = errors.New("token must not be empty")
	ErrInvalidRole = errors.New("unknown role")
)

// Store is the durable credential store backing a session: a device-scoped
// key-value namespace holding the session token and the role string.
type Store interface {
	// Save persists both credentials. A partial write must not succeed.
	Save(ctx context.Context, token string, role Role) error
	// Load reads the stored credentials. ok is false when nothing is stored.
	Load(ctx context.Context) (token string, role Role, ok bool, err error)
	// Clear removes both credentials. Clearing an empty store succeeds.
	Clear(ctx context.Context) error
}

// Factory builds the credential store for a given device.
type Factory func(deviceID string) Store
