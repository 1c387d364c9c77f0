package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_EmptyStore(t *testing.T) {
	mgr := NewManager(NewMemoryStore())

	state := mgr.Initialize(context.Background())

	assert.Equal(t, PhaseReady, state.Phase)
	assert.False(t, state.LoggedIn)
	assert.Equal(t, RoleNone, state.Role)
}

func TestInitialize_StoredCredentials(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "tok-123", RoleAdmin))

	state := NewManager(store).Initialize(context.Background())

	assert.True(t, state.LoggedIn)
	assert.Equal(t, RoleAdmin, state.Role)
}

func TestInitialize_ReadFailureFailsClosed(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "tok-123", RoleCustomer))
	store.FailLoad = errors.New("storage corrupted")

	state := NewManager(store).Initialize(context.Background())

	assert.Equal(t, PhaseReady, state.Phase)
	assert.False(t, state.LoggedIn)
	assert.Equal(t, RoleNone, state.Role)

	// the possibly corrupt credential must not be retained
	_, _, set := store.Stored()
	assert.False(t, set)
}

func TestState_BeforeInitialize(t *testing.T) {
	mgr := NewManager(NewMemoryStore())

	state := mgr.State()

	assert.Equal(t, PhaseInitializing, state.Phase)
	assert.False(t, state.LoggedIn)
}

func TestLogin_PersistsThenUpdatesMemory(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store)
	mgr.Initialize(context.Background())

	require.NoError(t, mgr.Login(context.Background(), "tok-456", RoleCustomer))

	token, role, set := store.Stored()
	assert.True(t, set)
	assert.Equal(t, "tok-456", token)
	assert.Equal(t, RoleCustomer, role)

	state := mgr.State()
	assert.True(t, state.LoggedIn)
	assert.Equal(t, RoleCustomer, state.Role)
}

func TestLogin_WriteFailureLeavesMemoryUntouched(t *testing.T) {
	store := NewMemoryStore()
	store.FailSave = errors.New("disk full")
	mgr := NewManager(store)
	before := mgr.Initialize(context.Background())

	err := mgr.Login(context.Background(), "tok-789", RoleAdmin)

	assert.Error(t, err)
	assert.Equal(t, before, mgr.State())
}

func TestLogin_RejectsEmptyToken(t *testing.T) {
	mgr := NewManager(NewMemoryStore())
	err := mgr.Login(context.Background(), "", RoleCustomer)
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestLogin_RejectsUnknownRole(t *testing.T) {
	mgr := NewManager(NewMemoryStore())
	err := mgr.Login(context.Background(), "tok", Role("superuser"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogout_Idempotent(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store)
	mgr.Initialize(context.Background())
	require.NoError(t, mgr.Login(context.Background(), "tok-1", RoleCustomer))

	require.NoError(t, mgr.Logout(context.Background()))
	after := mgr.State()

	// second logout is a no-op success with the same end state
	require.NoError(t, mgr.Logout(context.Background()))
	assert.Equal(t, after, mgr.State())

	assert.False(t, after.LoggedIn)
	assert.Equal(t, RoleNone, after.Role)
	_, _, set := store.Stored()
	assert.False(t, set)
}
