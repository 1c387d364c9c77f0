package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/drink-shop-backend/internal/session"
)

func newTestService(admins ...string) *Service {
	return NewService(NewInMemoryRepository(nil), AdminListPolicy(admins))
}

func TestRegister_HashesPasswordAndResolvesRole(t *testing.T) {
	svc := newTestService("owner@shop.com")

	created, err := svc.Register(User{Email: "Owner@Shop.com", Password: "secret1", FirstName: "Som"})
	require.NoError(t, err)

	assert.Equal(t, "owner@shop.com", created.Email)
	assert.Equal(t, session.RoleAdmin, created.Role)
	assert.NotEqual(t, "secret1", created.Password)

	customer, err := svc.Register(User{Email: "a@b.com", Password: "secret1", FirstName: "A"})
	require.NoError(t, err)
	assert.Equal(t, session.RoleCustomer, customer.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(User{Email: "a@b.com", Password: "secret1", FirstName: "A"})
	require.NoError(t, err)

	_, err = svc.Register(User{Email: "a@b.com", Password: "secret2", FirstName: "B"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(User{Email: "a@b.com", Password: "short", FirstName: "A"})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService()
	_, err := svc.Register(User{Email: "a@b.com", Password: "secret1", FirstName: "A"})
	require.NoError(t, err)

	u, err := svc.Authenticate("a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)

	_, err = svc.Authenticate("a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email yields the same error as a wrong password
	_, err = svc.Authenticate("nobody@b.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
