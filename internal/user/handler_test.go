package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wichananm65/drink-shop-backend/internal/session"
)

func setupAuthApp(t *testing.T, store *session.MemoryStore) (*fiber.App, *Service) {
	t.Helper()
	svc := NewService(NewInMemoryRepository(nil), AdminListPolicy([]string{"admin@shop.com"}))
	factory := func(string) session.Store { return store }
	h := NewHandler(svc, factory, "test-secret", zap.NewNop().Sugar())

	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, svc
}

func TestSignIn_PersistsSessionForDevice(t *testing.T) {
	store := session.NewMemoryStore()
	app, svc := setupAuthApp(t, store)

	_, err := svc.Register(User{Email: "admin@shop.com", Password: "secret1", FirstName: "Boss"})
	require.NoError(t, err)

	b, _ := json.Marshal(map[string]string{"email": "admin@shop.com", "password": "secret1"})
	req := httptest.NewRequest("POST", "/api/v1/sign-in", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(session.DeviceHeader, "device-1")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var resp struct {
		Token    string       `json:"token"`
		DeviceID string       `json:"deviceId"`
		Root     session.Root `json:"root"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.Equal(t, "device-1", resp.DeviceID)
	assert.Equal(t, session.RootAdmin, resp.Root)

	token, role, set := store.Stored()
	assert.True(t, set)
	assert.Equal(t, resp.Token, token)
	assert.Equal(t, session.RoleAdmin, role)
}

func TestSignIn_SessionWriteFailureFailsRequest(t *testing.T) {
	store := session.NewMemoryStore()
	store.FailSave = errors.New("redis down")
	app, svc := setupAuthApp(t, store)

	_, err := svc.Register(User{Email: "a@b.com", Password: "secret1", FirstName: "A"})
	require.NoError(t, err)

	b, _ := json.Marshal(map[string]string{"email": "a@b.com", "password": "secret1"})
	req := httptest.NewRequest("POST", "/api/v1/sign-in", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(session.DeviceHeader, "device-1")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, res.StatusCode)

	_, _, set := store.Stored()
	assert.False(t, set)
}

func TestSignIn_WrongPassword(t *testing.T) {
	store := session.NewMemoryStore()
	app, svc := setupAuthApp(t, store)

	_, err := svc.Register(User{Email: "a@b.com", Password: "secret1", FirstName: "A"})
	require.NoError(t, err)

	b, _ := json.Marshal(map[string]string{"email": "a@b.com", "password": "nope"})
	req := httptest.NewRequest("POST", "/api/v1/sign-in", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestSignUp_Validation(t *testing.T) {
	store := session.NewMemoryStore()
	app, _ := setupAuthApp(t, store)

	cases := []struct {
		name string
		body map[string]string
		want int
	}{
		{"missing fields", map[string]string{"email": "a@b.com"}, fiber.StatusBadRequest},
		{"invalid email", map[string]string{"email": "nope", "password": "secret1", "firstName": "A"}, fiber.StatusBadRequest},
		{"weak password", map[string]string{"email": "a@b.com", "password": "123", "firstName": "A"}, fiber.StatusBadRequest},
		{"ok", map[string]string{"email": "a@b.com", "password": "secret1", "firstName": "A"}, fiber.StatusCreated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := json.Marshal(tc.body)
			req := httptest.NewRequest("POST", "/api/v1/sign-up", bytes.NewReader(b))
			req.Header.Set("Content-Type", "application/json")

			res, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.StatusCode)
		})
	}
}

func TestSignOut_Idempotent(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "tok", session.RoleCustomer))
	app, _ := setupAuthApp(t, store)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/v1/sign-out", nil)
		req.Header.Set(session.DeviceHeader, "device-1")

		res, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	}

	_, _, set := store.Stored()
	assert.False(t, set)
}
