package order

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wichananm65/drink-shop-backend/internal/cart"
	"github.com/wichananm65/drink-shop-backend/internal/drink"
)

// withClaims injects a parsed JWT into the request context the way the JWT
// middleware does in production.
func withClaims(userID int, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": float64(userID),
			"role":    role,
		})
		c.Locals("user", tok)
		return c.Next()
	}
}

func setupOrderApp(t *testing.T, userID int, role string) (*fiber.App, *Service, cart.ServiceInterface) {
	t.Helper()

	drinkSvc := drink.NewService(drink.NewInMemoryRepository([]drink.Drink{
		{ID: 1, Name: "Thai Tea", Price: 45, Active: true},
		{ID: 2, Name: "Matcha Latte", Price: 60, Active: true},
		{ID: 3, Name: "Retired Drink", Price: 10, Active: false},
	}))
	cartSvc := cart.NewService(cart.NewInMemoryRepository())
	svc := NewService(NewInMemoryRepository(nil))
	h := NewHandler(svc, cartSvc, drinkSvc, zap.NewNop().Sugar())

	app := fiber.New()
	app.Use(withClaims(userID, role))
	h.RegisterProtectedRoutes(app)
	admin := app.Group("/api/v1/admin")
	h.RegisterAdminRoutes(admin)
	return app, svc, cartSvc
}

func TestCheckout_CreatesPendingOrderAndClearsCart(t *testing.T) {
	app, _, cartSvc := setupOrderApp(t, 5, "customer")

	require.NoError(t, cartSvc.Add(5, cart.Item{DrinkID: 1, Quantity: 2, IceLevel: "less", SugarLevel: "50"}))
	require.NoError(t, cartSvc.Add(5, cart.Item{DrinkID: 2, Quantity: 1}))

	req := httptest.NewRequest("POST", "/api/v1/orders", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	var created Order
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, 150.0, created.Total)
	assert.Len(t, created.Items, 2)
	assert.Equal(t, "Thai Tea", created.Items[0].DrinkName)

	items, err := cartSvc.Get(5)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckout_EmptyCart(t *testing.T) {
	app, _, _ := setupOrderApp(t, 5, "customer")

	req := httptest.NewRequest("POST", "/api/v1/orders", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestCheckout_InactiveDrinkRejected(t *testing.T) {
	app, _, cartSvc := setupOrderApp(t, 5, "customer")
	require.NoError(t, cartSvc.Add(5, cart.Item{DrinkID: 3, Quantity: 1}))

	req := httptest.NewRequest("POST", "/api/v1/orders", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)
}

func TestGetOwnOrder_OtherUsersOrderHidden(t *testing.T) {
	app, svc, _ := setupOrderApp(t, 5, "customer")

	other, err := svc.Create(9, []Item{{DrinkID: 1, DrinkName: "Thai Tea", UnitPrice: 45, Quantity: 1}})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/orders/"+itoa(other.ID), nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestAdvanceOrder_Endpoint(t *testing.T) {
	app, svc, _ := setupOrderApp(t, 1, "admin")

	created, err := svc.Create(5, []Item{{DrinkID: 1, DrinkName: "Thai Tea", UnitPrice: 45, Quantity: 1}})
	require.NoError(t, err)

	do := func(target Status) int {
		b, _ := json.Marshal(advanceRequest{Status: target})
		req := httptest.NewRequest("PATCH", "/api/v1/admin/orders/"+itoa(created.ID)+"/status", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		return res.StatusCode
	}

	// skipping a stage is rejected
	assert.Equal(t, fiber.StatusUnprocessableEntity, do(StatusReady))
	// the immediate successor is accepted
	assert.Equal(t, fiber.StatusOK, do(StatusConfirmed))
	assert.Equal(t, fiber.StatusOK, do(StatusPreparing))
	assert.Equal(t, fiber.StatusOK, do(StatusReady))
	assert.Equal(t, fiber.StatusOK, do(StatusDelivered))
	// delivered is terminal
	assert.Equal(t, fiber.StatusUnprocessableEntity, do(StatusCancelled))

	final, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, final.Status)
	assert.Equal(t, "admin:1", final.History[len(final.History)-1].Actor)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
