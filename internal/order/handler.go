package order

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wichananm65/drink-shop-backend/internal/cart"
	"github.com/wichananm65/drink-shop-backend/internal/drink"
	"github.com/wichananm65/drink-shop-backend/internal/user"
)

// Handler exposes the customer checkout/read surface and the admin
// transition surface. Status writes only exist on the admin routes.
type Handler struct {
	service      ServiceInterface
	cartService  cart.ServiceInterface
	drinkService drink.ServiceInterface
	log          *zap.SugaredLogger
}

func NewHandler(service ServiceInterface, cartService cart.ServiceInterface, drinkService drink.ServiceInterface, log *zap.SugaredLogger) *Handler {
	return &Handler{service: service, cartService: cartService, drinkService: drinkService, log: log}
}

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Post("/api/v1/orders", h.checkout)
	r.Get("/api/v1/orders", h.getOwnOrders)
	r.Get("/api/v1/orders/:id<[0-9]+>", h.getOwnOrder)
}

func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/orders", h.listAllOrders)
	r.Get("/orders/:id<[0-9]+>", h.getOrder)
	r.Patch("/orders/:id<[0-9]+>/status", h.advanceOrder)
}

// checkout turns the authenticated user's cart into a pending order:
// drink names and prices are snapshotted, the total computed server-side
// and the cart cleared once the order exists.
func (h *Handler) checkout(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	lines, err := h.cartService.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if len(lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
	}

	items, err := h.buildItems(lines)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(userID, items)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.cartService.Clear(userID); err != nil {
		// order exists; a stale cart is recoverable, losing the order is not
		h.log.Warnw("clear cart after checkout", "user", userID, "error", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) buildItems(lines []cart.Item) ([]Item, error) {
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		d, err := h.drinkService.GetByID(line.DrinkID)
		if err != nil || !d.Active {
			return nil, fmt.Errorf("drink %d is no longer available", line.DrinkID)
		}
		items = append(items, Item{
			DrinkID:    d.ID,
			DrinkName:  d.Name,
			UnitPrice:  d.Price,
			Quantity:   line.Quantity,
			IceLevel:   line.IceLevel,
			SugarLevel: line.SugarLevel,
		})
	}
	return items, nil
}

func (h *Handler) getOwnOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) getOwnOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	ord, err := h.service.GetByID(id)
	if err != nil || ord.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	return c.JSON(nextStatusView(ord))
}

func (h *Handler) listAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	views := make([]orderView, 0, len(orders))
	for _, ord := range orders {
		views = append(views, nextStatusView(ord))
	}
	return c.JSON(views)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	ord, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	return c.JSON(nextStatusView(ord))
}

type advanceRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) advanceOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	payload := new(advanceRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	actor := "admin"
	if adminID, err := user.GetUserIDFromCtx(c); err == nil {
		actor = fmt.Sprintf("admin:%d", adminID)
	}

	updated, err := h.service.Advance(id, payload.Status, actor)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case ErrTerminalStatus, ErrInvalidTransition:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		case ErrVersionConflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "order was updated by someone else, reload and retry"})
		default:
			h.log.Errorw("advance order", "order", id, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(nextStatusView(updated))
}

// orderView augments an order with the forward action the UI may offer.
type orderView struct {
	Order
	NextStatus *Status `json:"nextStatus,omitempty"`
}

func nextStatusView(ord Order) orderView {
	view := orderView{Order: ord}
	if IsTerminal(ord.Status) {
		return view
	}
	if next, ok := Next(ord.Status); ok {
		view.NextStatus = &next
	}
	return view
}
