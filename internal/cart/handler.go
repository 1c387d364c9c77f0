package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/drink-shop-backend/internal/drink"
	"github.com/wichananm65/drink-shop-backend/internal/user"
)

// Handler delegates cart operations to the cart service and enriches cart
// lines with drink details through the drink service.
type Handler struct {
	service      ServiceInterface
	drinkService drink.ServiceInterface
}

func NewHandler(service ServiceInterface, drinkService drink.ServiceInterface) *Handler {
	return &Handler{service: service, drinkService: drinkService}
}

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Get("/api/v1/cart", h.getCart)
	r.Post("/api/v1/cart", h.addToCart)
	r.Put("/api/v1/cart", h.setQuantity)
	r.Delete("/api/v1/cart/item", h.removeItem)
	r.Delete("/api/v1/cart", h.clearCart)
}

type cartResponse struct {
	Items    []DetailedItem `json:"items"`
	Subtotal float64        `json:"subtotal"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	detailed, subtotal, err := h.enrich(items)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(cartResponse{Items: detailed, Subtotal: subtotal})
}

type cartItemRequest struct {
	DrinkID    int    `json:"drinkId"`
	Quantity   int    `json:"quantity"`
	IceLevel   string `json:"iceLevel"`
	SugarLevel string `json:"sugarLevel"`
}

func (r cartItemRequest) item() Item {
	return Item{DrinkID: r.DrinkID, Quantity: r.Quantity, IceLevel: r.IceLevel, SugarLevel: r.SugarLevel}
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(cartItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must be positive"})
	}

	// only active drinks can enter a cart
	d, err := h.drinkService.GetByID(payload.DrinkID)
	if err != nil || !d.Active {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "drink not found"})
	}

	if err := h.service.Add(userID, payload.item()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return h.getCart(c)
}

func (h *Handler) setQuantity(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(cartItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.SetQuantity(userID, payload.item()); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return h.getCart(c)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(cartItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.Remove(userID, payload.item()); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return h.getCart(c)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Clear(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(cartResponse{Items: []DetailedItem{}})
}

// enrich joins cart lines with drink details and computes line totals.
// Lines whose drink disappeared from the catalog are skipped rather than
// failing the whole cart.
func (h *Handler) enrich(items []Item) ([]DetailedItem, float64, error) {
	ids := make([]int, 0, len(items))
	seen := map[int]struct{}{}
	for _, it := range items {
		if _, ok := seen[it.DrinkID]; !ok {
			seen[it.DrinkID] = struct{}{}
			ids = append(ids, it.DrinkID)
		}
	}

	drinks, err := h.drinkService.ListByIDs(ids)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[int]drink.Drink, len(drinks))
	for _, d := range drinks {
		byID[d.ID] = d
	}

	detailed := make([]DetailedItem, 0, len(items))
	subtotal := 0.0
	for _, it := range items {
		d, ok := byID[it.DrinkID]
		if !ok {
			continue
		}
		line := DetailedItem{
			Item:      it,
			DrinkName: d.Name,
			UnitPrice: d.Price,
			ImageURL:  d.ImageURL,
			LineTotal: d.Price * float64(it.Quantity),
		}
		subtotal += line.LineTotal
		detailed = append(detailed, line)
	}
	return detailed, subtotal, nil
}
