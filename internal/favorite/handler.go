package favorite

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/drink-shop-backend/internal/drink"
	"github.com/wichananm65/drink-shop-backend/internal/user"
)

// Handler delegates favorite operations to the favorite service and joins
// the listed ids with drink details.
type Handler struct {
	service      ServiceInterface
	drinkService drink.ServiceInterface
}

func NewHandler(service ServiceInterface, drinkService drink.ServiceInterface) *Handler {
	return &Handler{service: service, drinkService: drinkService}
}

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Get("/api/v1/favorites", h.getFavorites)
	r.Post("/api/v1/favorites/toggle", h.toggleFavorite)
	r.Delete("/api/v1/favorites", h.removeFavorite)
}

type favoriteRequest struct {
	DrinkID int `json:"drinkId"`
}

func (h *Handler) toggleFavorite(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(favoriteRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.DrinkID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid drinkId"})
	}
	if _, err := h.drinkService.GetByID(payload.DrinkID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "drink not found"})
	}

	favorited, err := h.service.Toggle(userID, payload.DrinkID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"drinkId": payload.DrinkID, "favorited": favorited})
}

func (h *Handler) removeFavorite(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(favoriteRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.DrinkID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid drinkId"})
	}

	if err := h.service.Remove(userID, payload.DrinkID); err != nil {
		if err == ErrNotFavorite {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "drink not in favorites"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"drinkId": payload.DrinkID, "favorited": false})
}

func (h *Handler) getFavorites(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ids, err := h.service.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	drinks, err := h.drinkService.ListByIDs(ids)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(drinks)
}
