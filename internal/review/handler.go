package review

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/drink-shop-backend/internal/drink"
	"github.com/wichananm65/drink-shop-backend/internal/user"
)

type Handler struct {
	service      ServiceInterface
	drinkService drink.ServiceInterface
}

func NewHandler(service ServiceInterface, drinkService drink.ServiceInterface) *Handler {
	return &Handler{service: service, drinkService: drinkService}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/api/v1/drinks/:id/reviews", h.listReviews)
}

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Post("/api/v1/drinks/:id/reviews", h.createReview)
}

func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Delete("/reviews/:id", h.deleteReview)
}

func (h *Handler) listReviews(c *fiber.Ctx) error {
	drinkID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid drink id"})
	}

	reviews, err := h.service.ListByDrink(drinkID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(reviews)
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) createReview(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	drinkID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid drink id"})
	}
	if _, err := h.drinkService.GetByID(drinkID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "drink not found"})
	}

	payload := new(createReviewRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	rev, err := h.service.Create(drinkID, userID, payload.Rating, payload.Comment)
	if err != nil {
		if err == ErrInvalidRating {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(rev)
}

func (h *Handler) deleteReview(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid review id"})
	}

	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "review deleted"})
}
