package drink

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   ServiceInterface
	uploadDir string
}

func NewHandler(service ServiceInterface, uploadDir string) *Handler {
	return &Handler{service: service, uploadDir: uploadDir}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/api/v1/drinks", h.getCatalog)
	r.Get("/api/v1/drinks/:id<[0-9]+>", h.getDrink)
}

func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/drinks", h.listAll)
	r.Post("/drinks", h.createDrink)
	r.Put("/drinks/:id<[0-9]+>", h.updateDrink)
	r.Delete("/drinks/:id<[0-9]+>", h.deleteDrink)
	r.Post("/drinks/:id<[0-9]+>/image", h.uploadImage)
}

// getCatalog lists active drinks, optionally filtered by category.
func (h *Handler) getCatalog(c *fiber.Ctx) error {
	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid categoryId"})
		}
		drinks, err := h.service.CatalogByCategory(categoryID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(drinks)
	}

	drinks, err := h.service.Catalog()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(drinks)
}

func (h *Handler) getDrink(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	d, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "drink not found"})
	}
	// customers never see inactive drinks, not even by direct id
	if !d.Active {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "drink not found"})
	}
	return c.JSON(d)
}

func (h *Handler) listAll(c *fiber.Ctx) error {
	drinks, err := h.service.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(drinks)
}

type drinkRequest struct {
	Name        string  `json:"drinkName"`
	CategoryID  *int    `json:"categoryId"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Quantity    int     `json:"quantity"`
	Active      *bool   `json:"active"`
}

func (h *Handler) createDrink(c *fiber.Ctx) error {
	payload := new(drinkRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}
	created, err := h.service.Create(Drink{
		Name:        payload.Name,
		CategoryID:  payload.CategoryID,
		Price:       payload.Price,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		Quantity:    payload.Quantity,
		Active:      active,
	})
	if err != nil {
		if err == ErrInvalidDrink {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateDrink(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "drink not found"})
	}

	payload := drinkRequest{
		Name:        existing.Name,
		CategoryID:  existing.CategoryID,
		Price:       existing.Price,
		Description: existing.Description,
		ImageURL:    existing.ImageURL,
		Quantity:    existing.Quantity,
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	active := existing.Active
	if payload.Active != nil {
		active = *payload.Active
	}
	updated, err := h.service.Update(id, Drink{
		Name:        payload.Name,
		CategoryID:  payload.CategoryID,
		Price:       payload.Price,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		Quantity:    payload.Quantity,
		Active:      active,
	})
	if err != nil {
		switch err {
		case ErrInvalidDrink:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "drink not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteDrink(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "drink not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// uploadImage stores the uploaded file under the upload dir and records its
// public URL on the drink.
func (h *Handler) uploadImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "drink not found"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "file is required"})
	}

	name := fmt.Sprintf("drink_%d_%s", id, filepath.Base(file.Filename))
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	url := "/uploads/" + name
	existing.ImageURL = &url
	updated, err := h.service.Update(id, existing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}
