package category

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/category", h.getCategories)
	app.Get("/api/v1/category/resolve", h.resolve)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	limit := 100
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	return c.JSON(h.service.List(limit))
}

func (h *Handler) resolve(c *fiber.Ctx) error {
	label := c.Query("label")
	if label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "label is required"})
	}
	res, ok := h.service.Resolve(label)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no main category for label", "label": label})
	}
	return c.JSON(res)
}
