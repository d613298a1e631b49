package recommend

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/kombin-backend/internal/validation"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/recommendations", h.suggest)
	// path used by the existing web client
	app.Post("/suggest_complementary_items", h.suggest)
}

func (h *Handler) suggest(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error(), "fields": verr.Fields})
	}
	if limit := h.service.MaxCount(); limit > 0 {
		if verr := validation.Var("count", req.Count, "max="+strconv.Itoa(limit)); verr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error(), "fields": verr.Fields})
		}
	}

	res, err := h.service.Recommend(c.UserContext(), req)
	if err != nil {
		var invalid *InvalidCategoryError
		switch {
		case errors.Is(err, ErrCatalogUnavailable):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &invalid):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "category": invalid.Label})
		case errors.Is(err, ErrCategoryRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(res)
}
