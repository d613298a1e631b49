package product

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const maxPageSize = 200

type Handler struct {
	service     *Service
	allowReload bool
}

// NewHandler builds the catalog handler. allowReload enables the dev reload
// endpoint.
func NewHandler(service *Service, allowReload bool) *Handler {
	return &Handler{service: service, allowReload: allowReload}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/product", h.getProduct)

	// dev-only endpoint, enabled by catalog.allow_reload
	app.Post("/dev/reload-catalog", h.reloadCatalog)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 50)
	if err != nil || limit < 0 || limit > maxPageSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be between 0 and " + strconv.Itoa(maxPageSize)})
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "offset must be >= 0"})
	}
	return c.JSON(h.service.List(c.Query("category"), limit, offset))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	url := c.Query("url")
	if url == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}
	p, err := h.service.GetByURL(url)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) reloadCatalog(c *fiber.Ctx) error {
	if !h.allowReload {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "reload not allowed"})
	}
	n, err := h.service.Reload(c.UserContext())
	if err != nil {
		if errors.Is(err, ErrNoLoader) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"products": n})
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
