package styling

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/kombin-backend/internal/heuristics"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	g := app.Group("/api/v1/styling")
	g.Get("/colors", h.getColors)
	g.Get("/colors/:color", h.getColor)
	g.Get("/tables", h.getTables)
	g.Get("/styles/:style", h.lookup(h.service.Style, "style"))
	g.Get("/seasons/:season", h.lookup(h.service.Season, "season"))
	g.Get("/silhouettes/:category", h.lookup(h.service.Silhouette, "category"))
	g.Get("/shoes/:type", h.lookup(h.service.Shoe, "type"))
	g.Get("/proportions/:top", h.getProportion)
}

// param returns a path parameter with percent-encoding removed.
func param(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func (h *Handler) getColors(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"neutrals": h.service.Neutrals(),
		"bases":    h.service.Bases(),
	})
}

func (h *Handler) getColor(c *fiber.Ctx) error {
	return c.JSON(h.service.Color(param(c, "color")))
}

func (h *Handler) getTables(c *fiber.Ctx) error {
	return c.JSON(h.service.Tables())
}

// lookup serves a keyword table. Unknown keys answer 200 with an empty list
// since an empty row means "no filter".
func (h *Handler) lookup(fn func(string) heuristics.Group, name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fn(param(c, name)))
	}
}

func (h *Handler) getProportion(c *fiber.Ctx) error {
	top := param(c, "top")
	bottom, ok := h.service.Proportion(top)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no proportion rule for top", "top": top})
	}
	return c.JSON(fiber.Map{"top": top, "bottom": bottom})
}
