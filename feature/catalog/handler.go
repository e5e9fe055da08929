package catalog

import (
	"errors"

	"gameframe/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/games", h.HandleListGames)
	app.Get("/games/:id", h.HandleGetGame)
	app.Get("/developers/:id", h.HandleGetDeveloper)
	app.Get("/articles", h.HandleListArticles)
	app.Get("/stats", h.HandleStats)
}

// HandleListGames lists games, filtered by the q, genre and platform query
// parameters and paged by limit and offset.
func (h *Handler) HandleListGames(c *fiber.Ctx) error {
	page := h.service.Games(GameQuery{
		Search:   c.Query("q"),
		Genre:    c.Query("genre"),
		Platform: c.Query("platform"),
		Limit:    c.QueryInt("limit"),
		Offset:   c.QueryInt("offset"),
	})
	return c.JSON(page)
}

// HandleGetGame returns a single game.
func (h *Handler) HandleGetGame(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id must be an integer")
	}
	game, err := h.service.Game(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(game)
}

// HandleGetDeveloper returns a single developer.
func (h *Handler) HandleGetDeveloper(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id must be an integer")
	}
	developer, err := h.service.Developer(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(developer)
}

// HandleListArticles lists articles newest first.
func (h *Handler) HandleListArticles(c *fiber.Ctx) error {
	return c.JSON(h.service.Articles(c.QueryInt("limit"), c.QueryInt("offset")))
}

// HandleStats returns entity and relationship counts.
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Catalog request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
