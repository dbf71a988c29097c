package feed

import (
	"model-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the feed.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the feed routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/feed")
	group.Get("/", h.HandleGetFeed)
	group.Get("/search", h.HandleSearch)
	group.Post("/refresh", h.HandleRefresh)
}

// HandleGetFeed returns the stories grouped by channel.
// @Summary Get Feed
// @Tags feed
// @Produce json
// @Success 200 {array} feed.ChannelView "Channels"
// @Router /feed [get]
func (h *Handler) HandleGetFeed(c *fiber.Ctx) error {
	return c.JSON(h.service.Channels())
}

// HandleSearch filters stories by title.
// @Summary Search Feed
// @Tags feed
// @Produce json
// @Param q query string false "Query"
// @Success 200 {array} feed.ChannelView "Matching channels"
// @Router /feed/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	return c.JSON(h.service.Search(c.Query("q"), c.QueryInt("scope", 0)))
}

// HandleRefresh re-reads the stories and returns the resulting change.
// @Summary Refresh Feed
// @Description Re-run the story query and answer with the delivered change.
// @Tags feed
// @Produce json
// @Success 200 {object} notify.Delivery "Delivered change"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feed/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	d, err := h.service.Refresh(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Feed refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(d)
}
