package lists

import (
	"errors"

	"model-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for lists.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lists routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/lists")
	group.Get("/", h.HandleGetSections)
	group.Get("/search", h.HandleSearch)
	group.Post("/batch", h.HandleBatch)
	group.Post("/snapshot", h.HandleSnapshot)

	group.Post("/items/insert", h.HandleInsert)
	group.Post("/items/move", h.HandleMove)
	group.Delete("/items", h.HandleRemove)
	group.Put("/items/:id", h.HandleReplace)
	group.Post("/items/:id/reload", h.HandleReload)

	group.Delete("/sections", h.HandleDeleteSections)
	group.Post("/sections/:section/items", h.HandleAdd)
	group.Put("/sections/:section", h.HandleSetItems)
	group.Put("/sections/:section/header", h.HandleSetHeader)
}

// HandleGetSections returns every section.
// @Summary List Sections
// @Description Get all sections with their header and entries.
// @Tags lists
// @Produce json
// @Success 200 {array} lists.SectionView "Sections"
// @Router /lists [get]
func (h *Handler) HandleGetSections(c *fiber.Ctx) error {
	return c.JSON(h.service.Sections())
}

// HandleAdd appends entries to a section.
// @Summary Add Entries
// @Description Append entries to a section, creating missing sections.
// @Tags lists
// @Accept json
// @Produce json
// @Param section path int true "Section index"
// @Param entries body []lists.Input true "Entries"
// @Success 200 {object} lists.Result "Delivered change"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /lists/sections/{section}/items [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	index, err := c.ParamsInt("section")
	if err != nil {
		return h.fail(c, ErrBadRequest)
	}
	var inputs []Input
	if err := c.BodyParser(&inputs); err != nil {
		return h.fail(c, ErrBadRequest)
	}
	return h.respond(c)(h.service.Add(index, inputs))
}

// HandleInsert inserts an entry at an index path.
// @Summary Insert Entry
// @Tags lists
// @Accept json
// @Produce json
// @Param request body lists.InsertRequest true "Position and entry"
// @Success 200 {object} lists.Result "Delivered change"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /lists/items/insert [post]
func (h *Handler) HandleInsert(c *fiber.Ctx) error {
	var req InsertRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, ErrBadRequest)
	}
	return h.respond(c)(h.service.Insert(req.Path, req.Entry))
}

// HandleRemove removes entries by ID.
// @Summary Remove Entries
// @Tags lists
// @Accept json
// @Produce json
// @Param request body lists.RemoveRequest true "Entry IDs"
// @Success 200 {object} lists.Result "Delivered change"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /lists/items [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	var req RemoveRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, ErrBadRequest)
	}
	return h.respond(c)(h.service.Remove(req.IDs))
}

// HandleReplace replaces the content of an entry.
// @Summary Replace Entry
// @Tags lists
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body lists.Input true "New content"
// @Success 200 {object} lists.Result "Delivered change"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /lists/items/{id} [put]
func (h *Handler) HandleReplace(c *fiber.Ctx) error {
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return h.fail(c, ErrBadRequest)
	}
	return h.respond(c)(h.service.Replace(c.Params("id"), in))
}

// HandleReload marks an entry as changed in place.
// @Summary Reload Entry
// @Tags lists
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} lists.Result "Delivered change"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /lists/items/{id}/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	return h.respond(c)(h.service.Reload(c.Params("id")))
}

// HandleMove moves an entry between index paths.
// @Summary Move Entry
// @Tags lists
// @Accept json
// @Produce json
// @Param request body lists.MoveRequest true "Source and destination"
// @Success 200 {object} lists.Result "Delivered change"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /lists/items/move [post]
func (h *Handler) HandleMove(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, ErrBadRequest)
	}
	return h.respond(c)(h.service.Move(req.From, req.To))
}

// HandleSetItems replaces the entries of a section.
// @Summary Set Section Entries
// @Tags lists
// @Accept json
// @Produce json
// @Param section path int true "Section index"
// @Param entries body []lists.Input true "Entries"
// @Success 200 {object} lists.Result "Delivered change"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /lists/sections/{section} [put]
func (h *Handler) HandleSetItems(c *fiber.Ctx) error {
	index, err := c.ParamsInt("section")
	if err != nil {
		return h.fail(c, ErrBadRequest)
	}
	var inputs []Input
	if err := c.BodyParser(&inputs); err != nil {
		return h.fail(c, ErrBadRequest)
	}
	return h.respond(c)(h.service.SetItems(index, inputs))
}

// HandleDeleteSections removes sections.
// @Summary Delete Sections
// @Tags lists
// @Accept json
// @Produce json
// @Param request body lists.DeleteSectionsRequest true "Section indices"
// @Success 200 {object} lists.Result "Delivered change"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /lists/sections [delete]
func (h *Handler) HandleDeleteSections(c *fiber.Ctx) error {
	var req DeleteSectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, ErrBadRequest)
	}
	return h.respond(c)(h.service.DeleteSections(req.Sections))
}

// HandleSetHeader sets a section header.
// @Summary Set Section Header
// @Tags lists
// @Accept json
// @Produce json
// @Param section path int true "Section index"
// @Param request body lists.HeaderRequest true "Header"
// @Success 200 {object} lists.Result "Delivered change"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /lists/sections/{section}/header [put]
func (h *Handler) HandleSetHeader(c *fiber.Ctx) error {
	index, err := c.ParamsInt("section")
	if err != nil {
		return h.fail(c, ErrBadRequest)
	}
	var req HeaderRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, ErrBadRequest)
	}
	return h.respond(c)(h.service.SetHeader(index, req.Header))
}

// HandleBatch applies several operations as one batch.
// @Summary Batch Mutations
// @Description Apply several operations and deliver a single change.
// @Tags lists
// @Accept json
// @Produce json
// @Param request body lists.BatchRequest true "Operations"
// @Success 200 {object} lists.Result "Delivered change"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /lists/batch [post]
func (h *Handler) HandleBatch(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, ErrBadRequest)
	}
	return h.respond(c)(h.service.Batch(req.Ops))
}

// HandleSearch filters entries.
// @Summary Search Entries
// @Tags lists
// @Produce json
// @Param q query string false "Query"
// @Param scope query int false "0 title contains, 1 fuzzy title and detail"
// @Success 200 {array} lists.SectionView "Matching sections"
// @Router /lists/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	return c.JSON(h.service.Search(c.Query("q"), c.QueryInt("scope", ScopeTitle)))
}

// HandleSnapshot writes the current lists to object storage.
// @Summary Snapshot Lists
// @Tags lists
// @Produce json
// @Success 200 {object} map[string]string "Snapshot object"
// @Failure 400 {object} map[string]string "Object storage disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lists/snapshot [post]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	object, err := h.service.Snapshot(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"object": object})
}

func (h *Handler) respond(c *fiber.Ctx) func(Result, error) error {
	return func(res Result, err error) error {
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(res)
	}
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		status = fiber.StatusBadRequest
	default:
		logger.WithRayID(h.service.logger, c).Error("Lists request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
