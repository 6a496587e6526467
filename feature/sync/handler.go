package sync

import (
	"errors"

	"esl-manager/core/drift"
	"esl-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for label verification.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/verify", h.HandleVerify)
	group.Get("/status", h.HandleStatus)
	group.Get("/labels/:identifier", h.HandleLabelDetail)
}

// HandleVerify runs a synchronous verification across all stores.
// @Summary Run Verification
// @Description Verify every sync-enabled store against the vendor platform and return the per-store results. Detected drift queues resync tasks.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {array} drift.VerificationResult "Per-store results"
// @Failure 409 {object} map[string]string "A run is already in progress"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/verify [post]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Manual verification requested")

	results, err := h.service.VerifyNow(c.Context())
	if err != nil {
		if errors.Is(err, drift.ErrRunInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Manual verification failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(results)
}

// HandleLabelDetail returns the cross-system view of a single label.
// @Summary Get Label Detail
// @Description Resolve a label by id, external id or virtual space id and check its presence on the vendor platform.
// @Tags sync
// @Accept json
// @Produce json
// @Param identifier path string true "Label identifier (id, external id or virtual space id)"
// @Success 200 {object} sync.LabelDetailReport "Label Detail"
// @Failure 404 {object} map[string]string "Label not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/labels/{identifier} [get]
func (h *Handler) HandleLabelDetail(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.LabelDetail(c.Context(), identifier)
	if err != nil {
		if errors.Is(err, ErrLabelNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Label detail check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleStatus reports the scheduler and queue state.
// @Summary Verification Status
// @Description Report whether the scheduler is running, whether a run is in flight, and the pending resync queue depth.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} sync.StatusReport "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Status(c.Context())
	if err != nil {
		l.Error("Status query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}
