package sync

import (
	"esl-manager/core/drift"
	"esl-manager/core/platform"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Sync feature.
func NewFeature(db *gorm.DB, client platform.Client, cfg drift.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, client, cfg, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sync"
}

// IsEnabled checks if the feature is enabled. The manual endpoints stay
// available even when the periodic scheduler is configured off.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the sync service so the composition root can start and
// stop the background scheduler with the application lifecycle.
func (f *Feature) Service() *Service {
	return f.service
}
