package lists

import (
	"context"
	"time"

	"model-storage/core/objectstore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new lists feature. client may be nil.
func NewFeature(client objectstore.Client, bucket string, cfg Config, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "lists"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}

// Load seeds the storage and registers the feature's routes. A failing seed
// is logged and the lists start empty.
func (f *Feature) Load(app fiber.Router) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := f.service.Seed(ctx); err != nil {
		f.service.logger.Warn("Starting with empty lists", zap.Error(err))
	}
	f.handler.RegisterRoutes(app)
	return nil
}
