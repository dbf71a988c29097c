package feed

import (
	"context"
	"time"

	"model-storage/core/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new feed feature. The feature is disabled when db is nil.
func NewFeature(db *gorm.DB, cfg Config, logger *zap.Logger) (*Feature, error) {
	svc, err := NewService(db, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Feature{service: svc, handler: NewHandler(svc)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "feed"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.cfg.Enabled && f.service.db != nil
}

// Load checks the story table, runs the first query and registers the
// feature's routes. Schema problems are logged and do not stop the server.
func (f *Feature) Load(app fiber.Router) error {
	s := f.service
	missing, err := database.MissingColumns(s.db, s.cfg.Table, Columns)
	switch {
	case err != nil:
		s.logger.Warn("Failed to inspect story table", zap.String("table", s.cfg.Table), zap.Error(err))
	case len(missing) > 0:
		s.logger.Warn("Story table is missing columns", zap.String("table", s.cfg.Table), zap.Strings("missing", missing))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Warn("Initial feed query failed", zap.Error(err))
	}

	f.handler.RegisterRoutes(app)
	return nil
}
