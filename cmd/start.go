package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"model-storage/core/config"
	"model-storage/core/database"
	"model-storage/core/loader"
	"model-storage/core/logger"
	"model-storage/core/middleware/auth"
	"model-storage/core/middleware/rayid"
	"model-storage/core/objectstore"

	"model-storage/feature/feed"
	"model-storage/feature/lists"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "model-storage/docs/swagger"
)

// @title Model Storage API
// @version 1.0
// @description Sectioned model storages reporting their changes as update descriptors.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the model storage server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The database only backs the feed; the server runs without it.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to feed database", zap.String("driver", cfg.Database.Driver))
		}

		var store objectstore.Client
		if cfg.Storage.Enabled {
			store, err = objectstore.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(lists.NewFeature(store, cfg.Storage.Bucket, cfg.Lists, logg))
		feedFeature, err := feed.NewFeature(db, cfg.Feed, logg)
		if err != nil {
			return fmt.Errorf("failed to create feed feature: %w", err)
		}
		mgr.Register(feedFeature)

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			errCh <- app.Listen(cfg.Server.Address())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-quit:
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout())
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
