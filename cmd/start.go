package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"esl-manager/core/config"
	"esl-manager/core/database"
	"esl-manager/core/loader"
	"esl-manager/core/logger"
	"esl-manager/core/middleware/auth"
	"esl-manager/core/middleware/rayid"
	"esl-manager/core/platform"
	"esl-manager/core/storage"

	"esl-manager/feature/integrity"
	"esl-manager/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "esl-manager/docs/swagger"
)

// @title ESL Manager API
// @version 1.0
// @description API for managing electronic shelf labels and their vendor synchronization.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ESL manager server",
	Long:  `Starts the HTTP server, initializes all enabled features and launches the drift verification scheduler.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the label database. Every feature depends on it, so
		// a failed connection is fatal here, unlike the CLI checks.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to label database", zap.Error(err))
		}
		logg.Info("Connected to label database")

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Vendor Platform Client
		client, err := platform.NewClient(cfg.Platform)
		if err != nil {
			logg.Fatal("Failed to create platform client", zap.Error(err))
		}

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		syncFeature := sync.NewFeature(db, client, cfg.Drift, logg)
		mgr.Register(syncFeature)
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, logg, db))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Launch the drift verification scheduler
		if cfg.Drift.Enabled {
			syncFeature.Service().Start(cfg.Drift.Interval)
		} else {
			logg.Info("Drift verification scheduler disabled by configuration")
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		syncFeature.Service().Stop()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
