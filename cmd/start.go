package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hvac-matcher/core/config"
	"hvac-matcher/core/database"
	"hvac-matcher/core/loader"
	"hvac-matcher/core/logger"
	"hvac-matcher/core/middleware/auth"
	"hvac-matcher/core/middleware/rayid"
	"hvac-matcher/core/storage"

	"hvac-matcher/feature/build"
	"hvac-matcher/feature/decode"
	"hvac-matcher/feature/search"
	"hvac-matcher/feature/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "hvac-matcher/docs/swagger"
)

// @title HVAC Replacement Matcher API
// @version 1.0
// @description API for decoding data plates, building model numbers and finding replacement units.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the matcher server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Connect to Database (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to catalog database", zap.String("name", cfg.Database.Name))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Load Master Schema
		master, err := loadMaster(cmd.Context(), cfg, store, logg)
		if err != nil {
			logg.Fatal("Failed to load master schema", zap.Error(err))
		}
		logg.Info("Master schema loaded", zap.Strings("families", master.FamilyCodes()))

		// 7. Resolve Catalog Source
		var catalog search.Catalog
		switch cfg.Matcher.CatalogSource {
		case "database":
			if db != nil {
				catalog = search.NewRepository(db)
			} else {
				logg.Warn("Catalog source is database but no connection is available; search disabled")
			}
		case "document":
			catalog = search.NewDocumentCatalog(store, cfg.Storage.Bucket, cfg.Matcher.CatalogObject)
		default:
			logg.Warn("Unknown catalog source; search disabled",
				zap.String("catalog_source", cfg.Matcher.CatalogSource))
		}

		// 8. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(decode.NewFeature(master, logg))
		mgr.Register(build.NewFeature(master, logg))
		mgr.Register(validate.NewFeature(master, logg))
		mgr.Register(search.NewFeature(catalog, master, logg, cfg.Matcher.TonsTolerance))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging middleware (Zap + RayID)
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 9. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
