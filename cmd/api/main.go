package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "go-marketplace/internal/common/api"
	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/config"
	"go-marketplace/internal/database"
	"go-marketplace/internal/features/audit"
	"go-marketplace/internal/features/developer"
	"go-marketplace/internal/features/extension"
	"go-marketplace/internal/features/installation"
	"go-marketplace/internal/features/snapshot"
	"go-marketplace/internal/features/system"
	"go-marketplace/internal/latency"
	"go-marketplace/internal/logger"
	"go-marketplace/internal/middleware"
	"go-marketplace/internal/store"
	"go-marketplace/pkg/utils"

	_ "go-marketplace/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          apperr.ErrorHandler,
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// NewStore loads the dataset file, generates demo data or starts empty,
// depending on config.
func NewStore(cfg *config.Config, logger *zap.Logger) (*store.Store, error) {
	s, err := store.Open(store.Options{
		DatasetPath:  cfg.DatasetPath,
		SeedDemoData: cfg.SeedDemoData,
		Seed:         cfg.Seed,
		Extensions:   cfg.SeedExtensions,
		Now:          time.Now(),
	})
	if err != nil {
		return nil, err
	}
	d := s.Dump()
	logger.Info("store ready",
		zap.String("dataset", cfg.DatasetPath),
		zap.Int("extensions", len(d.Extensions)),
		zap.Int("reviews", len(d.Reviews)),
		zap.Int("installations", len(d.Installed)),
	)
	return s, nil
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route, logger *zap.Logger) {
	logger.Info("registering routes", zap.Int("count", len(routes)))
	for _, route := range routes {
		logger.Debug("setting up route", zap.String("type", fmt.Sprintf("%T", route)))
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`, ``),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.SetSecret(cfg.JWTSecret)
			if cfg.SkipAuth {
				logger.Warn("authentication disabled, requests act as the development user")
			}
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				logger.Info("server listening", zap.String("addr", port))
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// StartBackground runs the audit mirror and the snapshot scheduler for the
// lifetime of the app.
func StartBackground(lc fx.Lifecycle, mirror *audit.Mirror, snapshots snapshot.SnapshotService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			mirror.Start()
			return snapshots.StartScheduler(ctx)
		},
		OnStop: func(ctx context.Context) error {
			err := snapshots.StopScheduler()
			mirror.Stop()
			return err
		},
	})
}

// @title           Extension Marketplace API
// @version         1.0
// @description     Browse, install, configure, review and publish dashboard extensions.

// @contact.name    API Support

// @host            localhost:8080
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			NewStore,
			func(cfg *config.Config) *latency.Simulator { return latency.New(cfg.SimulatedLatency) },
			audit.NewHub,
			func(h *audit.Hub) audit.Publisher { return h },

			// Repositories
			audit.NewAuditRepository,
			snapshot.NewSnapshotRepository,

			// Services
			audit.NewAuditService,
			audit.NewMirror,
			extension.NewExtensionService,
			installation.NewInstallationService,
			developer.NewDeveloperService,
			snapshot.NewSnapshotService,

			// Controllers
			audit.NewAuditController,
			extension.NewExtensionController,
			installation.NewInstallationController,
			developer.NewDeveloperController,
			system.NewDebugController,

			// API Routes
			AsRoute(extension.NewExtensionApi),
			AsRoute(installation.NewInstallationApi),
			AsRoute(developer.NewDeveloperApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(system.NewDebugApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			StartBackground,
		),
	)

	app.Run()
}
