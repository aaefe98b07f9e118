package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/srkasse/backend/internal/application/catalog"
	identityapp "github.com/srkasse/backend/internal/application/identity"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/srkasse/backend/internal/infrastructure/auth"
	"github.com/srkasse/backend/internal/infrastructure/config"
	"github.com/srkasse/backend/internal/infrastructure/logger"
	"github.com/srkasse/backend/internal/infrastructure/persistence"
	"github.com/srkasse/backend/internal/interfaces/http/handler"
	"github.com/srkasse/backend/internal/interfaces/http/middleware"
	"github.com/srkasse/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting catalog backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Code tables are fixed at startup; a bad table is a programming error
	registry, err := catalog.NewRegistry(catalog.DefaultTables())
	if err != nil {
		log.Fatal("Failed to build code registry", zap.Error(err))
	}
	composer := catalog.NewComposer(registry)

	// Database connection with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB, composer)
	tenantRepo := persistence.NewGormTenantRepository(db.DB)

	// Application services
	productService := catalogapp.NewProductService(productRepo, composer)
	codeMapService := catalogapp.NewCodeMapService(registry)
	tenantService := identityapp.NewTenantService(tenantRepo)
	jwtService := auth.NewJWTService(cfg.JWT)

	// HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	codeMapHandler := handler.NewCodeMapHandler(codeMapService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	healthHandler := handler.NewHealthHandler(db, version)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := router.NewEngine(log, jwtService)

	// Health endpoint outside API versioning for load balancers
	engine.GET("/health", healthHandler.Check)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(productHandler).
		Register(codeMapHandler).
		Register(tenantHandler).
		Register(healthHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
