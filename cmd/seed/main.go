package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/srkasse/backend/internal/application/seedimport"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/srkasse/backend/internal/infrastructure/config"
	"github.com/srkasse/backend/internal/infrastructure/logger"
	"github.com/srkasse/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		filePath     string
		conflictMode string
		maxErrors    int
		logLevel     string
	)

	flag.StringVar(&filePath, "file", "", "Path to the CSV seed source (required)")
	flag.StringVar(&conflictMode, "on-conflict", "", "Collision policy: skip or update (default: from config)")
	flag.IntVar(&maxErrors, "max-errors", 100, "Maximum row errors to report in detail")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: seed -file <seed.csv> [-on-conflict skip|update]")
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if conflictMode == "" {
		conflictMode = cfg.Seed.CollisionPolicy
	}

	registry, err := catalog.NewRegistry(catalog.DefaultTables())
	if err != nil {
		log.Fatal("Failed to build code registry", zap.Error(err))
	}
	composer := catalog.NewComposer(registry)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	productRepo := persistence.NewGormProductRepository(db.DB, composer)
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	allocator := persistence.NewGormSequenceAllocator(db.DB)
	importer := seedimport.NewService(tenantRepo, productRepo, allocator, composer)

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatal("Failed to open seed source", zap.String("file", filePath), zap.Error(err))
	}
	defer f.Close()

	// A cancelled run stops at a row boundary; processed rows stay committed
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = logger.WithContext(ctx, log)
	result, err := importer.ImportFromReader(ctx, f, seedimport.Options{
		ConflictMode: seedimport.ConflictMode(conflictMode),
		MaxErrors:    maxErrors,
	})
	if err != nil {
		log.Fatal("Seed import failed", zap.Error(err))
	}

	log.Info("Seed import completed",
		zap.String("file", filePath),
		zap.String("on_conflict", conflictMode),
		zap.Int("total_rows", result.TotalRows),
		zap.Int("imported", result.ImportedRows),
		zap.Int("updated", result.UpdatedRows),
		zap.Int("skipped", result.SkippedRows),
		zap.Int("error_rows", result.ErrorRows),
	)

	for _, rowErr := range result.Errors {
		log.Warn("Seed row rejected",
			zap.Int("row", rowErr.Row),
			zap.String("code", rowErr.Code),
			zap.String("message", rowErr.Message),
		)
	}
	if result.IsTruncated {
		log.Warn("Error list truncated",
			zap.Int("reported", len(result.Errors)),
			zap.Int("total_errors", result.TotalErrors),
		)
	}

	if result.ErrorRows > 0 {
		os.Exit(2)
	}
}
