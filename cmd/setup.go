package cmd

import (
	"context"
	"fmt"
	"os"

	"hvac-matcher/core/config"
	"hvac-matcher/core/logger"
	"hvac-matcher/core/schema"
	"hvac-matcher/core/storage"

	"go.uber.org/zap"
)

// mustSetup loads the configuration and builds the logger. CLI commands
// have no way to run without either, so failures exit.
func mustSetup() (*config.Config, *zap.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	return cfg, logg
}

// loadMaster resolves the master schema. A configured local file wins,
// then the document in object storage, then the copy embedded in the
// binary. store may be nil when no storage client is available.
func loadMaster(ctx context.Context, cfg *config.Config, store storage.Client, logg *zap.Logger) (*schema.Master, error) {
	if cfg.Schema.Path != "" {
		if _, err := os.Stat(cfg.Schema.Path); err == nil {
			logg.Info("Loading master schema from file", zap.String("path", cfg.Schema.Path))
			return schema.LoadFile(cfg.Schema.Path)
		}
	}

	if cfg.Schema.Object != "" && store != nil {
		logg.Info("Loading master schema from storage",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", cfg.Schema.Object))
		return schema.LoadObject(ctx, store, cfg.Storage.Bucket, cfg.Schema.Object)
	}

	logg.Info("Loading embedded master schema")
	return schema.LoadDefault()
}
