package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lenahart/ledgerlens/internal/common"
	"github.com/lenahart/ledgerlens/internal/config"
	"github.com/lenahart/ledgerlens/internal/engine"
	"github.com/lenahart/ledgerlens/internal/llm"
	"github.com/lenahart/ledgerlens/internal/storage"
)

// openStorage loads config, opens the store, and runs migrations.
func openStorage(ctx context.Context) (*config.Config, *storage.SQLiteStorage, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.NewSQLiteStorage(cfg.StorePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return cfg, store, nil
}

// buildEngine wires the store and oracle into a pipeline engine.
func buildEngine(ctx context.Context, cfg *config.Config, store *storage.SQLiteStorage) (*engine.Engine, error) {
	oracle, err := llm.NewClient(ctx, cfg.Oracle)
	if err != nil {
		return nil, fmt.Errorf("failed to create oracle client: %w", err)
	}

	slog.Debug("Oracle configured", "provider", cfg.Oracle.Provider)

	return engine.New(store, oracle, engine.Options{
		WindowDays:    cfg.WindowDays,
		OracleTimeout: cfg.OracleTimeout,
	}), nil
}

// requireUserID resolves the user flag or config value.
func requireUserID(cfg *config.Config) (string, error) {
	if cfg.UserID == "" {
		return "", common.NewUserError("user ID is required: pass --user or set LENS_USER_ID", common.ErrMissingConfig)
	}
	return cfg.UserID, nil
}
