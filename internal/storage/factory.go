package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Tiliavir/punch-clock/internal/config"
)

// OpenBackend connects the backend selected by cfg.
func OpenBackend(ctx context.Context, cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileBackend(cfg.Dir), nil
	case "redis":
		return NewRedisBackend(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
	case "postgres":
		return NewPostgresBackend(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Open connects the configured backend and wraps it in a Store.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", zap.String("backend", cfg.Backend), zap.String("key", cfg.Key))
	return New(backend, cfg.Key, logger), nil
}
