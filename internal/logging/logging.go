// Package logging builds the zap logger used for diagnostics.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Tiliavir/punch-clock/internal/config"
)

// New builds a logger from cfg. An empty cfg.File logs to stderr.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	output := "stderr"
	if cfg.File != "" {
		output = cfg.File
	}

	encoder := zap.NewDevelopmentEncoderConfig()
	if cfg.Format == "json" {
		encoder = zap.NewProductionEncoderConfig()
	}
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder

	zc := zap.Config{
		Level:             level,
		Encoding:          cfg.Format,
		EncoderConfig:     encoder,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{output},
		DisableStacktrace: true,
	}
	return zc.Build()
}
