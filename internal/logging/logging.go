// Package logging builds the watch daemon's file logger: structured
// JSON entries written through a size/age-rotated file.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/NicabarNimble/go-gitgrab/internal/errors"
)

// Config holds file logger settings.
type Config struct {
	FilePath   string // path to the log file
	Level      string // minimum level: debug, info, warn, error
	MaxSizeMB  int    // size before rotation
	MaxBackups int    // rotated files to keep
	MaxAgeDays int    // days to keep rotated files
}

// New creates a zap logger writing JSON entries to a rotated file.
// Callers own the returned logger and should Sync it on shutdown.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.FilePath == "" {
		return nil, errors.Newf("logging", "FilePath is required")
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 7
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(writer),
		level,
	)

	return zap.New(core), nil
}
