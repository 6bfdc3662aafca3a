// Package logger builds the structured zap logger used by virtual-moments.
//
// Log lines go to stderr in console form. When a log path is configured, the
// same entries are also written as JSON to a size-rotated file:
//
//	log := logger.New("debug", "logs/virtualmoments.log")
//	defer log.Sync()
//	log.Info("extraction started", zap.String("profile", url))
package logger

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a logger at the given level. An empty path disables file output.
func New(level, path string) *zap.Logger {
	lvl := ParseLevel(level)

	fileConfig := encoderConfig()

	consoleConfig := fileConfig
	consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.Lock(os.Stderr), lvl),
	}

	if core := fileCore(fileConfig, path, lvl); core != nil {
		cores = append(cores, core)
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// NewFile creates a logger that only writes JSON to the rotated file at
// path. It is meant for full-screen front-ends where stderr is taken.
// An empty path yields a no-op logger.
func NewFile(level, path string) *zap.Logger {
	core := fileCore(encoderConfig(), path, ParseLevel(level))
	if core == nil {
		return zap.NewNop()
	}
	return zap.New(core, zap.AddCaller())
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func fileCore(cfg zapcore.EncoderConfig, path string, lvl zapcore.Level) zapcore.Core {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil
	}
	return zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}),
		lvl,
	)
}

// ParseLevel maps a level name to a zap level. Unknown names yield info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
