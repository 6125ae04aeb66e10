// Package logging configures the process-wide slog logger on top of a zap core.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New creates a logger that writes console-encoded records at or above level to w
func New(level string, w io.Writer) (*slog.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapLevel,
	)

	return slog.New(zapslog.NewHandler(core)), nil
}

// Setup installs a logger built by New as the slog default
func Setup(level string, w io.Writer) error {
	logger, err := New(level, w)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}
