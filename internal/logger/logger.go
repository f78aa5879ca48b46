// Package logger builds the zap logger a session writes to. Logs never go
// to stdout, which carries the command responses.
package logger

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nathoo/witchertrack/internal/config"
)

// New builds a logger from cfg. Output goes to cfg.LogFile when set and to
// stderr otherwise. Every record carries the session id.
func New(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development() {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zc.Sampling = nil

	sink := "stderr"
	if cfg.LogFile != "" {
		sink = cfg.LogFile
	}
	zc.OutputPaths = []string{sink}
	zc.ErrorOutputPaths = []string{"stderr"}

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log.With(zap.String("session", uuid.NewString())), nil
}

// Level returns the level the logger was built at, for display.
func Level(log *zap.Logger) zapcore.Level {
	for _, lvl := range []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel} {
		if log.Core().Enabled(lvl) {
			return lvl
		}
	}
	return zapcore.FatalLevel
}
