package logger

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

// New builds a JSON logger for production and staging, and a console logger otherwise.
func New(environment, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch environment {
	case "production", "staging":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// StdLog adapts l for libraries that expect a *log.Logger, such as chi's request logger.
func StdLog(l *zap.Logger) *log.Logger {
	return zap.NewStdLog(l.WithOptions(zap.AddCallerSkip(1)))
}

// GormLevel picks how chatty gorm is: every statement in development, only
// slow queries and errors elsewhere.
func GormLevel(environment string) gormlogger.LogLevel {
	switch environment {
	case "development":
		return gormlogger.Info
	case "test":
		return gormlogger.Silent
	default:
		return gormlogger.Warn
	}
}
