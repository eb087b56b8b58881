package logger

import (
	"github.com/dezh-tech/immortal/pkg/logger"
)

// InitGlobalLogger initializes the process-wide logger from config.
func InitGlobalLogger(cfg *logger.Config) {
	logger.InitGlobalLogger(cfg)
}

func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}
