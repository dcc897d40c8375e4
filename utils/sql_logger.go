package utils

import (
	"time"

	"gorm.io/gorm/logger"
)

// SQLLogLevel maps a config name to a gorm log level. Unknown names mean warn.
func SQLLogLevel(name string) logger.LogLevel {
	switch name {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// NewSQLLogger sends gorm's statement log through InfoLogger.
func NewSQLLogger(level logger.LogLevel) logger.Interface {
	return logger.New(InfoLogger, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
