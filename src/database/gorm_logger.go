package database

import (
	"time"

	"investments-api/pkg/logger"

	gormlogger "gorm.io/gorm/logger"
)

type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, v ...interface{}) {
	w.log.Infof(format, v...)
}

// NewGormLogger routes gorm's output through the application logger.
// Verbose logs every statement; otherwise only slow queries and errors.
func NewGormLogger(log *logger.Logger, verbose bool) gormlogger.Interface {
	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}

	return gormlogger.New(gormWriter{log: log}, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
