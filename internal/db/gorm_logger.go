package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/logging"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = time.Second

// gormWriter forwards gorm's slow query and error lines to the zap logger.
type gormWriter struct {
	logger *logging.Logger
}

func (writer gormWriter) Printf(format string, args ...any) {
	writer.logger.Warn("gorm", "message", fmt.Sprintf(format, args...))
}

func newGormLogger(logger *logging.Logger) gormlogger.Interface {
	config := gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	}
	if logger == nil {
		config.Colorful = true
		return gormlogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), config)
	}
	return gormlogger.New(gormWriter{logger: logger}, config)
}
