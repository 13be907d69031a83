package db

import (
	"context"
	"strings"
	"testing"

	"github.com/daithanwa/dsi202-2025/internal/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGormLoggerForwardsErrorsToZap(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	gormLogger := newGormLogger(logging.NewFromZap(zap.New(core)))

	gormLogger.Error(context.Background(), "query failed: %s", "locked")
	gormLogger.Info(context.Background(), "ignored below warn")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("observed %d entries, want 1", len(entries))
	}
	message, _ := entries[0].ContextMap()["message"].(string)
	if entries[0].Level != zapcore.WarnLevel || !strings.Contains(message, "query failed: locked") {
		t.Fatalf("entry = %+v message %q, want warn with gorm message", entries[0].Entry, message)
	}
}
