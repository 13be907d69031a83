// Package logging wraps zap with key-value helpers and redaction of
// credential-like fields.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const redacted = "[REDACTED]"

type Logger struct {
	sugared *zap.SugaredLogger
}

// New builds a JSON production logger for "prod"/"production" and a console
// development logger otherwise.
func New(mode string) (*Logger, error) {
	var config zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		config = zap.NewProductionConfig()
	default:
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	base, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Logger{sugared: base.Sugar()}, nil
}

func NewFromZap(base *zap.Logger) *Logger {
	return &Logger{sugared: base.Sugar()}
}

func NewNop() *Logger {
	return &Logger{sugared: zap.NewNop().Sugar()}
}

func (logger *Logger) Sync() {
	_ = logger.sugared.Sync()
}

func (logger *Logger) Debug(message string, keysAndValues ...any) {
	logger.sugared.Debugw(message, sanitize(keysAndValues)...)
}

func (logger *Logger) Info(message string, keysAndValues ...any) {
	logger.sugared.Infow(message, sanitize(keysAndValues)...)
}

func (logger *Logger) Warn(message string, keysAndValues ...any) {
	logger.sugared.Warnw(message, sanitize(keysAndValues)...)
}

func (logger *Logger) Error(message string, keysAndValues ...any) {
	logger.sugared.Errorw(message, sanitize(keysAndValues)...)
}

func (logger *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{sugared: logger.sugared.With(sanitize(keysAndValues)...)}
}

func sanitize(keysAndValues []any) []any {
	if len(keysAndValues) == 0 {
		return keysAndValues
	}
	out := make([]any, 0, len(keysAndValues))
	for index := 0; index < len(keysAndValues); index += 2 {
		if index == len(keysAndValues)-1 {
			out = append(out, keysAndValues[index])
			break
		}
		key := fmt.Sprint(keysAndValues[index])
		value := keysAndValues[index+1]
		if isSensitiveKey(key) {
			value = redacted
		}
		out = append(out, key, value)
	}
	return out
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for _, marker := range []string{"password", "token", "secret", "cookie", "authorization"} {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}
