package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	FieldSession  = "session_id"
	FieldProvider = "ai_provider"
	FieldModel    = "ai_model"
)

// Session tags an entry with the screening session it belongs to.
func Session(id string) zap.Field {
	return zap.String(FieldSession, id)
}

// AIFields describes the AI backend in use. Blank values are left out.
func AIFields(provider, model string) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	if provider = strings.TrimSpace(provider); provider != "" {
		fields = append(fields, zap.String(FieldProvider, provider))
	}
	if model = strings.TrimSpace(model); model != "" {
		fields = append(fields, zap.String(FieldModel, model))
	}
	return fields
}

// WithAI returns log with the AI backend fields attached. A nil log becomes a no-op logger.
func WithAI(log *zap.Logger, provider, model string) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	fields := AIFields(provider, model)
	if len(fields) == 0 {
		return log
	}
	return log.With(fields...)
}
