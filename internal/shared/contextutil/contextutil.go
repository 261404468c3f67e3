package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithUserID stores the id of the authenticated actor. History rows
// record it as changed_by.
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) string {
	if uid, ok := ctx.Value(userIDKey).(string); ok {
		return uid
	}
	return ""
}

// Metadata is what a record change remembers about the request behind it.
type Metadata struct {
	RequestID string
	UserID    string
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID: GetRequestID(ctx),
		UserID:    GetUserID(ctx),
	}
}

// Logger decorates base with the request_id and user_id found in ctx.
// Fields that are absent are left out; a nil base falls back to zap.L().
func Logger(ctx context.Context, base *zap.Logger) *zap.Logger {
	if base == nil {
		base = zap.L()
	}
	meta := ExtractMetadata(ctx)
	fields := make([]zap.Field, 0, 2)
	if meta.RequestID != "" {
		fields = append(fields, zap.String("request_id", meta.RequestID))
	}
	if meta.UserID != "" {
		fields = append(fields, zap.String("user_id", meta.UserID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
