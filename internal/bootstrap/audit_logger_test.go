package bootstrap_test

import (
	"context"
	"testing"

	"github.com/JaSamMarko/back-office/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	auditLogger := bootstrap.NewZapAuditLogger(zap.New(core))

	auditLogger.Log(context.Background(), bootstrap.AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": "interrupt"},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "Server is shutting down", fields["message"])
	assert.NotEmpty(t, fields["timestamp"])
}
