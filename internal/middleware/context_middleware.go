package middleware

import (
	"time"

	"github.com/JaSamMarko/back-office/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger logs one line per request once the handler chain has
// finished. It must run after RequestID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		contextutil.Logger(c.Request.Context(), log).Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
