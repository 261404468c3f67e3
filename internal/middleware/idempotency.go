package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/JaSamMarko/back-office/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	idempotencyTTL       = 24 * time.Hour
	idempotencyLockTTL   = 30 * time.Second
)

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a POST that carried the same
// Idempotency-Key for the same user and route. A second request arriving
// while the first is still running gets 409.
func Idempotency(rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString(ContextUserID), idempKey)
		lockKey := cacheKey + ":lock"

		if cached, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, "PROCESSING", "The same request is still being processed", nil)
			c.Abort()
			return
		}
		defer rdb.Del(ctx, lockKey)

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec
		c.Next()

		if status := rec.Status(); status >= 200 && status < 300 {
			if err := rdb.Set(ctx, cacheKey, rec.body.Bytes(), idempotencyTTL).Err(); err != nil {
				log.Warn("store idempotent response failed", zap.Error(err))
			}
		}
	}
}
