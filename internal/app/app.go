package app

import (
	"github.com/JaSamMarko/back-office/internal/absence"
	"github.com/JaSamMarko/back-office/internal/account"
	"github.com/JaSamMarko/back-office/internal/config"
	"github.com/JaSamMarko/back-office/internal/department"
	"github.com/JaSamMarko/back-office/internal/employee"
	"github.com/JaSamMarko/back-office/internal/history"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka"
	"github.com/JaSamMarko/back-office/internal/middleware"
	"github.com/JaSamMarko/back-office/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Models lists every table the services read or write.
func Models() []any {
	return []any{
		&account.Account{},
		&department.Department{},
		&employee.Employee{},
		&absence.Record{},
		&history.Record{},
		&kafka.OutboxRecord{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// BuildApp connects the stores, migrates the schema and mounts every
// module on the router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := Migrate(gormDB); err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.MaxRetries)
		if err != nil {
			return err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR empty, caching and idempotency disabled")
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(rate.Limit(20), 40),
	)

	return registerModules(router, gormDB, rdb, cfg)
}
