package app

import (
	"github.com/JaSamMarko/back-office/internal/absence"
	"github.com/JaSamMarko/back-office/internal/config"
	"github.com/JaSamMarko/back-office/internal/department"
	"github.com/JaSamMarko/back-office/internal/employee"
	"github.com/JaSamMarko/back-office/internal/history"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka"
	"github.com/JaSamMarko/back-office/internal/middleware"
	"github.com/JaSamMarko/back-office/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) error {
	logger := zap.L()

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	absenceRepo := absence.NewRepository(gormDB)
	historyRepo := history.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	departmentService := department.NewServiceWithOutbox(db, departmentRepo, outboxRepo, rdb, logger)
	absenceService := absence.NewService(db, absenceRepo, outboxRepo, logger)
	employeeService := employee.NewService(db, employeeRepo, absenceRepo, outboxRepo, rdb, logger)
	historyService := history.NewService(historyRepo, logger)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService, logger)
	absenceHandler := absence.NewHandler(absenceService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	historyHandler := history.NewHandler(historyService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	auth := middleware.AuthMiddleware(cfg.JWTSecret)
	idempotency := middleware.Idempotency(rdb, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		department.RegisterRoutes(api, departmentHandler, auth, idempotency, rbacService)
		employee.RegisterRoutes(api, employeeHandler, auth, idempotency, rbacService)
		absence.RegisterRoutes(api, absenceHandler, auth, idempotency, rbacService)
		history.RegisterRoutes(api, historyHandler, auth, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, auth)
	}

	return nil
}
