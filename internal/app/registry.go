package app

import (
	"database/sql"

	"go-hr-admin/internal/account"
	"go-hr-admin/internal/config"
	"go-hr-admin/internal/department"
	"go-hr-admin/internal/employee"
	"go-hr-admin/internal/messaging/kafka"
	"go-hr-admin/internal/middleware"
	"go-hr-admin/internal/position"
	"go-hr-admin/internal/rbac"
	"go-hr-admin/internal/rbac/infra"
	"go-hr-admin/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	accountRepo := account.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	positionRepo := position.NewRepository(gormDB)
	workflowRepo := workflow.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewDefaultService(enforcer, logger)
	if err != nil {
		return err
	}

	// --- Lifecycle collaborators ---
	counter := department.NewCounter(departmentRepo, logger)
	guard := position.NewGuard(positionRepo, employeeRepo, rdb, logger)
	recorder := workflow.NewRecorder(workflowRepo, logger)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, counter, logger)
	positionService := position.NewService(positionRepo, rdb, logger)
	workflowService := workflow.NewService(workflowRepo, logger)
	employeeService := employee.NewService(db, employeeRepo, employee.Collaborators{
		Accounts:    accountRepo,
		Departments: departmentRepo,
		Counter:     counter,
		Guard:       guard,
		Recorder:    recorder,
		Outbox:      outboxRepo,
		Redis:       rdb,
	}, logger)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	positionHandler := position.NewHandler(positionService, logger)
	workflowHandler := workflow.NewHandler(workflowService, logger)

	// --- Routes Registration ---
	auth := middleware.AuthMiddleware(cfg.Auth.JWTSecret)
	api := router.Group("/api/v1")
	{
		department.RegisterRoutes(api, departmentHandler, rbacService, auth, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, auth, rdb, logger)
		position.RegisterRoutes(api, positionHandler, rbacService, auth, logger)
		workflow.RegisterRoutes(api, workflowHandler, rbacService, auth, logger)
	}

	return nil
}
