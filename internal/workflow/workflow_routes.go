package workflow

import (
	"go-hr-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	workflows := r.Group("/workflows")
	workflows.Use(auth)
	workflows.Use(middleware.ContextLogger(logger))
	{
		workflows.GET("", middleware.RBACAuthorize(rbacService, "workflow", "read"), handler.GetAll)
		workflows.GET("/:id", middleware.RBACAuthorize(rbacService, "workflow", "read"), handler.GetByID)
		workflows.PUT("/:id/approve",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "workflow", "approve"),
			handler.Approve,
		)
		workflows.PUT("/:id/reject",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "workflow", "reject"),
			handler.Reject,
		)
		workflows.PUT("/:id/complete",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "workflow", "complete"),
			handler.Complete,
		)
	}
}
