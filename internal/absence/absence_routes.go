package absence

import (
	"github.com/JaSamMarko/back-office/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	auth gin.HandlerFunc,
	idempotency gin.HandlerFunc,
	rbacService middleware.RBACService,
) {
	absences := r.Group("/absences")
	absences.Use(auth)
	{
		absences.GET("", middleware.RBACAuthorize(rbacService, "absence", "read"), h.GetAll)
		absences.POST("", middleware.RBACAuthorize(rbacService, "absence", "create"), idempotency, h.Create)
		absences.GET("/:id", middleware.RBACAuthorize(rbacService, "absence", "read"), h.GetById)
		absences.PUT("/:id", middleware.RBACAuthorize(rbacService, "absence", "update"), h.Update)
		absences.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "absence", "approve"), h.Approve)
		absences.DELETE("/:id", middleware.RBACAuthorize(rbacService, "absence", "delete"), h.Delete)
	}
}
