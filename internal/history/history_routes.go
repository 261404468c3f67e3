package history

import (
	"github.com/JaSamMarko/back-office/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
) {
	hist := r.Group("/history")
	hist.Use(auth)
	{
		hist.GET("/:record_type/:record_id", middleware.RBACAuthorize(rbacService, "history", "read"), h.GetByRecord)
	}
}
