package employee

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
	employees := r.Group("/employees")
	employees.Use(auth)
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			h.GetAll,
		)

		// lighter query, looser limit
		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			h.GetOptions,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			h.GetById,
		)

		employees.GET("/:id/mentees",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			h.GetMentees,
		)

		employees.GET("/:id/vacation",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			h.GetVacationSummary,
		)

		employees.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			idempotency,
			h.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "employee", "update"),
			h.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "delete"),
			h.Delete,
		)
	}
}
