package middleware

import (
	"net/http"

	"github.com/JaSamMarko/back-office/internal/shared/apperror"
	"github.com/JaSamMarko/back-office/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can decide role/resource/action.
type RBACService interface {
	Enforce(role, resource, action string) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "missing role in auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, err.Error(), nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
