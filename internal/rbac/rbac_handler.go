package rbac

import (
	"net/http"
	"strings"

	"github.com/JaSamMarko/back-office/internal/shared/apperror"
	"github.com/JaSamMarko/back-office/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// Check answers whether the caller's role may perform action on
// resource, so clients can hide controls they cannot use.
func (h *Handler) Check(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", apperror.MapValidationError(err).Error())
		return
	}

	role := c.GetString("role")
	allowed, err := h.service.Enforce(role, strings.TrimSpace(req.Resource), strings.TrimSpace(req.Action))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Role: role, Allowed: allowed}, nil)
}

func (h *Handler) MyPermissions(c *gin.Context) {
	perms, err := h.service.Permissions(c.GetString("role"))
	if err != nil {
		h.logger.Error("list permissions failed", zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, perms, nil)
}
