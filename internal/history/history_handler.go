package history

import (
	"net/http"

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
	l := zap.L().Named("history.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetByRecord(c *gin.Context) {
	recordType := c.Param("record_type")
	recordID := c.Param("record_id")

	resp, err := h.service.GetByRecord(c.Request.Context(), recordType, recordID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("history request failed",
			zap.String("record_type", recordType),
			zap.String("record_id", recordID),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}
