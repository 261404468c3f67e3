package employee

import (
	"net/http"
	"sort"
	"strconv"
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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee", zap.String("user_id", c.GetString("user_id")))
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", apperror.MapValidationError(err).Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := Filter{
		Query:        c.Query("q"),
		DepartmentID: c.Query("department_id"),
	}
	if raw := c.Query("permanent"); raw != "" {
		permanent, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "permanent must be true or false")
			return
		}
		filter.Permanent = &permanent
	}

	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	sortEmployees(resp,
		strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "name"))),
		strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc"))) == "desc",
	)

	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

// sortEmployees orders by last then first name unless sort_by names
// another column.
func sortEmployees(resp []EmployeeResponse, sortBy string, desc bool) {
	key := func(e EmployeeResponse) string {
		switch sortBy {
		case "position":
			return strings.ToLower(e.Position)
		case "work_mail":
			return strings.ToLower(e.WorkMail)
		case "start_date":
			if e.StartDate == nil {
				return ""
			}
			return *e.StartDate
		default:
			return strings.ToLower(e.LastName + " " + e.FirstName)
		}
	}
	sort.SliceStable(resp, func(i, j int) bool {
		if desc {
			return key(resp[i]) > key(resp[j])
		}
		return key(resp[i]) < key(resp[j])
	})
}

func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMentees(c *gin.Context) {
	resp, err := h.service.GetMentees(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetVacationSummary(c *gin.Context) {
	resp, err := h.service.GetVacationSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http update employee", zap.String("employee_id", id))
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", apperror.MapValidationError(err).Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http delete employee", zap.String("employee_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
