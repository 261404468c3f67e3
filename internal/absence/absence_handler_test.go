package absence_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaSamMarko/back-office/internal/absence"
	absenceerrors "github.com/JaSamMarko/back-office/internal/absence/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

type fakeAbsenceService struct {
	createFn  func(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error)
	getAllFn  func(ctx context.Context, filter absence.Filter) ([]absence.AbsenceResponse, error)
	getByIDFn func(ctx context.Context, id string) (absence.AbsenceResponse, error)
	updateFn  func(ctx context.Context, id string, req absence.UpdateAbsenceRequest) (absence.AbsenceResponse, error)
	approveFn func(ctx context.Context, id string) (absence.AbsenceResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeAbsenceService) Create(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeAbsenceService) GetAll(ctx context.Context, filter absence.Filter) ([]absence.AbsenceResponse, error) {
	return f.getAllFn(ctx, filter)
}
func (f *fakeAbsenceService) GetByID(ctx context.Context, id string) (absence.AbsenceResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeAbsenceService) Update(ctx context.Context, id string, req absence.UpdateAbsenceRequest) (absence.AbsenceResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeAbsenceService) Approve(ctx context.Context, id string) (absence.AbsenceResponse, error) {
	return f.approveFn(ctx, id)
}
func (f *fakeAbsenceService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestAbsenceHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		employeeID := uuid.NewString()
		svc := &fakeAbsenceService{
			createFn: func(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
				assert.Equal(t, employeeID, req.EmployeeID)
				assert.Equal(t, "2026-03-10", *req.StartDate)
				return absence.AbsenceResponse{ID: uuid.NewString(), EmployeeID: req.EmployeeID, AbsenceType: req.AbsenceType}, nil
			},
		}

		h := absence.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + employeeID + `","absence_type":"SICK","start_date":"2026-03-10","end_date":"2026-03-11"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/absences", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Ok)
	})

	t.Run("unknown absence type fails binding", func(t *testing.T) {
		h := absence.NewHandler(&fakeAbsenceService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.NewString() + `","absence_type":"ANNUAL"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/absences", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("inverted range surfaces message", func(t *testing.T) {
		svc := &fakeAbsenceService{
			createFn: func(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
				return absence.AbsenceResponse{}, absenceerrors.ErrInvalidDateRange
			},
		}
		h := absence.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.NewString() + `","absence_type":"SICK","start_date":"2026-03-12","end_date":"2026-03-11"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/absences", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Equal(t, "Start date must be before end date.", env.Error.Message)
	})
}

func TestAbsenceHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("parses filters", func(t *testing.T) {
		employeeID := uuid.NewString()
		svc := &fakeAbsenceService{
			getAllFn: func(ctx context.Context, filter absence.Filter) ([]absence.AbsenceResponse, error) {
				assert.Equal(t, employeeID, filter.EmployeeID)
				assert.Equal(t, "SICK", filter.AbsenceType)
				if assert.NotNil(t, filter.Approved) {
					assert.False(t, *filter.Approved)
				}
				return []absence.AbsenceResponse{{ID: "1"}}, nil
			},
		}

		h := absence.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/absences?employee_id="+employeeID+"&absence_type=SICK&approved=false", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid approved flag", func(t *testing.T) {
		h := absence.NewHandler(&fakeAbsenceService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/absences?approved=maybe", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAbsenceHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeAbsenceService{
			approveFn: func(ctx context.Context, rid string) (absence.AbsenceResponse, error) {
				assert.Equal(t, id, rid)
				return absence.AbsenceResponse{ID: rid, Approved: true}, nil
			},
		}

		h := absence.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/absences/"+id+"/approve", nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var got absence.AbsenceResponse
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &got))
		assert.True(t, got.Approved)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeAbsenceService{
			approveFn: func(ctx context.Context, rid string) (absence.AbsenceResponse, error) {
				return absence.AbsenceResponse{}, absenceerrors.ErrAbsenceNotFound
			},
		}

		h := absence.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/absences/x/approve", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

		h.Approve(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAbsenceHandler_UpdateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.NewString()

	svc := &fakeAbsenceService{
		updateFn: func(ctx context.Context, rid string, req absence.UpdateAbsenceRequest) (absence.AbsenceResponse, error) {
			assert.Equal(t, id, rid)
			assert.Nil(t, req.StartDate)
			return absence.AbsenceResponse{ID: rid, AbsenceType: req.AbsenceType}, nil
		},
		deleteFn: func(ctx context.Context, rid string) error {
			assert.Equal(t, id, rid)
			return nil
		},
	}
	h := absence.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/absences/"+id, strings.NewReader(`{"absence_type":"PERSONAL"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id}}
	h.Update(c)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/absences/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	h.Delete(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
