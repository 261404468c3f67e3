package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	departmenterrors "github.com/JaSamMarko/back-office/internal/department/errors"
	"github.com/JaSamMarko/back-office/internal/events"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka"
	"github.com/JaSamMarko/back-office/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DepartmentListCacheKey = "departments:all"

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, query string) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	s.logger.Debug("create department requested", zap.String("code", req.Code))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:   uuid.New(),
		Code: strings.TrimSpace(req.Code),
		Name: strings.TrimSpace(req.Name),
	}

	if err := qtx.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	if err := s.recordChange(ctx, tx, dept, events.ChangeCreated); err != nil {
		s.logger.Error("create department outbox persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	s.invalidateCache(ctx)

	contextutil.Logger(ctx, s.logger).Info("create department success", zap.String("department_id", dept.ID.String()))
	return mapToResponse(*dept), nil
}

// GetAll serves the unfiltered list from Redis when possible.
func (s *service) GetAll(ctx context.Context, query string) ([]DepartmentResponse, error) {
	query = strings.TrimSpace(query)
	useCache := query == "" && s.rdb != nil

	if useCache {
		if cached, err := s.rdb.Get(ctx, DepartmentListCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	depts, err := s.repo.FindAll(ctx, query)
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	resp := mapToListResponse(depts)

	if useCache {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, DepartmentListCacheKey, data, time.Hour).Err(); err != nil {
				s.logger.Warn("cache department list failed", zap.Error(err))
			}
		}
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	s.logger.Debug("update department requested", zap.String("department_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept.Code = strings.TrimSpace(req.Code)
	dept.Name = strings.TrimSpace(req.Name)

	if err := qtx.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	if err := s.recordChange(ctx, tx, dept, events.ChangeUpdated); err != nil {
		s.logger.Error("update department outbox persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	s.invalidateCache(ctx)

	contextutil.Logger(ctx, s.logger).Info("update department success", zap.String("department_id", id))
	return mapToResponse(*dept), nil
}

// Delete removes the department. Employees referencing it keep their row
// with department_id set to NULL by the foreign key.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete department begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete department failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := s.recordChange(ctx, tx, dept, events.ChangeDeleted); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete department commit failed", zap.Error(err))
		return err
	}
	s.invalidateCache(ctx)

	contextutil.Logger(ctx, s.logger).Info("delete department success", zap.String("department_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *sql.Tx, dept *Department, changeType string) error {
	if s.outbox == nil {
		return nil
	}
	event, err := kafka.NewRecordChange(ctx, events.RecordDepartment, dept.ID.String(), changeType, mapToResponse(*dept))
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DepartmentListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department cache",
			zap.Error(err),
			zap.String("key", DepartmentListCacheKey),
		)
	}
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        dept.ID.String(),
		Code:      dept.Code,
		Name:      dept.Name,
		CreatedAt: dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt: dept.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
