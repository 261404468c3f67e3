package absence

import (
	"context"
	"database/sql"
	"strings"
	"time"

	absenceerrors "github.com/JaSamMarko/back-office/internal/absence/errors"
	"github.com/JaSamMarko/back-office/internal/events"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka"
	"github.com/JaSamMarko/back-office/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)
	GetAll(ctx context.Context, filter Filter) ([]AbsenceResponse, error)
	GetByID(ctx context.Context, id string) (AbsenceResponse, error)
	Update(ctx context.Context, id string, req UpdateAbsenceRequest) (AbsenceResponse, error)
	Approve(ctx context.Context, id string) (AbsenceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("absence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absence.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error) {
	s.logger.Debug("create absence requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("absence_type", req.AbsenceType),
	)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AbsenceResponse{}, absenceerrors.ErrInvalidEmployeeID
	}
	rec := &Record{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Approved:   req.Approved,
		Reason:     strings.TrimSpace(req.Reason),
	}
	if err := applyDetails(rec, req.StartDate, req.EndDate, req.AbsenceType); err != nil {
		s.logger.Warn("create absence validation failed", zap.Error(err))
		return AbsenceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create absence begin tx failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create absence employee check failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	if !exists {
		return AbsenceResponse{}, absenceerrors.ErrEmployeeNotFound
	}

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("create absence persist failed", zap.Error(err))
		return AbsenceResponse{}, mapRepositoryError(err)
	}
	if err := s.recordChange(ctx, tx, rec, events.ChangeCreated); err != nil {
		s.logger.Error("create absence outbox persist failed", zap.Error(err))
		return AbsenceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create absence commit failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	contextutil.Logger(ctx, s.logger).Info("create absence success",
		zap.String("absence_id", rec.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*rec), nil
}

func (s *service) GetAll(ctx context.Context, filter Filter) ([]AbsenceResponse, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, absenceerrors.ErrInvalidEmployeeID
		}
	}
	if filter.AbsenceType != "" && !IsValidType(filter.AbsenceType) {
		return nil, absenceerrors.ErrInvalidAbsenceType
	}

	records, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all absences failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AbsenceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AbsenceResponse{}, absenceerrors.ErrInvalidAbsenceID
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rec), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAbsenceRequest) (AbsenceResponse, error) {
	s.logger.Debug("update absence requested", zap.String("absence_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return AbsenceResponse{}, absenceerrors.ErrInvalidAbsenceID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update absence begin tx failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	if err := applyDetails(rec, req.StartDate, req.EndDate, req.AbsenceType); err != nil {
		s.logger.Warn("update absence validation failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, err
	}
	rec.Approved = req.Approved
	rec.Reason = strings.TrimSpace(req.Reason)

	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("update absence persist failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, mapRepositoryError(err)
	}
	if err := s.recordChange(ctx, tx, rec, events.ChangeUpdated); err != nil {
		s.logger.Error("update absence outbox persist failed", zap.Error(err))
		return AbsenceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update absence commit failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, err
	}
	contextutil.Logger(ctx, s.logger).Info("update absence success", zap.String("absence_id", id))

	return mapToResponse(*rec), nil
}

func (s *service) Approve(ctx context.Context, id string) (AbsenceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AbsenceResponse{}, absenceerrors.ErrInvalidAbsenceID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve absence begin tx failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}
	if rec.Approved {
		return mapToResponse(*rec), nil
	}

	rec.Approved = true
	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("approve absence persist failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, err
	}
	if err := s.recordChange(ctx, tx, rec, events.ChangeUpdated); err != nil {
		return AbsenceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approve absence commit failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, err
	}
	contextutil.Logger(ctx, s.logger).Info("approve absence success", zap.String("absence_id", id))

	return mapToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return absenceerrors.ErrInvalidAbsenceID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete absence failed", zap.String("absence_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := s.recordChange(ctx, tx, rec, events.ChangeDeleted); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete absence commit failed", zap.String("absence_id", id), zap.Error(err))
		return err
	}
	contextutil.Logger(ctx, s.logger).Info("delete absence success", zap.String("absence_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *sql.Tx, rec *Record, changeType string) error {
	if s.outbox == nil {
		return nil
	}
	event, err := kafka.NewRecordChange(ctx, events.RecordAbsenceRecord, rec.ID.String(), changeType, mapToResponse(*rec))
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

// applyDetails parses and sets the editable fields, then checks the date
// range. rec is left partially modified on error.
func applyDetails(rec *Record, startDate, endDate *string, absenceType string) error {
	if !IsValidType(absenceType) {
		return absenceerrors.ErrInvalidAbsenceType
	}
	start, err := parseOptionalDate(startDate)
	if err != nil {
		return err
	}
	end, err := parseOptionalDate(endDate)
	if err != nil {
		return err
	}

	rec.AbsenceType = absenceType
	rec.StartDate = start
	rec.EndDate = end
	return ValidateRange(*rec)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*value))
	if err != nil {
		return nil, absenceerrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func mapToResponse(rec Record) AbsenceResponse {
	resp := AbsenceResponse{
		ID:               rec.ID.String(),
		EmployeeID:       rec.EmployeeID.String(),
		EmployeeName:     strings.TrimSpace(rec.EmployeeFirstName + " " + rec.EmployeeLastName),
		StartDate:        formatOptionalDate(rec.StartDate),
		EndDate:          formatOptionalDate(rec.EndDate),
		AbsenceType:      rec.AbsenceType,
		AbsenceTypeLabel: TypeLabel(rec.AbsenceType),
		Approved:         rec.Approved,
		Reason:           rec.Reason,
		CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        rec.UpdatedAt.Format(time.RFC3339),
	}
	if days, ok := rec.Days(); ok {
		resp.Days = &days
	}
	return resp
}

func mapToListResponse(records []Record) []AbsenceResponse {
	res := make([]AbsenceResponse, len(records))
	for i, r := range records {
		res[i] = mapToResponse(r)
	}
	return res
}
