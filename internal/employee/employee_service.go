package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/JaSamMarko/back-office/internal/absence"
	employeeerrors "github.com/JaSamMarko/back-office/internal/employee/errors"
	"github.com/JaSamMarko/back-office/internal/events"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka"
	"github.com/JaSamMarko/back-office/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKey = "employees:options"
	dateLayout         = "2006-01-02"
)

// AbsenceReader is the slice of the absence repository the vacation
// summary needs.
type AbsenceReader interface {
	FindApprovedByEmployee(ctx context.Context, employeeID string) ([]absence.Record, error)
}

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter Filter) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetMentees(ctx context.Context, id string) ([]EmployeeResponse, error)
	GetVacationSummary(ctx context.Context, id string) (VacationSummaryResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	absences AbsenceReader
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	absences AbsenceReader,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		absences: absences,
		outbox:   outboxRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("last_name", req.LastName),
	)

	empl := &Employee{ID: uuid.New()}
	if err := applyRequest(empl, req); err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.checkReferences(ctx, qtx, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := s.recordChange(ctx, tx, empl, events.ChangeCreated); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	s.invalidateOptions(ctx)

	contextutil.Logger(ctx, s.logger).Info("create employee success", zap.String("employee_id", empl.ID.String()))
	return s.reload(ctx, empl), nil
}

func (s *service) GetAll(ctx context.Context, filter Filter) ([]EmployeeResponse, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.DepartmentID != "" {
		if _, err := uuid.Parse(filter.DepartmentID); err != nil {
			return nil, employeeerrors.ErrDepartmentNotFound
		}
	}

	employees, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

// GetOptions serves the id/name list used by selection widgets. Cache
// misses are collapsed with singleflight.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(employees))
		for i, e := range employees {
			resp[i] = EmployeeOptionResponse{ID: e.ID.String(), FullName: e.FullName(), Position: e.Position}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeOptionsKey, data, time.Hour).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetMentees(ctx context.Context, id string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	mentees, err := s.repo.FindMentees(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(mentees), nil
}

func (s *service) GetVacationSummary(ctx context.Context, id string) (VacationSummaryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return VacationSummaryResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VacationSummaryResponse{}, mapRepositoryError(err)
	}

	approved, err := s.absences.FindApprovedByEmployee(ctx, id)
	if err != nil {
		s.logger.Error("load approved absences failed", zap.String("employee_id", id), zap.Error(err))
		return VacationSummaryResponse{}, err
	}
	empl.Absences = approved

	total := empl.TotalVacationDays()
	used := empl.UsedAbsenceDays()
	return VacationSummaryResponse{
		EmployeeID:             id,
		VacationDays:           empl.VacationDays,
		AdditionalVacationDays: empl.AdditionalVacationDays,
		TotalVacationDays:      total,
		UsedAbsenceDays:        used,
		RemainingVacationDays:  total - used,
	}, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := applyRequest(empl, CreateEmployeeRequest(req)); err != nil {
		s.logger.Warn("update employee validation failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if err := s.checkReferences(ctx, qtx, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := s.recordChange(ctx, tx, empl, events.ChangeUpdated); err != nil {
		s.logger.Error("update employee outbox persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	s.invalidateOptions(ctx)

	contextutil.Logger(ctx, s.logger).Info("update employee success", zap.String("employee_id", id))
	return s.reload(ctx, empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := s.recordChange(ctx, tx, empl, events.ChangeDeleted); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}
	s.invalidateOptions(ctx)

	contextutil.Logger(ctx, s.logger).Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// checkReferences verifies the linked account, department and mentor.
// Mentor links, including a self link, are not checked for cycles.
func (s *service) checkReferences(ctx context.Context, repo Repository, empl *Employee) error {
	if empl.MentorID != nil {
		ok, err := repo.Exists(ctx, empl.MentorID.String())
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.ErrMentorNotFound
		}
	}
	if empl.DepartmentID != nil {
		ok, err := repo.DepartmentExists(ctx, empl.DepartmentID.String())
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.ErrDepartmentNotFound
		}
	}
	if empl.AccountID != nil {
		ok, err := repo.AccountExists(ctx, empl.AccountID.String())
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.ErrAccountNotFound
		}
	}
	return nil
}

// reload re-reads the committed employee with its associations. A failed
// read falls back to the in-memory row.
func (s *service) reload(ctx context.Context, empl *Employee) EmployeeResponse {
	fresh, err := s.repo.FindByID(ctx, empl.ID.String())
	if err != nil || fresh == nil {
		s.logger.Warn("reload employee failed", zap.String("employee_id", empl.ID.String()), zap.Error(err))
		return mapToResponse(*empl)
	}
	return mapToResponse(*fresh)
}

func (s *service) recordChange(ctx context.Context, tx *sql.Tx, empl *Employee, changeType string) error {
	if s.outbox == nil {
		return nil
	}
	event, err := kafka.NewRecordChange(ctx, events.RecordEmployee, empl.ID.String(), changeType, mapToResponse(*empl))
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}
