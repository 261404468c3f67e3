package absence_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/JaSamMarko/back-office/internal/absence"
	absenceerrors "github.com/JaSamMarko/back-office/internal/absence/errors"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka"
	kafkaMock "github.com/JaSamMarko/back-office/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeAbsenceRepository struct {
	createFn                 func(ctx context.Context, r *absence.Record) error
	findAllFn                func(ctx context.Context, filter absence.Filter) ([]absence.Record, error)
	findByIDFn               func(ctx context.Context, id string) (*absence.Record, error)
	findApprovedByEmployeeFn func(ctx context.Context, employeeID string) ([]absence.Record, error)
	updateFn                 func(ctx context.Context, r *absence.Record) error
	deleteFn                 func(ctx context.Context, id string) error
	employeeExistsFn         func(ctx context.Context, employeeID string) (bool, error)
}

func (f *fakeAbsenceRepository) WithTx(tx *sql.Tx) absence.Repository {
	return f
}

func (f *fakeAbsenceRepository) Create(ctx context.Context, r *absence.Record) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	return nil
}

func (f *fakeAbsenceRepository) FindAll(ctx context.Context, filter absence.Filter) ([]absence.Record, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeAbsenceRepository) FindByID(ctx context.Context, id string) (*absence.Record, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAbsenceRepository) FindApprovedByEmployee(ctx context.Context, employeeID string) ([]absence.Record, error) {
	if f.findApprovedByEmployeeFn != nil {
		return f.findApprovedByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeAbsenceRepository) Update(ctx context.Context, r *absence.Record) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, r)
	}
	return nil
}

func (f *fakeAbsenceRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeAbsenceRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

type absenceServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service absence.Service
	repo    *fakeAbsenceRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupAbsenceServiceTest(t *testing.T) *absenceServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAbsenceRepository{}
	outbox := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
	svc := absence.NewService(db, repo, outbox)

	return &absenceServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func expectOutbox(deps *absenceServiceDeps, recordID *string) {
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
			if recordID != nil {
				*recordID = event.RecordID
			}
			return nil
		})
}

func strPtr(s string) *string { return &s }

func TestAbsenceService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		var created *absence.Record
		deps.repo.createFn = func(ctx context.Context, r *absence.Record) error {
			created = r
			return nil
		}
		var outboxID string
		expectOutbox(deps, &outboxID)

		resp, err := deps.service.Create(ctx, absence.CreateAbsenceRequest{
			EmployeeID:  employeeID,
			StartDate:   strPtr("2026-07-06"),
			EndDate:     strPtr("2026-07-10"),
			AbsenceType: absence.TypeVacation,
			Reason:      " summer ",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, "summer", resp.Reason)
		assert.Equal(t, "Godišnji odmor", resp.AbsenceTypeLabel)
		assert.Equal(t, 5, *resp.Days)
		assert.Equal(t, resp.ID, outboxID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("inverted range persists nothing", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		deps.repo.createFn = func(ctx context.Context, r *absence.Record) error {
			t.Fatal("record must not be persisted")
			return nil
		}

		_, err := deps.service.Create(ctx, absence.CreateAbsenceRequest{
			EmployeeID:  employeeID,
			StartDate:   strPtr("2026-07-10"),
			EndDate:     strPtr("2026-07-06"),
			AbsenceType: absence.TypeSick,
		})

		assert.ErrorIs(t, err, absenceerrors.ErrInvalidDateRange)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("open ended absence is accepted", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		expectOutbox(deps, nil)

		resp, err := deps.service.Create(ctx, absence.CreateAbsenceRequest{
			EmployeeID:  employeeID,
			StartDate:   strPtr("2026-07-10"),
			AbsenceType: absence.TypeSick,
		})

		assert.NoError(t, err)
		assert.Nil(t, resp.EndDate)
		assert.Nil(t, resp.Days)
	})

	t.Run("bad date format", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, absence.CreateAbsenceRequest{
			EmployeeID:  employeeID,
			StartDate:   strPtr("10.07.2026."),
			AbsenceType: absence.TypeSick,
		})

		assert.ErrorIs(t, err, absenceerrors.ErrInvalidDateFormat)
	})

	t.Run("unknown employee rolls back", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.Create(ctx, absence.CreateAbsenceRequest{
			EmployeeID:  employeeID,
			AbsenceType: absence.TypePersonal,
		})

		assert.ErrorIs(t, err, absenceerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAbsenceService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	existing := func() *absence.Record {
		return &absence.Record{
			ID:          id,
			EmployeeID:  uuid.New(),
			StartDate:   day("2026-05-04"),
			EndDate:     day("2026-05-05"),
			AbsenceType: absence.TypePersonal,
		}
	}

	t.Run("success", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, rid string) (*absence.Record, error) {
			return existing(), nil
		}
		deps.repo.updateFn = func(ctx context.Context, r *absence.Record) error {
			assert.Equal(t, absence.TypeSick, r.AbsenceType)
			assert.True(t, r.Approved)
			return nil
		}
		expectOutbox(deps, nil)

		resp, err := deps.service.Update(ctx, id.String(), absence.UpdateAbsenceRequest{
			StartDate:   strPtr("2026-05-04"),
			EndDate:     strPtr("2026-05-06"),
			AbsenceType: absence.TypeSick,
			Approved:    true,
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, *resp.Days)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("inverted range rolls back without update", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, rid string) (*absence.Record, error) {
			return existing(), nil
		}
		deps.repo.updateFn = func(ctx context.Context, r *absence.Record) error {
			t.Fatal("record must not be persisted")
			return nil
		}

		_, err := deps.service.Update(ctx, id.String(), absence.UpdateAbsenceRequest{
			StartDate:   strPtr("2026-05-09"),
			EndDate:     strPtr("2026-05-06"),
			AbsenceType: absence.TypeSick,
		})

		assert.ErrorIs(t, err, absenceerrors.ErrInvalidDateRange)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Update(ctx, id.String(), absence.UpdateAbsenceRequest{AbsenceType: absence.TypeSick})

		assert.ErrorIs(t, err, absenceerrors.ErrAbsenceNotFound)
	})
}

func TestAbsenceService_Approve(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("approves pending record", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, rid string) (*absence.Record, error) {
			return &absence.Record{ID: id, AbsenceType: absence.TypeWedding}, nil
		}
		updated := false
		deps.repo.updateFn = func(ctx context.Context, r *absence.Record) error {
			updated = r.Approved
			return nil
		}
		expectOutbox(deps, nil)

		resp, err := deps.service.Approve(ctx, id.String())

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.True(t, resp.Approved)
	})

	t.Run("already approved is a no-op", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, rid string) (*absence.Record, error) {
			return &absence.Record{ID: id, AbsenceType: absence.TypeWedding, Approved: true}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, r *absence.Record) error {
			t.Fatal("approved record must not be rewritten")
			return nil
		}

		resp, err := deps.service.Approve(ctx, id.String())

		assert.NoError(t, err)
		assert.True(t, resp.Approved)
	})
}

func TestAbsenceService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filters through", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.NewString()
		approved := true
		deps.repo.findAllFn = func(ctx context.Context, filter absence.Filter) ([]absence.Record, error) {
			assert.Equal(t, employeeID, filter.EmployeeID)
			assert.Equal(t, "ana", filter.Query)
			assert.True(t, *filter.Approved)
			return []absence.Record{{ID: uuid.New(), AbsenceType: absence.TypeSick, EmployeeFirstName: "Ana", EmployeeLastName: "Horvat"}}, nil
		}

		resp, err := deps.service.GetAll(ctx, absence.Filter{EmployeeID: employeeID, Approved: &approved, Query: " ana "})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Ana Horvat", resp[0].EmployeeName)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, absence.Filter{AbsenceType: "ANNUAL"})

		assert.ErrorIs(t, err, absenceerrors.ErrInvalidAbsenceType)
	})
}

func TestAbsenceService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, rid string) (*absence.Record, error) {
			return &absence.Record{ID: id, AbsenceType: absence.TypeSick}, nil
		}
		expectOutbox(deps, nil)

		assert.NoError(t, deps.service.Delete(ctx, id.String()))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repository error rolls back", func(t *testing.T) {
		deps := setupAbsenceServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, rid string) (*absence.Record, error) {
			return &absence.Record{ID: id}, nil
		}
		deps.repo.deleteFn = func(ctx context.Context, rid string) error {
			return errors.New("db error")
		}

		assert.Error(t, deps.service.Delete(ctx, id.String()))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
