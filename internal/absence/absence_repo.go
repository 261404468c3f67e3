package absence

import (
	"context"
	"database/sql"

	"github.com/JaSamMarko/back-office/internal/shared/connection"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Record) error
	FindAll(ctx context.Context, filter Filter) ([]Record, error)
	FindByID(ctx context.Context, id string) (*Record, error)
	FindApprovedByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	Update(ctx context.Context, r *Record) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, r.tx)
}

func (r *repository) withEmployee(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Model(&Record{}).
		Select("absence_records.*, e.first_name AS employee_first_name, e.last_name AS employee_last_name").
		Joins("JOIN employees e ON e.id = absence_records.employee_id")
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.conn(ctx).Create(rec).Error
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Record, error) {
	db := r.withEmployee(ctx)

	if filter.EmployeeID != "" {
		db = db.Where("absence_records.employee_id = ?", filter.EmployeeID)
	}
	if filter.AbsenceType != "" {
		db = db.Where("absence_records.absence_type = ?", filter.AbsenceType)
	}
	if filter.Approved != nil {
		db = db.Where("absence_records.approved = ?", *filter.Approved)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		db = db.Where("LOWER(e.first_name) LIKE LOWER(?) OR LOWER(e.last_name) LIKE LOWER(?)", like, like)
	}

	var records []Record
	err := db.Order("absence_records.start_date DESC").Find(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := r.withEmployee(ctx).Where("absence_records.id = ?", id).First(&rec).Error
	return &rec, err
}

func (r *repository) FindApprovedByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	var records []Record
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("approved = ?", true).
		Find(&records).Error
	return records, err
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.conn(ctx).
		Model(rec).
		Select("start_date", "end_date", "absence_type", "approved", "reason", "updated_at").
		Updates(rec).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Record{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
