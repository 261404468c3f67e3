package employee

import (
	"context"
	"database/sql"

	"github.com/JaSamMarko/back-office/internal/absence"
	"github.com/JaSamMarko/back-office/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context, filter Filter) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindMentees(ctx context.Context, mentorID string) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	DepartmentExists(ctx context.Context, id string) (bool, error)
	AccountExists(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, r.tx)
}

// detailed preloads what a full employee response shows, including the
// approved absences behind used_absence_days.
func (r *repository) detailed(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Preload("Account").
		Preload("Department").
		Preload("Mentor").
		Preload("Absences", "approved = ?", true)
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Employee, error) {
	db := r.detailed(ctx).
		Joins("LEFT JOIN accounts a ON a.id = employees.account_id")

	if filter.DepartmentID != "" {
		db = db.Where("employees.department_id = ?", filter.DepartmentID)
	}
	if filter.Permanent != nil {
		db = db.Where("employees.permanent = ?", *filter.Permanent)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		db = db.Where(
			"LOWER(employees.first_name) LIKE LOWER(@q) OR LOWER(employees.last_name) LIKE LOWER(@q) "+
				"OR LOWER(a.username) LIKE LOWER(@q) OR LOWER(a.email) LIKE LOWER(@q) "+
				"OR LOWER(employees.personal_id) LIKE LOWER(@q) OR LOWER(employees.position) LIKE LOWER(@q) "+
				"OR LOWER(employees.work_mail) LIKE LOWER(@q) OR LOWER(employees.private_email) LIKE LOWER(@q)",
			sql.Named("q", like),
		)
	}

	var employees []Employee
	err := db.
		Order("employees.last_name ASC").
		Order("employees.first_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.detailed(ctx).First(&e, "employees.id = ?", id).Error
	return &e, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Select("id", "first_name", "last_name", "position").
		Order("last_name ASC").
		Order("first_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindMentees(ctx context.Context, mentorID string) ([]Employee, error) {
	var employees []Employee
	err := r.detailed(ctx).
		Where("mentor_id = ?", mentorID).
		Order("last_name ASC").
		Order("first_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Omit(clause.Associations).Save(e).Error
}

// Delete removes the employee with its absences and detaches mentees.
// The explicit statements match the foreign key actions so the outcome
// does not depend on the database enforcing them.
func (r *repository) Delete(ctx context.Context, id string) error {
	db := r.conn(ctx)

	if err := db.Where("employee_id = ?", id).Delete(&absence.Record{}).Error; err != nil {
		return err
	}
	if err := db.Model(&Employee{}).Where("mentor_id = ?", id).Update("mentor_id", nil).Error; err != nil {
		return err
	}

	res := db.Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "employees", id)
}

func (r *repository) DepartmentExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "departments", id)
}

func (r *repository) AccountExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "accounts", id)
}

func (r *repository) exists(ctx context.Context, table, id string) (bool, error) {
	var count int64
	err := r.conn(ctx).Table(table).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
