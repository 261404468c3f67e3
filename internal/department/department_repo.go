package department

import (
	"context"
	"database/sql"

	"github.com/JaSamMarko/back-office/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context, query string) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.conn(ctx).Create(dept).Error
}

// FindAll lists departments ordered by code; query filters on code or
// name, case-insensitively.
func (r *repository) FindAll(ctx context.Context, query string) ([]Department, error) {
	var depts []Department
	db := r.conn(ctx).Order("code ASC")
	if query != "" {
		like := "%" + query + "%"
		db = db.Where("LOWER(code) LIKE LOWER(?) OR LOWER(name) LIKE LOWER(?)", like, like)
	}
	err := db.Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.conn(ctx).First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.conn(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
