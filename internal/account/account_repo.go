package account

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
	GetOrCreate(ctx context.Context, username string, defaults Defaults) (*Account, bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	var a Account
	err := r.db.WithContext(ctx).First(&a, "username = ?", username).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &a, nil
}

// GetOrCreate looks the account up by exact username and inserts it with
// defaults when absent. The bool reports whether a row was inserted. A
// concurrent insert of the same username surfaces as a unique violation,
// in which case the winner's row is returned.
func (r *repository) GetOrCreate(ctx context.Context, username string, defaults Defaults) (*Account, bool, error) {
	var a Account
	res := r.db.WithContext(ctx).
		Where(Account{Username: username}).
		Attrs(Account{FirstName: defaults.FirstName, LastName: defaults.LastName, IsActive: true}).
		FirstOrCreate(&a)
	if res.Error == nil {
		return &a, res.RowsAffected > 0, nil
	}

	if !errors.Is(mapRepositoryError(res.Error), ErrDuplicateUsername) {
		return nil, false, res.Error
	}
	existing, err := r.FindByUsername(ctx, username)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
