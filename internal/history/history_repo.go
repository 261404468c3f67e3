package history

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	// Append inserts rec unless a row with the same event id exists. The
	// bool reports whether a row was written.
	Append(ctx context.Context, rec *Record) (bool, error)
	FindByRecord(ctx context.Context, recordType, recordID string) ([]Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, rec *Record) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(rec)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) FindByRecord(ctx context.Context, recordType, recordID string) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Where("record_type = ? AND record_id = ?", recordType, recordID).
		Order("changed_at DESC").
		Order("id").
		Find(&records).Error
	return records, err
}
