package history

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Record is one append-only history row. Snapshot holds the record as it
// was after the change, or just before a delete.
type Record struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID    string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_history_event"`
	RecordType string    `gorm:"type:varchar(30);not null;index:idx_history_record,priority:1"`
	RecordID   string    `gorm:"type:varchar(64);not null;index:idx_history_record,priority:2"`
	ChangeType string    `gorm:"type:varchar(1);not null"`
	Snapshot   datatypes.JSON
	RequestID  string    `gorm:"type:varchar(64)"`
	ChangedBy  string    `gorm:"type:varchar(64)"`
	ChangedAt  time.Time `gorm:"not null;index"`
}

func (Record) TableName() string {
	return "history_records"
}

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
