package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string    `gorm:"size:10;not null;uniqueIndex:uq_departments_code" json:"code"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}
