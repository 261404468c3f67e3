package account

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is the local login identity. The directory import creates
// accounts; authentication itself lives outside this service.
type Account struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Username  string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uq_accounts_username"`
	FirstName string    `gorm:"column:first_name;type:varchar(150)"`
	LastName  string    `gorm:"column:last_name;type:varchar(150)"`
	Email     string    `gorm:"column:email;type:varchar(254)"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Account) TableName() string {
	return "accounts"
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Defaults are applied only when GetOrCreate inserts a new row.
type Defaults struct {
	FirstName string
	LastName  string
}
