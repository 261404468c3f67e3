package absence

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeBloodDonor    = "BLOOD_DONOR"
	TypeBereavement   = "BEREAVEMENT"
	TypeFatherLeave   = "FATHER_LEAVE"
	TypeParentalLeave = "PARENTAL_LEAVE"
	TypePersonal      = "PERSONAL"
	TypeSick          = "SICK"
	TypeVacation      = "VAC"
	TypeWedding       = "WEDDING"
	TypeRelocation    = "RELOCATION"
)

var typeLabels = map[string]string{
	TypeBloodDonor:    "Odsutnost zbog darivanja krvi",
	TypeBereavement:   "Odsutnost zbog smrti člana obitelji",
	TypeFatherLeave:   "Očinski dopust",
	TypeParentalLeave: "Roditeljski dopust",
	TypePersonal:      "Osobni dan",
	TypeSick:          "Bolovanje",
	TypeVacation:      "Godišnji odmor",
	TypeWedding:       "Osobno vjenčanje",
	TypeRelocation:    "Odsustvo zbog selidbe",
}

// TypeLabel returns the display label of an absence type, or the raw
// value when the type is unknown.
func TypeLabel(absenceType string) string {
	if label, ok := typeLabels[absenceType]; ok {
		return label
	}
	return absenceType
}

func IsValidType(absenceType string) bool {
	_, ok := typeLabels[absenceType]
	return ok
}

// Record is a dated absence entry of one employee. Either date may be
// missing while the entry is being prepared.
type Record struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_absence_records_employee"`
	StartDate   *time.Time `gorm:"type:date"`
	EndDate     *time.Time `gorm:"type:date"`
	AbsenceType string     `gorm:"type:varchar(50);not null;index:idx_absence_records_type"`
	Approved    bool       `gorm:"not null;default:false"`
	Reason      string     `gorm:"type:text"`

	// Filled by list queries that join the owning employee.
	EmployeeFirstName string `gorm:"->;-:migration"`
	EmployeeLastName  string `gorm:"->;-:migration"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Record) TableName() string {
	return "absence_records"
}

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
