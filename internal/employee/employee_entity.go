package employee

import (
	"strings"
	"time"

	"github.com/JaSamMarko/back-office/internal/absence"
	"github.com/JaSamMarko/back-office/internal/account"
	"github.com/JaSamMarko/back-office/internal/department"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultVacationDays = 24
	DefaultEducation    = EducationUniversity
)

const (
	EducationPrimary    = "OŠ"
	EducationSecondary  = "SSS"
	EducationCollege    = "VŠS"
	EducationUniversity = "VSS"
	EducationBachelor   = "BA"
	EducationMasterArts = "MA"
	EducationMasterSci  = "MSc"
	EducationDoctorate  = "PhD"
)

var educationLabels = map[string]string{
	EducationPrimary:    "Osnovna škola",
	EducationSecondary:  "Srednja stručna sprema",
	EducationCollege:    "Viša stručna sprema",
	EducationUniversity: "Visoka stručna sprema",
	EducationBachelor:   "Bachelor",
	EducationMasterArts: "Magisterij humanističkih znanosti",
	EducationMasterSci:  "Magisterij prirodnih znanosti",
	EducationDoctorate:  "Doktorat",
}

func IsValidEducation(level string) bool {
	_, ok := educationLabels[level]
	return ok
}

func EducationLabel(level string) string {
	if label, ok := educationLabels[level]; ok {
		return label
	}
	return level
}

type Employee struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	AccountID *uuid.UUID       `gorm:"type:uuid;uniqueIndex:uq_employees_account"`
	Account   *account.Account `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL"`

	FirstName   string     `gorm:"type:varchar(30);not null;index:idx_employees_name,priority:2"`
	LastName    string     `gorm:"type:varchar(30);not null;index:idx_employees_name,priority:1"`
	MiddleName  string     `gorm:"type:varchar(30)"`
	PersonalID  *string    `gorm:"type:varchar(20);uniqueIndex:uq_employees_personal_id"`
	DateOfBirth *time.Time `gorm:"type:date"`

	ChildcareSupport       bool `gorm:"not null;default:false"`
	CompanyCar             bool `gorm:"not null;default:false"`
	GymMembership          bool `gorm:"not null;default:false"`
	HealthInsurance        bool `gorm:"not null;default:false"`
	MobilePhoneIncluded    bool `gorm:"not null;default:false"`
	RemoteWorkOption       bool `gorm:"not null;default:false"`
	StockOptions           bool `gorm:"not null;default:false"`
	VacationDays           int  `gorm:"not null"`
	AdditionalVacationDays int  `gorm:"not null"`
	KPI                    *int `gorm:"column:kpi"`

	City             string `gorm:"type:varchar(50)"`
	CurrentAddress   string `gorm:"type:varchar(100)"`
	WorkMail         string `gorm:"type:varchar(254)"`
	PrivateEmail     string `gorm:"type:varchar(254)"`
	PermanentAddress string `gorm:"type:varchar(100)"`
	PhoneNumber      string `gorm:"type:varchar(15)"`

	Education string `gorm:"type:varchar(3);not null"`

	DepartmentID          *uuid.UUID             `gorm:"type:uuid;index:idx_employees_department"`
	Department            *department.Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
	Permanent             bool                   `gorm:"not null;default:false"`
	Position              string                 `gorm:"type:varchar(50)"`
	SafetyTrainingDate    *time.Time             `gorm:"type:date"`
	StartDate             *time.Time             `gorm:"type:date"`
	TrialEndDate          *time.Time             `gorm:"type:date"`
	EndDate               *time.Time             `gorm:"type:date"`
	WorkSafetyCertificate bool                   `gorm:"not null;default:false"`

	// Mentor cycles are not prevented.
	MentorID *uuid.UUID `gorm:"type:uuid;index:idx_employees_mentor"`
	Mentor   *Employee  `gorm:"foreignKey:MentorID;constraint:OnDelete:SET NULL"`

	Notes string `gorm:"type:text"`

	Absences []absence.Record `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// NewFromAccount builds the minimal employee the directory import creates
// for a freshly created account.
func NewFromAccount(accountID uuid.UUID, firstName, lastName string) *Employee {
	return &Employee{
		ID:           uuid.New(),
		AccountID:    &accountID,
		FirstName:    firstName,
		LastName:     lastName,
		VacationDays: DefaultVacationDays,
		Education:    DefaultEducation,
	}
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// TotalVacationDays is the base allotment plus the additional one. A
// negative additional allotment reduces the total.
func (e Employee) TotalVacationDays() int {
	return e.VacationDays + e.AdditionalVacationDays
}

// UsedAbsenceDays counts the loaded Absences; callers must load them.
func (e Employee) UsedAbsenceDays() int {
	return absence.UsedDays(e.Absences)
}
