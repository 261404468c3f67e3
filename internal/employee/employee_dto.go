package employee

type CreateEmployeeRequest struct {
	AccountID   *string `json:"account_id" binding:"omitempty,uuid"`
	FirstName   string  `json:"first_name" binding:"required,max=30"`
	LastName    string  `json:"last_name" binding:"required,max=30"`
	MiddleName  string  `json:"middle_name" binding:"max=30"`
	PersonalID  *string `json:"personal_id" binding:"omitempty,max=20"`
	DateOfBirth *string `json:"date_of_birth"`

	ChildcareSupport    bool `json:"childcare_support"`
	CompanyCar          bool `json:"company_car"`
	GymMembership       bool `json:"gym_membership"`
	HealthInsurance     bool `json:"health_insurance"`
	MobilePhoneIncluded bool `json:"mobile_phone_included"`
	RemoteWorkOption    bool `json:"remote_work_option"`
	StockOptions        bool `json:"stock_options"`

	// VacationDays defaults to 24 when omitted.
	VacationDays           *int `json:"vacation_days" binding:"omitempty,min=0"`
	AdditionalVacationDays int  `json:"additional_vacation_days"`
	KPI                    *int `json:"kpi" binding:"omitempty,min=1,max=5"`

	City             string `json:"city" binding:"max=50"`
	CurrentAddress   string `json:"current_address" binding:"max=100"`
	WorkMail         string `json:"work_mail" binding:"omitempty,email,max=254"`
	PrivateEmail     string `json:"private_email" binding:"omitempty,email,max=254"`
	PermanentAddress string `json:"permanent_address" binding:"max=100"`
	PhoneNumber      string `json:"phone_number" binding:"max=15"`

	Education string `json:"education"`

	DepartmentID          *string `json:"department_id" binding:"omitempty,uuid"`
	Permanent             bool    `json:"permanent"`
	Position              string  `json:"position" binding:"max=50"`
	SafetyTrainingDate    *string `json:"safety_training_date"`
	StartDate             *string `json:"start_date"`
	TrialEndDate          *string `json:"trial_end_date"`
	EndDate               *string `json:"end_date"`
	WorkSafetyCertificate bool    `json:"work_safety_certificate"`

	MentorID *string `json:"mentor_id" binding:"omitempty,uuid"`
	Notes    string  `json:"notes"`
}

// UpdateEmployeeRequest replaces every editable field.
type UpdateEmployeeRequest CreateEmployeeRequest

// Filter narrows list queries. Empty fields are ignored.
type Filter struct {
	Query        string
	DepartmentID string
	Permanent    *bool
}

type EmployeeAccountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type EmployeeMentorResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

type EmployeeResponse struct {
	ID          string                   `json:"id"`
	Account     *EmployeeAccountResponse `json:"account,omitempty"`
	FirstName   string                   `json:"first_name"`
	LastName    string                   `json:"last_name"`
	MiddleName  string                   `json:"middle_name"`
	FullName    string                   `json:"full_name"`
	PersonalID  *string                  `json:"personal_id"`
	DateOfBirth *string                  `json:"date_of_birth"`

	ChildcareSupport    bool `json:"childcare_support"`
	CompanyCar          bool `json:"company_car"`
	GymMembership       bool `json:"gym_membership"`
	HealthInsurance     bool `json:"health_insurance"`
	MobilePhoneIncluded bool `json:"mobile_phone_included"`
	RemoteWorkOption    bool `json:"remote_work_option"`
	StockOptions        bool `json:"stock_options"`

	VacationDays           int  `json:"vacation_days"`
	AdditionalVacationDays int  `json:"additional_vacation_days"`
	TotalVacationDays      int  `json:"total_vacation_days"`
	UsedAbsenceDays        int  `json:"used_absence_days"`
	KPI                    *int `json:"kpi"`

	City             string `json:"city"`
	CurrentAddress   string `json:"current_address"`
	WorkMail         string `json:"work_mail"`
	PrivateEmail     string `json:"private_email"`
	PermanentAddress string `json:"permanent_address"`
	PhoneNumber      string `json:"phone_number"`

	Education      string `json:"education"`
	EducationLabel string `json:"education_label"`

	DepartmentID          *string                     `json:"department_id"`
	Department            *EmployeeDepartmentResponse `json:"department,omitempty"`
	Permanent             bool                        `json:"permanent"`
	Position              string                      `json:"position"`
	SafetyTrainingDate    *string                     `json:"safety_training_date"`
	StartDate             *string                     `json:"start_date"`
	TrialEndDate          *string                     `json:"trial_end_date"`
	EndDate               *string                     `json:"end_date"`
	WorkSafetyCertificate bool                        `json:"work_safety_certificate"`

	MentorID *string                 `json:"mentor_id"`
	Mentor   *EmployeeMentorResponse `json:"mentor,omitempty"`
	Notes    string                  `json:"notes"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position,omitempty"`
}

type VacationSummaryResponse struct {
	EmployeeID             string `json:"employee_id"`
	VacationDays           int    `json:"vacation_days"`
	AdditionalVacationDays int    `json:"additional_vacation_days"`
	TotalVacationDays      int    `json:"total_vacation_days"`
	UsedAbsenceDays        int    `json:"used_absence_days"`
	RemainingVacationDays  int    `json:"remaining_vacation_days"`
}
