package absence

type CreateAbsenceRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	AbsenceType string  `json:"absence_type" binding:"required,oneof=BLOOD_DONOR BEREAVEMENT FATHER_LEAVE PARENTAL_LEAVE PERSONAL SICK VAC WEDDING RELOCATION"`
	Approved    bool    `json:"approved"`
	Reason      string  `json:"reason"`
}

type UpdateAbsenceRequest struct {
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	AbsenceType string  `json:"absence_type" binding:"required,oneof=BLOOD_DONOR BEREAVEMENT FATHER_LEAVE PARENTAL_LEAVE PERSONAL SICK VAC WEDDING RELOCATION"`
	Approved    bool    `json:"approved"`
	Reason      string  `json:"reason"`
}

// Filter narrows list queries. Empty fields are ignored.
type Filter struct {
	EmployeeID  string
	AbsenceType string
	Approved    *bool
	Query       string
}

type AbsenceResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name,omitempty"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
	AbsenceType      string  `json:"absence_type"`
	AbsenceTypeLabel string  `json:"absence_type_label"`
	Days             *int    `json:"days"`
	Approved         bool    `json:"approved"`
	Reason           string  `json:"reason"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
