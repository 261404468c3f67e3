package employee

import (
	"strings"
	"time"

	employeeerrors "github.com/JaSamMarko/back-office/internal/employee/errors"

	"github.com/google/uuid"
)

// applyRequest copies the editable fields of req onto e, validating the
// values gin's binding tags cannot express. Loaded associations are
// dropped since their ids may have changed.
func applyRequest(e *Employee, req CreateEmployeeRequest) error {
	if req.KPI != nil && (*req.KPI < 1 || *req.KPI > 5) {
		return employeeerrors.ErrInvalidKPI
	}

	education := strings.TrimSpace(req.Education)
	if education == "" {
		education = DefaultEducation
	}
	if !IsValidEducation(education) {
		return employeeerrors.ErrInvalidEducation
	}

	accountID, err := parseOptionalUUID(req.AccountID, employeeerrors.ErrAccountNotFound)
	if err != nil {
		return err
	}
	departmentID, err := parseOptionalUUID(req.DepartmentID, employeeerrors.ErrDepartmentNotFound)
	if err != nil {
		return err
	}
	mentorID, err := parseOptionalUUID(req.MentorID, employeeerrors.ErrMentorNotFound)
	if err != nil {
		return err
	}

	dates := make([]*time.Time, 5)
	for i, raw := range []*string{req.DateOfBirth, req.SafetyTrainingDate, req.StartDate, req.TrialEndDate, req.EndDate} {
		if dates[i], err = parseOptionalDate(raw); err != nil {
			return err
		}
	}

	vacationDays := DefaultVacationDays
	if req.VacationDays != nil {
		vacationDays = *req.VacationDays
	}

	e.AccountID = accountID
	e.FirstName = strings.TrimSpace(req.FirstName)
	e.LastName = strings.TrimSpace(req.LastName)
	e.MiddleName = strings.TrimSpace(req.MiddleName)
	e.PersonalID = optionalString(req.PersonalID)
	e.DateOfBirth = dates[0]

	e.ChildcareSupport = req.ChildcareSupport
	e.CompanyCar = req.CompanyCar
	e.GymMembership = req.GymMembership
	e.HealthInsurance = req.HealthInsurance
	e.MobilePhoneIncluded = req.MobilePhoneIncluded
	e.RemoteWorkOption = req.RemoteWorkOption
	e.StockOptions = req.StockOptions

	e.VacationDays = vacationDays
	e.AdditionalVacationDays = req.AdditionalVacationDays
	e.KPI = req.KPI

	e.City = req.City
	e.CurrentAddress = req.CurrentAddress
	e.WorkMail = req.WorkMail
	e.PrivateEmail = req.PrivateEmail
	e.PermanentAddress = req.PermanentAddress
	e.PhoneNumber = req.PhoneNumber
	e.Education = education

	e.DepartmentID = departmentID
	e.Permanent = req.Permanent
	e.Position = req.Position
	e.SafetyTrainingDate = dates[1]
	e.StartDate = dates[2]
	e.TrialEndDate = dates[3]
	e.EndDate = dates[4]
	e.WorkSafetyCertificate = req.WorkSafetyCertificate

	e.MentorID = mentorID
	e.Notes = req.Notes

	e.Account = nil
	e.Department = nil
	e.Mentor = nil
	return nil
}

func parseOptionalUUID(value *string, invalid error) (*uuid.UUID, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*value))
	if err != nil {
		return nil, invalid
	}
	return &id, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*value))
	if err != nil {
		return nil, employeeerrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// optionalString maps blank strings to NULL so the unique personal id
// index only covers real values.
func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalUUIDString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          e.ID.String(),
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		MiddleName:  e.MiddleName,
		FullName:    e.FullName(),
		PersonalID:  e.PersonalID,
		DateOfBirth: formatOptionalDate(e.DateOfBirth),

		ChildcareSupport:    e.ChildcareSupport,
		CompanyCar:          e.CompanyCar,
		GymMembership:       e.GymMembership,
		HealthInsurance:     e.HealthInsurance,
		MobilePhoneIncluded: e.MobilePhoneIncluded,
		RemoteWorkOption:    e.RemoteWorkOption,
		StockOptions:        e.StockOptions,

		VacationDays:           e.VacationDays,
		AdditionalVacationDays: e.AdditionalVacationDays,
		TotalVacationDays:      e.TotalVacationDays(),
		UsedAbsenceDays:        e.UsedAbsenceDays(),
		KPI:                    e.KPI,

		City:             e.City,
		CurrentAddress:   e.CurrentAddress,
		WorkMail:         e.WorkMail,
		PrivateEmail:     e.PrivateEmail,
		PermanentAddress: e.PermanentAddress,
		PhoneNumber:      e.PhoneNumber,

		Education:      e.Education,
		EducationLabel: EducationLabel(e.Education),

		DepartmentID:          optionalUUIDString(e.DepartmentID),
		Permanent:             e.Permanent,
		Position:              e.Position,
		SafetyTrainingDate:    formatOptionalDate(e.SafetyTrainingDate),
		StartDate:             formatOptionalDate(e.StartDate),
		TrialEndDate:          formatOptionalDate(e.TrialEndDate),
		EndDate:               formatOptionalDate(e.EndDate),
		WorkSafetyCertificate: e.WorkSafetyCertificate,

		MentorID: optionalUUIDString(e.MentorID),
		Notes:    e.Notes,

		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}

	if e.Account != nil {
		resp.Account = &EmployeeAccountResponse{ID: e.Account.ID.String(), Username: e.Account.Username}
	}
	if e.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   e.Department.ID.String(),
			Code: e.Department.Code,
			Name: e.Department.Name,
		}
	}
	if e.Mentor != nil {
		resp.Mentor = &EmployeeMentorResponse{ID: e.Mentor.ID.String(), FullName: e.Mentor.FullName()}
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
