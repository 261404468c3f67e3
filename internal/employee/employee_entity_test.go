package employee_test

import (
	"testing"
	"time"

	"github.com/JaSamMarko/back-office/internal/absence"
	"github.com/JaSamMarko/back-office/internal/employee"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEmployee_TotalVacationDays(t *testing.T) {
	tests := []struct {
		name       string
		base       int
		additional int
		want       int
	}{
		{"default allotment", 24, 0, 24},
		{"additional days", 24, 3, 27},
		{"negative additional reduces total", 20, -5, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := employee.Employee{VacationDays: tt.base, AdditionalVacationDays: tt.additional}
			assert.Equal(t, tt.want, e.TotalVacationDays())
		})
	}
}

func TestEmployee_UsedAbsenceDays(t *testing.T) {
	d := func(day int) *time.Time {
		v := time.Date(2026, 5, day, 0, 0, 0, 0, time.UTC)
		return &v
	}

	e := employee.Employee{Absences: []absence.Record{
		{StartDate: d(4), EndDate: d(8), Approved: true},
		{StartDate: d(11), EndDate: d(11), Approved: true},
		{StartDate: d(12), EndDate: d(15), Approved: false},
		{StartDate: d(20), Approved: true},
	}}

	assert.Equal(t, 6, e.UsedAbsenceDays())
	assert.Zero(t, employee.Employee{}.UsedAbsenceDays())
}

func TestNewFromAccount(t *testing.T) {
	accountID := uuid.New()
	e := employee.NewFromAccount(accountID, "Ana", "Kovač")

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, accountID, *e.AccountID)
	assert.Equal(t, "Ana Kovač", e.FullName())
	assert.Equal(t, employee.DefaultVacationDays, e.VacationDays)
	assert.Equal(t, employee.EducationUniversity, e.Education)
}

func TestEducation(t *testing.T) {
	assert.True(t, employee.IsValidEducation(employee.EducationDoctorate))
	assert.False(t, employee.IsValidEducation("XYZ"))
	assert.NotEmpty(t, employee.EducationLabel(employee.EducationSecondary))
}
