package absence_test

import (
	"testing"
	"time"

	"github.com/JaSamMarko/back-office/internal/absence"
	absenceerrors "github.com/JaSamMarko/back-office/internal/absence/errors"

	"github.com/stretchr/testify/assert"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestRecord_Days(t *testing.T) {
	t.Run("single day counts once", func(t *testing.T) {
		days, ok := absence.Record{StartDate: day("2026-03-10"), EndDate: day("2026-03-10")}.Days()
		assert.True(t, ok)
		assert.Equal(t, 1, days)
	})

	t.Run("range is inclusive", func(t *testing.T) {
		days, ok := absence.Record{StartDate: day("2026-03-10"), EndDate: day("2026-03-14")}.Days()
		assert.True(t, ok)
		assert.Equal(t, 5, days)
	})

	t.Run("range longer than a time.Duration", func(t *testing.T) {
		days, ok := absence.Record{StartDate: day("1700-01-01"), EndDate: day("2100-01-01")}.Days()
		assert.True(t, ok)
		assert.Equal(t, 146098, days)
	})

	t.Run("range across a DST switch", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Zagreb")
		if err != nil {
			t.Skip("tzdata unavailable")
		}
		start := time.Date(2026, 3, 28, 0, 0, 0, 0, loc)
		end := time.Date(2026, 3, 30, 0, 0, 0, 0, loc)
		days, ok := absence.Record{StartDate: &start, EndDate: &end}.Days()
		assert.True(t, ok)
		assert.Equal(t, 3, days)
	})

	t.Run("missing date", func(t *testing.T) {
		_, ok := absence.Record{StartDate: day("2026-03-10")}.Days()
		assert.False(t, ok)
		_, ok = absence.Record{EndDate: day("2026-03-10")}.Days()
		assert.False(t, ok)
	})
}

func TestUsedDays(t *testing.T) {
	records := []absence.Record{
		{Approved: true, StartDate: day("2026-01-05"), EndDate: day("2026-01-09")},
		{Approved: true, StartDate: day("2026-02-02"), EndDate: day("2026-02-02")},
		{Approved: false, StartDate: day("2026-03-02"), EndDate: day("2026-03-06")},
		{Approved: true, StartDate: day("2026-04-01")},
		{Approved: true, EndDate: day("2026-04-01")},
		{Approved: true},
	}

	assert.Equal(t, 6, absence.UsedDays(records))
	assert.Equal(t, 0, absence.UsedDays(nil))
	assert.Equal(t, 0, absence.UsedDays(records[2:]))
}

func TestValidateRange(t *testing.T) {
	cases := []struct {
		name    string
		record  absence.Record
		wantErr bool
	}{
		{"start before end", absence.Record{StartDate: day("2026-01-01"), EndDate: day("2026-01-02")}, false},
		{"start equals end", absence.Record{StartDate: day("2026-01-01"), EndDate: day("2026-01-01")}, false},
		{"start after end", absence.Record{StartDate: day("2026-01-03"), EndDate: day("2026-01-02")}, true},
		{"missing start", absence.Record{EndDate: day("2026-01-02")}, false},
		{"missing end", absence.Record{StartDate: day("2026-01-03")}, false},
		{"no dates", absence.Record{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := absence.ValidateRange(tc.record)
			if tc.wantErr {
				assert.ErrorIs(t, err, absenceerrors.ErrInvalidDateRange)
				assert.Equal(t, "Start date must be before end date.", err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Bolovanje", absence.TypeLabel(absence.TypeSick))
	assert.Equal(t, "Godišnji odmor", absence.TypeLabel(absence.TypeVacation))
	assert.Equal(t, "UNKNOWN", absence.TypeLabel("UNKNOWN"))
	assert.True(t, absence.IsValidType("RELOCATION"))
	assert.False(t, absence.IsValidType("ANNUAL"))
}
