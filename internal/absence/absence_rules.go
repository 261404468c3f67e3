package absence

import (
	"time"

	absenceerrors "github.com/JaSamMarko/back-office/internal/absence/errors"
)

const secondsPerDay = 24 * 60 * 60

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Days is the inclusive day count of the record. ok is false when either
// date is missing.
func (r Record) Days() (days int, ok bool) {
	if r.StartDate == nil || r.EndDate == nil {
		return 0, false
	}
	span := dateOnly(*r.EndDate).Unix() - dateOnly(*r.StartDate).Unix()
	return int(span/secondsPerDay) + 1, true
}

// UsedDays sums the inclusive day counts of approved, fully dated records.
func UsedDays(records []Record) int {
	total := 0
	for _, r := range records {
		if !r.Approved {
			continue
		}
		if days, ok := r.Days(); ok {
			total += days
		}
	}
	return total
}

// ValidateRange rejects a record whose start date falls after its end
// date. Records with a missing date pass.
func ValidateRange(r Record) error {
	if r.StartDate == nil || r.EndDate == nil {
		return nil
	}
	if dateOnly(*r.StartDate).After(dateOnly(*r.EndDate)) {
		return absenceerrors.ErrInvalidDateRange
	}
	return nil
}
