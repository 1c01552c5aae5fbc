package services

import (
	"fmt"
	"time"

	"legal_case_api_go/models"
)

// DefaultHorizonDays is the forward window applied when the caller omits one
const DefaultHorizonDays = 30

// dateLayout is the wire format for every date-only field: filing dates,
// hearing dates, due dates
const dateLayout = "2006-01-02"

// ParseDate parses a date-only request value into a UTC midnight timestamp
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return parsed, nil
}

// Window boundary policy: the horizon is inclusive on the upper bound and
// exclusive on "now" itself. A deadline due exactly at "now" is neither
// upcoming nor overdue until the clock ticks past it.

// IsUpcomingHearing reports whether the hearing is scheduled within
// (now, now+horizonDays]
func IsUpcomingHearing(h *models.Hearing, now time.Time, horizonDays int) bool {
	if h.Status != models.HearingStatusScheduled {
		return false
	}
	return h.Date.After(now) && !h.Date.After(now.AddDate(0, 0, horizonDays))
}

// IsOverdueDeadline reports whether the deadline is incomplete and past due
func IsOverdueDeadline(d *models.Deadline, now time.Time) bool {
	return !d.IsCompleted && d.DueDate.Before(now)
}

// IsUpcomingDeadline reports whether the deadline is incomplete and due
// within (now, now+horizonDays]
func IsUpcomingDeadline(d *models.Deadline, now time.Time, horizonDays int) bool {
	if d.IsCompleted {
		return false
	}
	return d.DueDate.After(now) && !d.DueDate.After(now.AddDate(0, 0, horizonDays))
}

// IsPendingDeadline reports whether the deadline is incomplete with the due
// date still ahead, regardless of horizon
func IsPendingDeadline(d *models.Deadline, now time.Time) bool {
	return !d.IsCompleted && d.DueDate.After(now)
}

// DaysRemaining returns the whole days between now and due, rounded down.
// Derived on read, never persisted.
func DaysRemaining(due, now time.Time) int {
	return int(due.Sub(now).Hours() / 24)
}
