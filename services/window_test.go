package services

import (
	"testing"
	"time"

	"legal_case_api_go/models"

	"github.com/stretchr/testify/assert"
)

func TestIsUpcomingHearing(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	hearing := &models.Hearing{Status: models.HearingStatusScheduled}

	// Inside the window
	hearing.Date = now.AddDate(0, 0, 5)
	assert.True(t, IsUpcomingHearing(hearing, now, 30))

	// Exactly at the horizon: inclusive upper bound
	hearing.Date = now.AddDate(0, 0, 30)
	assert.True(t, IsUpcomingHearing(hearing, now, 30))

	// One day past the horizon
	hearing.Date = now.AddDate(0, 0, 31)
	assert.False(t, IsUpcomingHearing(hearing, now, 30))

	// Exactly now: excluded
	hearing.Date = now
	assert.False(t, IsUpcomingHearing(hearing, now, 30))

	// In the past
	hearing.Date = now.AddDate(0, 0, -1)
	assert.False(t, IsUpcomingHearing(hearing, now, 30))
}

func TestIsUpcomingHearing_StatusFilter(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := now.AddDate(0, 0, 5)

	for _, status := range []string{
		models.HearingStatusCompleted,
		models.HearingStatusPostponed,
		models.HearingStatusCancelled,
	} {
		hearing := &models.Hearing{Date: date, Status: status}
		assert.False(t, IsUpcomingHearing(hearing, now, 30), "status %s should not be upcoming", status)
	}

	hearing := &models.Hearing{Date: date, Status: models.HearingStatusScheduled}
	assert.True(t, IsUpcomingHearing(hearing, now, 30))
}

func TestDeadlineWindows(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Due exactly at now: neither upcoming nor overdue
	atNow := &models.Deadline{DueDate: now}
	assert.False(t, IsUpcomingDeadline(atNow, now, 30))
	assert.False(t, IsOverdueDeadline(atNow, now))
	assert.False(t, IsPendingDeadline(atNow, now))

	// Past due, incomplete: overdue only
	past := &models.Deadline{DueDate: now.AddDate(0, 0, -2)}
	assert.True(t, IsOverdueDeadline(past, now))
	assert.False(t, IsUpcomingDeadline(past, now, 30))
	assert.False(t, IsPendingDeadline(past, now))

	// Past due but completed: nothing
	completedPast := &models.Deadline{DueDate: now.AddDate(0, 0, -2), IsCompleted: true}
	assert.False(t, IsOverdueDeadline(completedPast, now))

	// Future within horizon: upcoming and pending
	future := &models.Deadline{DueDate: now.AddDate(0, 0, 10)}
	assert.True(t, IsUpcomingDeadline(future, now, 30))
	assert.True(t, IsPendingDeadline(future, now))
	assert.False(t, IsOverdueDeadline(future, now))

	// Future beyond horizon: pending but not upcoming
	far := &models.Deadline{DueDate: now.AddDate(0, 0, 45)}
	assert.False(t, IsUpcomingDeadline(far, now, 30))
	assert.True(t, IsPendingDeadline(far, now))

	// At the horizon exactly: upcoming
	atHorizon := &models.Deadline{DueDate: now.AddDate(0, 0, 30)}
	assert.True(t, IsUpcomingDeadline(atHorizon, now, 30))

	// Completed future deadline: neither
	completedFuture := &models.Deadline{DueDate: now.AddDate(0, 0, 10), IsCompleted: true}
	assert.False(t, IsUpcomingDeadline(completedFuture, now, 30))
	assert.False(t, IsPendingDeadline(completedFuture, now))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-06-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), parsed)

	for _, bad := range []string{"15/06/2026", "2026-6-15", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q should be rejected", bad)
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, DaysRemaining(now.AddDate(0, 0, 5), now))
	assert.Equal(t, 0, DaysRemaining(now, now))

	// Partial days truncate toward zero
	assert.Equal(t, 4, DaysRemaining(now.Add(4*24*time.Hour+23*time.Hour), now))
	assert.Equal(t, 0, DaysRemaining(now.Add(12*time.Hour), now))

	// Past due dates go negative
	assert.Equal(t, -3, DaysRemaining(now.AddDate(0, 0, -3), now))
}
