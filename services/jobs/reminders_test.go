package jobs

import (
	"testing"
	"time"

	"legal_case_api_go/config"
	"legal_case_api_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReminderTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(
		&models.Lawyer{},
		&models.Court{},
		&models.Case{},
		&models.Deadline{},
	)
	return db
}

func reminderFixtures(db *gorm.DB) *models.Case {
	lawyer := &models.Lawyer{
		FirstName: "Ada",
		LastName:  "Reyes",
		Email:     "ada@example.com",
		IsActive:  true,
	}
	db.Create(lawyer)

	court := &models.Court{Name: "Reminder Court", IsActive: true}
	db.Create(court)

	caseRecord := &models.Case{
		CaseNumber: "CASE-REMIND",
		Title:      "Reminder Case",
		LawyerID:   lawyer.ID,
		CourtID:    court.ID,
		DateFiled:  time.Now().UTC(),
		Status:     models.CaseStatusActive,
		IsActive:   true,
	}
	db.Create(caseRecord)
	return caseRecord
}

func TestSendDeadlineReminders(t *testing.T) {
	db := setupReminderTestDB()
	caseRecord := reminderFixtures(db)
	now := time.Now().UTC()

	inWindow := &models.Deadline{
		CaseID:      caseRecord.ID,
		DueDate:     now.Add(24 * time.Hour),
		Description: "Due tomorrow",
		Priority:    "High",
	}
	db.Create(inWindow)

	outOfWindow := &models.Deadline{
		CaseID:      caseRecord.ID,
		DueDate:     now.Add(100 * time.Hour),
		Description: "Far away",
		Priority:    "Low",
	}
	db.Create(outOfWindow)

	pastDue := &models.Deadline{
		CaseID:      caseRecord.ID,
		DueDate:     now.Add(-24 * time.Hour),
		Description: "Already missed",
		Priority:    "High",
	}
	db.Create(pastDue)

	completed := &models.Deadline{
		CaseID:        caseRecord.ID,
		DueDate:       now.Add(24 * time.Hour),
		Description:   "Already done",
		Priority:      "Medium",
		IsCompleted:   true,
		CompletedDate: &now,
	}
	db.Create(completed)

	cfg := &config.Config{EmailTestMode: true, ReminderWindowHours: 48}
	SendDeadlineReminders(db, cfg)

	var reloaded models.Deadline
	db.First(&reloaded, "id = ?", inWindow.ID)
	assert.NotNil(t, reloaded.ReminderSentAt)

	for _, skipped := range []*models.Deadline{outOfWindow, pastDue, completed} {
		var reloaded models.Deadline
		db.First(&reloaded, "id = ?", skipped.ID)
		assert.Nil(t, reloaded.ReminderSentAt, "deadline %q should not be reminded", reloaded.Description)
	}
}

func TestSendDeadlineReminders_OncePerDeadline(t *testing.T) {
	db := setupReminderTestDB()
	caseRecord := reminderFixtures(db)
	now := time.Now().UTC()

	deadline := &models.Deadline{
		CaseID:      caseRecord.ID,
		DueDate:     now.Add(24 * time.Hour),
		Description: "Remind once",
		Priority:    "High",
	}
	db.Create(deadline)

	cfg := &config.Config{EmailTestMode: true, ReminderWindowHours: 48}
	SendDeadlineReminders(db, cfg)

	var first models.Deadline
	db.First(&first, "id = ?", deadline.ID)
	assert.NotNil(t, first.ReminderSentAt)

	// A second run leaves the original stamp untouched
	SendDeadlineReminders(db, cfg)

	var second models.Deadline
	db.First(&second, "id = ?", deadline.ID)
	assert.Equal(t, first.ReminderSentAt.Unix(), second.ReminderSentAt.Unix())
}

func TestSendDeadlineReminders_SkipsInactiveCases(t *testing.T) {
	db := setupReminderTestDB()
	caseRecord := reminderFixtures(db)
	now := time.Now().UTC()

	deadline := &models.Deadline{
		CaseID:      caseRecord.ID,
		DueDate:     now.Add(24 * time.Hour),
		Description: "Hidden by case",
		Priority:    "High",
	}
	db.Create(deadline)
	db.Model(caseRecord).Update("is_active", false)

	cfg := &config.Config{EmailTestMode: true, ReminderWindowHours: 48}
	SendDeadlineReminders(db, cfg)

	var reloaded models.Deadline
	db.First(&reloaded, "id = ?", deadline.ID)
	assert.Nil(t, reloaded.ReminderSentAt)
}
