package jobs

import (
	"log"
	"time"

	"legal_case_api_go/config"
	"legal_case_api_go/models"
	"legal_case_api_go/services"

	"gorm.io/gorm"
)

// SendDeadlineReminders emails the assigned lawyer for every incomplete
// deadline on an active case due within the configured window. Each deadline
// is reminded at most once, gated by ReminderSentAt.
func SendDeadlineReminders(db *gorm.DB, cfg *config.Config) {
	log.Println("Starting deadline reminder job...")

	now := time.Now().UTC()
	windowEnd := now.Add(time.Duration(cfg.ReminderWindowHours) * time.Hour)

	var deadlines []models.Deadline
	err := db.
		Joins("JOIN cases ON cases.id = deadlines.case_id").
		Where("cases.is_active = ?", true).
		Where("deadlines.is_completed = ?", false).
		Where("deadlines.due_date > ? AND deadlines.due_date <= ?", now, windowEnd).
		Where("deadlines.reminder_sent_at IS NULL").
		Preload("Case.Lawyer").
		Find(&deadlines).Error
	if err != nil {
		log.Printf("Error fetching deadlines for reminders: %v", err)
		return
	}

	log.Printf("Found %d deadlines to remind", len(deadlines))

	for i := range deadlines {
		d := &deadlines[i]

		email := services.BuildDeadlineReminderEmail(d.Case.Lawyer.Email, services.DeadlineReminderData{
			LawyerName:  d.Case.Lawyer.FullName(),
			CaseNumber:  d.Case.CaseNumber,
			Description: d.Description,
			DueDate:     d.DueDate.Format("Monday, January 2, 2006"),
			Priority:    d.Priority,
		})

		if err := services.SendEmail(cfg, email); err != nil {
			log.Printf("Failed to send reminder for deadline %s: %v", d.ID, err)
			continue
		}

		sentAt := time.Now().UTC()
		if err := db.Model(d).Update("reminder_sent_at", sentAt).Error; err != nil {
			log.Printf("Failed to mark reminder sent for deadline %s: %v", d.ID, err)
			continue
		}
		log.Printf("Sent reminder for deadline %s", d.ID)
	}

	log.Println("Deadline reminder job completed")
}
