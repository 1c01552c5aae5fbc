package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deadline priority constants
const (
	DeadlinePriorityHigh   = "High"
	DeadlinePriorityMedium = "Medium"
	DeadlinePriorityLow    = "Low"
)

// Deadline represents a deadline attached to a case.
// Invariant: CompletedDate is non-nil exactly when IsCompleted is true.
type Deadline struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	DueDate     time.Time `gorm:"not null;index" json:"due_date"`
	Description string    `gorm:"size:200;not null" json:"description"`
	Priority    string    `gorm:"size:50;not null;default:Medium" json:"priority"`

	IsCompleted   bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`

	Notes *string `gorm:"size:500" json:"notes,omitempty"`

	// Set once the reminder job has emailed the assigned lawyer
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
}

// BeforeCreate hook to generate UUID
func (d *Deadline) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Deadline model
func (Deadline) TableName() string {
	return "deadlines"
}

// IsValidDeadlinePriority checks if the priority is valid
func IsValidDeadlinePriority(priority string) bool {
	validPriorities := []string{
		DeadlinePriorityHigh,
		DeadlinePriorityMedium,
		DeadlinePriorityLow,
	}
	for _, p := range validPriorities {
		if p == priority {
			return true
		}
	}
	return false
}
