package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hearing status constants
const (
	HearingStatusScheduled = "Scheduled"
	HearingStatusCompleted = "Completed"
	HearingStatusPostponed = "Postponed"
	HearingStatusCancelled = "Cancelled"
)

// Hearing represents a hearing scheduled for a case. Hearings are removed
// together with their case; they are never soft-deleted.
type Hearing struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	CourtID *string `gorm:"type:uuid;index" json:"court_id,omitempty"`
	Court   *Court  `gorm:"foreignKey:CourtID" json:"court,omitempty"`

	Date        time.Time `gorm:"not null;index" json:"date"`
	Time        string    `gorm:"size:5;not null" json:"time"` // HH:MM
	Location    *string   `gorm:"size:200" json:"location,omitempty"`
	HearingType *string   `gorm:"size:100" json:"hearing_type,omitempty"` // Initial, Follow-up, Final, etc.
	Remarks     *string   `gorm:"size:500" json:"remarks,omitempty"`
	Status      string    `gorm:"size:50;not null;default:Scheduled;index" json:"status"`
}

// BeforeCreate hook to generate UUID
func (h *Hearing) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Hearing model
func (Hearing) TableName() string {
	return "hearings"
}

// IsValidHearingStatus checks if the status is valid
func IsValidHearingStatus(status string) bool {
	validStatuses := []string{
		HearingStatusScheduled,
		HearingStatusCompleted,
		HearingStatusPostponed,
		HearingStatusCancelled,
	}
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}
