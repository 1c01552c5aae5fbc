package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status constants
const (
	CaseStatusActive  = "Active"
	CaseStatusPending = "Pending"
	CaseStatusClosed  = "Closed"
	CaseStatusOnHold  = "On Hold"
)

// Case represents a legal case
type Case struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Case identification. The unique index covers inactive rows too:
	// a case number is never reusable once issued.
	CaseNumber  string `gorm:"size:50;not null;uniqueIndex" json:"case_number"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// Assigned lawyer relationship
	LawyerID string `gorm:"type:uuid;not null;index" json:"lawyer_id"`
	Lawyer   Lawyer `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`

	// Court relationship
	CourtID string `gorm:"type:uuid;not null;index" json:"court_id"`
	Court   Court  `gorm:"foreignKey:CourtID" json:"court,omitempty"`

	// Status and lifecycle
	DateFiled time.Time `gorm:"not null" json:"date_filed"`
	Status    string    `gorm:"size:50;not null;default:Active;index" json:"status"`
	Outcome   *string   `gorm:"size:500" json:"outcome,omitempty"`

	// Soft delete flag
	IsActive bool `gorm:"not null;default:true;index" json:"is_active"`

	// Relationships
	Hearings  []Hearing   `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"hearings,omitempty"`
	Deadlines []Deadline  `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"deadlines,omitempty"`
	Parties   []CaseParty `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"parties,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// IsClosed checks if the case is closed
func (c *Case) IsClosed() bool {
	return c.Status == CaseStatusClosed
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	validStatuses := []string{
		CaseStatusActive,
		CaseStatusPending,
		CaseStatusClosed,
		CaseStatusOnHold,
	}
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}
