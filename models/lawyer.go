package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lawyer represents a lawyer who can be assigned to cases
type Lawyer struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName      string  `gorm:"size:100;not null" json:"first_name"`
	LastName       string  `gorm:"size:100;not null" json:"last_name"`
	Email          string  `gorm:"size:200;not null;uniqueIndex" json:"email"`
	Phone          *string `gorm:"size:20" json:"phone,omitempty"`
	BarNumber      *string `gorm:"size:50;uniqueIndex" json:"bar_number,omitempty"`
	Specialization *string `gorm:"size:100" json:"specialization,omitempty"`
	IsActive       bool    `gorm:"not null;default:true" json:"is_active"`

	// Relationships
	Cases []Case `gorm:"foreignKey:LawyerID" json:"cases,omitempty"`
}

// BeforeCreate hook to generate UUID
func (l *Lawyer) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Lawyer model
func (Lawyer) TableName() string {
	return "lawyers"
}

// FullName returns the lawyer's display name. Computed, never stored.
func (l *Lawyer) FullName() string {
	return l.FirstName + " " + l.LastName
}
