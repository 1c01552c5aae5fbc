package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Party represents a party involved in legal cases (plaintiff, defendant, etc.)
type Party struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName string  `gorm:"size:100;not null" json:"first_name"`
	LastName  string  `gorm:"size:100;not null" json:"last_name"`
	PartyType *string `gorm:"size:50" json:"party_type,omitempty"` // Individual, Corporation, Government, etc.
	Email     *string `gorm:"size:200;uniqueIndex" json:"email,omitempty"`
	Phone     *string `gorm:"size:20" json:"phone,omitempty"`
	Address   *string `gorm:"size:300" json:"address,omitempty"`
	City      *string `gorm:"size:100" json:"city,omitempty"`
	State     *string `gorm:"size:50" json:"state,omitempty"`
	ZipCode   *string `gorm:"size:20" json:"zip_code,omitempty"`
	IsActive  bool    `gorm:"not null;default:true" json:"is_active"`

	// Relationships
	CaseParties []CaseParty `gorm:"foreignKey:PartyID" json:"case_parties,omitempty"`
}

// BeforeCreate hook to generate UUID
func (p *Party) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Party model
func (Party) TableName() string {
	return "parties"
}

// FullName returns the party's display name. Computed, never stored.
func (p *Party) FullName() string {
	return p.FirstName + " " + p.LastName
}
