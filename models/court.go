package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Court represents a court where cases are filed and hearings are held
type Court struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string  `gorm:"size:200;not null;uniqueIndex:idx_court_name_location" json:"name"`
	Type     *string `gorm:"size:100" json:"type,omitempty"` // District, Supreme, High Court, etc.
	Address  *string `gorm:"size:300" json:"address,omitempty"`
	City     *string `gorm:"size:100;uniqueIndex:idx_court_name_location" json:"city,omitempty"`
	State    *string `gorm:"size:50;uniqueIndex:idx_court_name_location" json:"state,omitempty"`
	ZipCode  *string `gorm:"size:20" json:"zip_code,omitempty"`
	Phone    *string `gorm:"size:20" json:"phone,omitempty"`
	IsActive bool    `gorm:"not null;default:true" json:"is_active"`

	// Relationships
	Cases    []Case    `gorm:"foreignKey:CourtID" json:"cases,omitempty"`
	Hearings []Hearing `gorm:"foreignKey:CourtID" json:"hearings,omitempty"`
}

// BeforeCreate hook to generate UUID
func (co *Court) BeforeCreate(tx *gorm.DB) error {
	if co.ID == "" {
		co.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Court model
func (Court) TableName() string {
	return "courts"
}
