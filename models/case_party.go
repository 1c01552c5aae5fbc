package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case party role constants
const (
	PartyRolePlaintiff     = "Plaintiff"
	PartyRoleDefendant     = "Defendant"
	PartyRoleWitness       = "Witness"
	PartyRoleAttorney      = "Attorney"
	PartyRoleExpertWitness = "Expert Witness"
	PartyRoleThirdParty    = "Third Party"
)

// CaseParty links a Case and a Party with a role. A party may appear on the
// same case under different roles, but the (case, party, role) triple is unique.
type CaseParty struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CaseID string `gorm:"type:uuid;not null;uniqueIndex:idx_case_party_role" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	PartyID string `gorm:"type:uuid;not null;uniqueIndex:idx_case_party_role" json:"party_id"`
	Party   Party  `gorm:"foreignKey:PartyID" json:"party,omitempty"`

	Role string `gorm:"size:50;not null;uniqueIndex:idx_case_party_role" json:"role"`
}

// BeforeCreate hook to generate UUID
func (cp *CaseParty) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CaseParty model
func (CaseParty) TableName() string {
	return "case_parties"
}

// IsValidPartyRole checks if the role is valid
func IsValidPartyRole(role string) bool {
	validRoles := []string{
		PartyRolePlaintiff,
		PartyRoleDefendant,
		PartyRoleWitness,
		PartyRoleAttorney,
		PartyRoleExpertWitness,
		PartyRoleThirdParty,
	}
	for _, r := range validRoles {
		if r == role {
			return true
		}
	}
	return false
}
