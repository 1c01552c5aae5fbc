package services

import (
	"errors"
	"fmt"

	"legal_case_api_go/models"

	"gorm.io/gorm"
)

// GetParties fetches all active parties ordered by name
func GetParties(db *gorm.DB) ([]models.Party, error) {
	var parties []models.Party
	err := db.Where("is_active = ?", true).
		Order("last_name, first_name").
		Find(&parties).Error
	return parties, err
}

// GetPartyByID fetches a single active party
func GetPartyByID(db *gorm.DB, id string) (*models.Party, error) {
	var party models.Party
	err := db.First(&party, "id = ? AND is_active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("party %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &party, nil
}

// CreateParty inserts a party after checking email uniqueness
func CreateParty(db *gorm.DB, party *models.Party) error {
	if err := checkPartyUniqueness(db, party, ""); err != nil {
		return err
	}
	return db.Create(party).Error
}

// UpdateParty updates a party, re-checking uniqueness against other rows
func UpdateParty(db *gorm.DB, party *models.Party) error {
	if err := checkPartyUniqueness(db, party, party.ID); err != nil {
		return err
	}
	return db.Save(party).Error
}

// DeactivateParty flips the active flag. Rejected while the party is joined
// to at least one active case through a CaseParty row.
func DeactivateParty(db *gorm.DB, id string) error {
	var party models.Party
	if err := db.First(&party, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("party %s: %w", id, ErrNotFound)
		}
		return err
	}

	if !party.IsActive {
		return fmt.Errorf("party is already inactive: %w", ErrConflict)
	}

	var activeLinks int64
	if err := db.Model(&models.CaseParty{}).
		Joins("JOIN cases ON cases.id = case_parties.case_id").
		Where("case_parties.party_id = ? AND cases.is_active = ?", id, true).
		Count(&activeLinks).Error; err != nil {
		return fmt.Errorf("failed to count active case links: %w", err)
	}
	if activeLinks > 0 {
		return fmt.Errorf("cannot deactivate party involved in %d active case(s): %w", activeLinks, ErrConflict)
	}

	party.IsActive = false
	return db.Save(&party).Error
}

// GetPartyCases fetches the active cases a party participates in
func GetPartyCases(db *gorm.DB, partyID string) ([]models.Case, error) {
	if _, err := GetPartyByID(db, partyID); err != nil {
		return nil, err
	}

	var cases []models.Case
	err := db.
		Joins("JOIN case_parties ON case_parties.case_id = cases.id").
		Where("case_parties.party_id = ? AND cases.is_active = ?", partyID, true).
		Preload("Lawyer").
		Preload("Court").
		Order("cases.created_at DESC").
		Find(&cases).Error
	return cases, err
}

func checkPartyUniqueness(db *gorm.DB, party *models.Party, excludeID string) error {
	if party.Email == nil || *party.Email == "" {
		return nil
	}
	query := db.Model(&models.Party{}).Where("email = ?", *party.Email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check party email uniqueness: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("a party with this email already exists: %w", ErrConflict)
	}
	return nil
}
