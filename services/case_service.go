package services

import (
	"errors"
	"fmt"

	"legal_case_api_go/models"

	"gorm.io/gorm"
)

// CaseFilter narrows GetCases results. Zero values mean "no filter".
type CaseFilter struct {
	Status   string
	LawyerID string
	CourtID  string
	Page     int
	Limit    int
}

// CasePartyInput names a party and its role for attachment to a case
type CasePartyInput struct {
	PartyID string
	Role    string
}

// UpdateCaseInput carries partial case updates; nil fields are left untouched
type UpdateCaseInput struct {
	Title       *string
	Description *string
	LawyerID    *string
	CourtID     *string
	Status      *string
	Outcome     *string
}

// GetCases fetches active cases matching the filter, newest first, with the
// total row count for pagination
func GetCases(db *gorm.DB, filter CaseFilter) ([]models.Case, int64, error) {
	query := db.Model(&models.Case{}).Where("is_active = ?", true)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.LawyerID != "" {
		query = query.Where("lawyer_id = ?", filter.LawyerID)
	}
	if filter.CourtID != "" {
		query = query.Where("court_id = ?", filter.CourtID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cases: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var cases []models.Case
	err := query.
		Preload("Lawyer").
		Preload("Court").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&cases).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch cases: %w", err)
	}
	return cases, total, nil
}

// GetCaseByID fetches an active case with all relationships preloaded
func GetCaseByID(db *gorm.DB, id string) (*models.Case, error) {
	var caseRecord models.Case
	err := db.
		Preload("Lawyer").
		Preload("Court").
		Preload("Parties.Party").
		Preload("Hearings.Court").
		Preload("Deadlines").
		First(&caseRecord, "id = ? AND is_active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("case %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &caseRecord, nil
}

// CreateCase inserts a case together with its initial parties in one
// transaction. Reference and uniqueness checks run before any write; a bad
// party reference rolls back the whole creation.
func CreateCase(db *gorm.DB, caseRecord *models.Case, parties []CasePartyInput) error {
	if err := validateCaseReferences(db, caseRecord.LawyerID, caseRecord.CourtID); err != nil {
		return err
	}

	// Case numbers are unique across all cases ever created, including
	// deactivated ones.
	var count int64
	if err := db.Model(&models.Case{}).
		Where("case_number = ?", caseRecord.CaseNumber).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check case number uniqueness: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("case number %s already exists: %w", caseRecord.CaseNumber, ErrConflict)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(caseRecord).Error; err != nil {
			return err
		}
		for _, input := range parties {
			if err := attachPartyTx(tx, caseRecord.ID, input); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateCase applies a partial update to an active case
func UpdateCase(db *gorm.DB, id string, input UpdateCaseInput) (*models.Case, error) {
	var caseRecord models.Case
	err := db.First(&caseRecord, "id = ? AND is_active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("case %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if input.LawyerID != nil {
		if _, err := GetLawyerByID(db, *input.LawyerID); err != nil {
			return nil, fmt.Errorf("lawyer %s: %w", *input.LawyerID, ErrInvalidReference)
		}
		caseRecord.LawyerID = *input.LawyerID
	}
	if input.CourtID != nil {
		if _, err := GetCourtByID(db, *input.CourtID); err != nil {
			return nil, fmt.Errorf("court %s: %w", *input.CourtID, ErrInvalidReference)
		}
		caseRecord.CourtID = *input.CourtID
	}
	if input.Title != nil {
		caseRecord.Title = *input.Title
	}
	if input.Description != nil {
		caseRecord.Description = *input.Description
	}
	if input.Status != nil {
		caseRecord.Status = *input.Status
	}
	if input.Outcome != nil {
		caseRecord.Outcome = input.Outcome
	}

	if err := db.Save(&caseRecord).Error; err != nil {
		return nil, err
	}
	return GetCaseByID(db, id)
}

// DeactivateCase flips the active flag. Hearings and deadlines stay attached;
// only the case drops out of listings and reports.
func DeactivateCase(db *gorm.DB, id string) error {
	var caseRecord models.Case
	if err := db.First(&caseRecord, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("case %s: %w", id, ErrNotFound)
		}
		return err
	}

	if !caseRecord.IsActive {
		return fmt.Errorf("case is already inactive: %w", ErrConflict)
	}

	caseRecord.IsActive = false
	return db.Save(&caseRecord).Error
}

// AttachParty links a party to an active case under a role
func AttachParty(db *gorm.DB, caseID string, input CasePartyInput) error {
	if err := requireActiveCase(db, caseID); err != nil {
		return err
	}
	return attachPartyTx(db, caseID, input)
}

// DetachParty removes one (case, party, role) link
func DetachParty(db *gorm.DB, caseID, partyID, role string) error {
	result := db.Where("case_id = ? AND party_id = ? AND role = ?", caseID, partyID, role).
		Delete(&models.CaseParty{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("case party link: %w", ErrNotFound)
	}
	return nil
}

func attachPartyTx(tx *gorm.DB, caseID string, input CasePartyInput) error {
	var party models.Party
	err := tx.First(&party, "id = ? AND is_active = ?", input.PartyID, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("party %s: %w", input.PartyID, ErrInvalidReference)
	}
	if err != nil {
		return err
	}

	var count int64
	if err := tx.Model(&models.CaseParty{}).
		Where("case_id = ? AND party_id = ? AND role = ?", caseID, input.PartyID, input.Role).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check case party uniqueness: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("party already attached to case with role %s: %w", input.Role, ErrConflict)
	}

	return tx.Create(&models.CaseParty{
		CaseID:  caseID,
		PartyID: input.PartyID,
		Role:    input.Role,
	}).Error
}

func validateCaseReferences(db *gorm.DB, lawyerID, courtID string) error {
	if _, err := GetLawyerByID(db, lawyerID); err != nil {
		return fmt.Errorf("lawyer %s: %w", lawyerID, ErrInvalidReference)
	}
	if _, err := GetCourtByID(db, courtID); err != nil {
		return fmt.Errorf("court %s: %w", courtID, ErrInvalidReference)
	}
	return nil
}

func requireActiveCase(db *gorm.DB, caseID string) error {
	var caseRecord models.Case
	err := db.Select("id").First(&caseRecord, "id = ? AND is_active = ?", caseID, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}
	return err
}
