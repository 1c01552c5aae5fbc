package services

import (
	"errors"
	"fmt"

	"legal_case_api_go/models"

	"gorm.io/gorm"
)

// GetLawyers fetches all active lawyers ordered by name
func GetLawyers(db *gorm.DB) ([]models.Lawyer, error) {
	var lawyers []models.Lawyer
	err := db.Where("is_active = ?", true).
		Order("last_name, first_name").
		Find(&lawyers).Error
	return lawyers, err
}

// GetLawyerByID fetches a single active lawyer
func GetLawyerByID(db *gorm.DB, id string) (*models.Lawyer, error) {
	var lawyer models.Lawyer
	err := db.First(&lawyer, "id = ? AND is_active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lawyer %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &lawyer, nil
}

// CreateLawyer inserts a lawyer after checking email and bar number uniqueness
func CreateLawyer(db *gorm.DB, lawyer *models.Lawyer) error {
	if err := checkLawyerUniqueness(db, lawyer, ""); err != nil {
		return err
	}
	return db.Create(lawyer).Error
}

// UpdateLawyer updates a lawyer, re-checking uniqueness against other rows
func UpdateLawyer(db *gorm.DB, lawyer *models.Lawyer) error {
	if err := checkLawyerUniqueness(db, lawyer, lawyer.ID); err != nil {
		return err
	}
	return db.Save(lawyer).Error
}

// DeactivateLawyer flips the active flag. Rejected while the lawyer is
// referenced by at least one active case.
func DeactivateLawyer(db *gorm.DB, id string) error {
	var lawyer models.Lawyer
	if err := db.First(&lawyer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lawyer %s: %w", id, ErrNotFound)
		}
		return err
	}

	if !lawyer.IsActive {
		return fmt.Errorf("lawyer is already inactive: %w", ErrConflict)
	}

	var activeCases int64
	if err := db.Model(&models.Case{}).
		Where("lawyer_id = ? AND is_active = ?", id, true).
		Count(&activeCases).Error; err != nil {
		return fmt.Errorf("failed to count active cases: %w", err)
	}
	if activeCases > 0 {
		return fmt.Errorf("cannot deactivate lawyer with %d active case(s): %w", activeCases, ErrConflict)
	}

	lawyer.IsActive = false
	return db.Save(&lawyer).Error
}

func checkLawyerUniqueness(db *gorm.DB, lawyer *models.Lawyer, excludeID string) error {
	query := db.Model(&models.Lawyer{}).Where("email = ?", lawyer.Email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check lawyer email uniqueness: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("a lawyer with this email already exists: %w", ErrConflict)
	}

	if lawyer.BarNumber != nil && *lawyer.BarNumber != "" {
		query = db.Model(&models.Lawyer{}).Where("bar_number = ?", *lawyer.BarNumber)
		if excludeID != "" {
			query = query.Where("id <> ?", excludeID)
		}
		if err := query.Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check bar number uniqueness: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("a lawyer with this bar number already exists: %w", ErrConflict)
		}
	}
	return nil
}
