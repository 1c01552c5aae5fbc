package services

import (
	"errors"
	"fmt"

	"legal_case_api_go/models"

	"gorm.io/gorm"
)

// GetCourts fetches all active courts ordered by name
func GetCourts(db *gorm.DB) ([]models.Court, error) {
	var courts []models.Court
	err := db.Where("is_active = ?", true).
		Order("name").
		Find(&courts).Error
	return courts, err
}

// GetCourtByID fetches a single active court
func GetCourtByID(db *gorm.DB, id string) (*models.Court, error) {
	var court models.Court
	err := db.First(&court, "id = ? AND is_active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("court %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &court, nil
}

// CreateCourt inserts a court, rejecting a duplicate (name, city, state)
func CreateCourt(db *gorm.DB, court *models.Court) error {
	if err := checkCourtUniqueness(db, court, ""); err != nil {
		return err
	}
	return db.Create(court).Error
}

// UpdateCourt updates a court, re-checking uniqueness against other rows
func UpdateCourt(db *gorm.DB, court *models.Court) error {
	if err := checkCourtUniqueness(db, court, court.ID); err != nil {
		return err
	}
	return db.Save(court).Error
}

// DeactivateCourt flips the active flag. Rejected while the court is
// referenced by at least one active case.
func DeactivateCourt(db *gorm.DB, id string) error {
	var court models.Court
	if err := db.First(&court, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("court %s: %w", id, ErrNotFound)
		}
		return err
	}

	if !court.IsActive {
		return fmt.Errorf("court is already inactive: %w", ErrConflict)
	}

	var activeCases int64
	if err := db.Model(&models.Case{}).
		Where("court_id = ? AND is_active = ?", id, true).
		Count(&activeCases).Error; err != nil {
		return fmt.Errorf("failed to count active cases: %w", err)
	}
	if activeCases > 0 {
		return fmt.Errorf("cannot deactivate court with %d active case(s): %w", activeCases, ErrConflict)
	}

	court.IsActive = false
	return db.Save(&court).Error
}

func checkCourtUniqueness(db *gorm.DB, court *models.Court, excludeID string) error {
	query := db.Model(&models.Court{}).Where("name = ?", court.Name)
	if court.City != nil {
		query = query.Where("city = ?", *court.City)
	} else {
		query = query.Where("city IS NULL")
	}
	if court.State != nil {
		query = query.Where("state = ?", *court.State)
	} else {
		query = query.Where("state IS NULL")
	}
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check court uniqueness: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("a court with this name already exists in the same city/state: %w", ErrConflict)
	}
	return nil
}
