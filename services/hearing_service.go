package services

import (
	"errors"
	"fmt"
	"time"

	"legal_case_api_go/models"

	"gorm.io/gorm"
)

// UpdateHearingInput carries partial hearing updates; nil fields are untouched
type UpdateHearingInput struct {
	Date        *time.Time
	Time        *string // HH:MM
	CourtID     *string
	Location    *string
	HearingType *string
	Remarks     *string
	Status      *string
}

// AddHearing attaches a hearing to an active case. Status defaults to
// Scheduled when the caller leaves it empty.
func AddHearing(db *gorm.DB, caseID string, hearing *models.Hearing) error {
	if err := requireActiveCase(db, caseID); err != nil {
		return err
	}

	if hearing.CourtID != nil {
		if _, err := GetCourtByID(db, *hearing.CourtID); err != nil {
			return fmt.Errorf("court %s: %w", *hearing.CourtID, ErrInvalidReference)
		}
	}

	hearing.CaseID = caseID
	if hearing.Status == "" {
		hearing.Status = models.HearingStatusScheduled
	}
	return db.Create(hearing).Error
}

// GetHearing fetches a hearing scoped to its case
func GetHearing(db *gorm.DB, caseID, hearingID string) (*models.Hearing, error) {
	var hearing models.Hearing
	err := db.Preload("Court").
		First(&hearing, "id = ? AND case_id = ?", hearingID, caseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("hearing %s for case %s: %w", hearingID, caseID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &hearing, nil
}

// UpdateHearing applies a partial update. Status transitions are
// deliberately unconstrained: any of the four values may replace any other.
func UpdateHearing(db *gorm.DB, caseID, hearingID string, input UpdateHearingInput) (*models.Hearing, error) {
	hearing, err := GetHearing(db, caseID, hearingID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		hearing.Date = *input.Date
	}
	if input.Time != nil {
		hearing.Time = *input.Time
	}
	if input.CourtID != nil {
		if _, err := GetCourtByID(db, *input.CourtID); err != nil {
			return nil, fmt.Errorf("court %s: %w", *input.CourtID, ErrInvalidReference)
		}
		hearing.CourtID = input.CourtID
	}
	if input.Location != nil {
		hearing.Location = input.Location
	}
	if input.HearingType != nil {
		hearing.HearingType = input.HearingType
	}
	if input.Remarks != nil {
		hearing.Remarks = input.Remarks
	}
	if input.Status != nil {
		hearing.Status = *input.Status
	}

	if err := db.Save(hearing).Error; err != nil {
		return nil, err
	}
	return hearing, nil
}

// DeleteHearing removes a hearing outright
func DeleteHearing(db *gorm.DB, caseID, hearingID string) error {
	result := db.Where("id = ? AND case_id = ?", hearingID, caseID).
		Delete(&models.Hearing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("hearing %s for case %s: %w", hearingID, caseID, ErrNotFound)
	}
	return nil
}
