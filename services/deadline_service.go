package services

import (
	"errors"
	"fmt"
	"time"

	"legal_case_api_go/models"

	"gorm.io/gorm"
)

// UpdateDeadlineInput carries partial deadline updates; nil fields are untouched
type UpdateDeadlineInput struct {
	DueDate     *time.Time
	Description *string
	Priority    *string
	IsCompleted *bool
	Notes       *string
}

// AddDeadline attaches a deadline to an active case. New deadlines always
// start incomplete with no completion date.
func AddDeadline(db *gorm.DB, caseID string, deadline *models.Deadline) error {
	if err := requireActiveCase(db, caseID); err != nil {
		return err
	}

	deadline.CaseID = caseID
	deadline.IsCompleted = false
	deadline.CompletedDate = nil
	if deadline.Priority == "" {
		deadline.Priority = models.DeadlinePriorityMedium
	}
	return db.Create(deadline).Error
}

// GetDeadline fetches a deadline scoped to its case
func GetDeadline(db *gorm.DB, caseID, deadlineID string) (*models.Deadline, error) {
	var deadline models.Deadline
	err := db.First(&deadline, "id = ? AND case_id = ?", deadlineID, caseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("deadline %s for case %s: %w", deadlineID, caseID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &deadline, nil
}

// UpdateDeadline applies a partial update. Completion stamping:
// false->true sets CompletedDate (if not already set), ->false clears it,
// same-value updates leave it alone.
func UpdateDeadline(db *gorm.DB, caseID, deadlineID string, input UpdateDeadlineInput) (*models.Deadline, error) {
	deadline, err := GetDeadline(db, caseID, deadlineID)
	if err != nil {
		return nil, err
	}

	if input.DueDate != nil {
		deadline.DueDate = *input.DueDate
	}
	if input.Description != nil {
		deadline.Description = *input.Description
	}
	if input.Priority != nil {
		deadline.Priority = *input.Priority
	}
	if input.Notes != nil {
		deadline.Notes = input.Notes
	}
	if input.IsCompleted != nil {
		applyCompletion(deadline, *input.IsCompleted)
	}

	if err := db.Save(deadline).Error; err != nil {
		return nil, err
	}
	return deadline, nil
}

// CompleteDeadline is the dedicated completion operation. Unlike the generic
// update, re-completing an already-completed deadline is rejected.
func CompleteDeadline(db *gorm.DB, caseID, deadlineID string) (*models.Deadline, error) {
	deadline, err := GetDeadline(db, caseID, deadlineID)
	if err != nil {
		return nil, err
	}

	if deadline.IsCompleted {
		return nil, fmt.Errorf("deadline is already completed: %w", ErrConflict)
	}

	applyCompletion(deadline, true)
	if err := db.Save(deadline).Error; err != nil {
		return nil, err
	}
	return deadline, nil
}

// DeleteDeadline removes a deadline outright
func DeleteDeadline(db *gorm.DB, caseID, deadlineID string) error {
	result := db.Where("id = ? AND case_id = ?", deadlineID, caseID).
		Delete(&models.Deadline{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("deadline %s for case %s: %w", deadlineID, caseID, ErrNotFound)
	}
	return nil
}

// GetDeadlines fetches every deadline on active cases ordered by due date
func GetDeadlines(db *gorm.DB) ([]models.Deadline, error) {
	var deadlines []models.Deadline
	err := db.
		Joins("JOIN cases ON cases.id = deadlines.case_id").
		Where("cases.is_active = ?", true).
		Preload("Case").
		Order("due_date").
		Find(&deadlines).Error
	return deadlines, err
}

// GetOverdueDeadlines fetches incomplete, past-due deadlines on active cases
func GetOverdueDeadlines(db *gorm.DB, now time.Time) ([]models.Deadline, error) {
	var deadlines []models.Deadline
	err := db.
		Joins("JOIN cases ON cases.id = deadlines.case_id").
		Where("cases.is_active = ?", true).
		Where("deadlines.is_completed = ? AND deadlines.due_date < ?", false, now).
		Preload("Case.Lawyer").
		Order("due_date").
		Find(&deadlines).Error
	return deadlines, err
}

func applyCompletion(deadline *models.Deadline, completed bool) {
	if completed {
		deadline.IsCompleted = true
		if deadline.CompletedDate == nil {
			now := time.Now().UTC()
			deadline.CompletedDate = &now
		}
		return
	}
	deadline.IsCompleted = false
	deadline.CompletedDate = nil
}
