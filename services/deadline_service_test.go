package services

import (
	"errors"
	"testing"
	"time"

	"legal_case_api_go/models"

	"github.com/stretchr/testify/assert"
)

func TestAddDeadline(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "add-deadline@example.com")
	court := createTestCourt(db, "Add Deadline Court")
	caseRecord := createTestCase(db, lawyer.ID, court.ID, "CASE-ADD-DL")

	deadline := &models.Deadline{
		DueDate:     time.Now().UTC().AddDate(0, 0, 10),
		Description: "File motion",
		// Caller-supplied completion state is ignored on creation
		IsCompleted: true,
	}
	err := AddDeadline(db, caseRecord.ID, deadline)
	assert.NoError(t, err)
	assert.False(t, deadline.IsCompleted)
	assert.Nil(t, deadline.CompletedDate)
	assert.Equal(t, models.DeadlinePriorityMedium, deadline.Priority)
	assert.Equal(t, caseRecord.ID, deadline.CaseID)
}

func TestAddDeadline_CaseNotFound(t *testing.T) {
	db := setupTestDB()

	deadline := &models.Deadline{
		DueDate:     time.Now().UTC().AddDate(0, 0, 10),
		Description: "File motion",
	}
	err := AddDeadline(db, "missing", deadline)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAddDeadline_InactiveCase(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "inactive-dl@example.com")
	court := createTestCourt(db, "Inactive Deadline Court")
	caseRecord := createTestCase(db, lawyer.ID, court.ID, "CASE-INACTIVE-DL")
	db.Model(caseRecord).Update("is_active", false)

	err := AddDeadline(db, caseRecord.ID, &models.Deadline{
		DueDate:     time.Now().UTC().AddDate(0, 0, 10),
		Description: "File motion",
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateDeadline_CompletionStamping(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "stamp@example.com")
	court := createTestCourt(db, "Stamp Court")
	caseRecord := createTestCase(db, lawyer.ID, court.ID, "CASE-STAMP")

	deadline := &models.Deadline{
		DueDate:     time.Now().UTC().AddDate(0, 0, 10),
		Description: "Serve documents",
	}
	assert.NoError(t, AddDeadline(db, caseRecord.ID, deadline))

	// false -> true stamps a completion date
	completed := true
	updated, err := UpdateDeadline(db, caseRecord.ID, deadline.ID, UpdateDeadlineInput{IsCompleted: &completed})
	assert.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.NotNil(t, updated.CompletedDate)
	firstStamp := *updated.CompletedDate

	// true -> true keeps the original stamp
	updated, err = UpdateDeadline(db, caseRecord.ID, deadline.ID, UpdateDeadlineInput{IsCompleted: &completed})
	assert.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, firstStamp.Unix(), updated.CompletedDate.Unix())

	// true -> false clears the stamp
	incomplete := false
	updated, err = UpdateDeadline(db, caseRecord.ID, deadline.ID, UpdateDeadlineInput{IsCompleted: &incomplete})
	assert.NoError(t, err)
	assert.False(t, updated.IsCompleted)
	assert.Nil(t, updated.CompletedDate)
}

func TestUpdateDeadline_PartialFields(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "partial-dl@example.com")
	court := createTestCourt(db, "Partial Court")
	caseRecord := createTestCase(db, lawyer.ID, court.ID, "CASE-PARTIAL-DL")

	deadline := &models.Deadline{
		DueDate:     time.Now().UTC().AddDate(0, 0, 10),
		Description: "Original",
		Priority:    models.DeadlinePriorityLow,
	}
	assert.NoError(t, AddDeadline(db, caseRecord.ID, deadline))

	updated, err := UpdateDeadline(db, caseRecord.ID, deadline.ID, UpdateDeadlineInput{
		Description: strPtr("Amended"),
		Priority:    strPtr(models.DeadlinePriorityHigh),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Amended", updated.Description)
	assert.Equal(t, models.DeadlinePriorityHigh, updated.Priority)
	// Untouched fields survive
	assert.Equal(t, deadline.DueDate.Unix(), updated.DueDate.Unix())
	assert.False(t, updated.IsCompleted)
}

func TestCompleteDeadline(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "complete@example.com")
	court := createTestCourt(db, "Complete Court")
	caseRecord := createTestCase(db, lawyer.ID, court.ID, "CASE-COMPLETE")

	deadline := &models.Deadline{
		DueDate:     time.Now().UTC().AddDate(0, 0, 10),
		Description: "Submit brief",
	}
	assert.NoError(t, AddDeadline(db, caseRecord.ID, deadline))

	completed, err := CompleteDeadline(db, caseRecord.ID, deadline.ID)
	assert.NoError(t, err)
	assert.True(t, completed.IsCompleted)
	assert.NotNil(t, completed.CompletedDate)

	// Completing again is a conflict
	_, err = CompleteDeadline(db, caseRecord.ID, deadline.ID)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestDeleteDeadline(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "delete-dl@example.com")
	court := createTestCourt(db, "Delete Court")
	caseRecord := createTestCase(db, lawyer.ID, court.ID, "CASE-DELETE-DL")

	deadline := &models.Deadline{
		DueDate:     time.Now().UTC().AddDate(0, 0, 10),
		Description: "Discovery cutoff",
	}
	assert.NoError(t, AddDeadline(db, caseRecord.ID, deadline))

	assert.NoError(t, DeleteDeadline(db, caseRecord.ID, deadline.ID))

	var count int64
	db.Model(&models.Deadline{}).Where("id = ?", deadline.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// Deleting again reports not found
	err := DeleteDeadline(db, caseRecord.ID, deadline.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetDeadline_ScopedToCase(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "scoped-dl@example.com")
	court := createTestCourt(db, "Scoped Court")
	caseA := createTestCase(db, lawyer.ID, court.ID, "CASE-SCOPE-A")
	caseB := createTestCase(db, lawyer.ID, court.ID, "CASE-SCOPE-B")

	deadline := &models.Deadline{
		DueDate:     time.Now().UTC().AddDate(0, 0, 10),
		Description: "Answer due",
	}
	assert.NoError(t, AddDeadline(db, caseA.ID, deadline))

	_, err := GetDeadline(db, caseA.ID, deadline.ID)
	assert.NoError(t, err)

	// Same deadline under the wrong case is not found
	_, err = GetDeadline(db, caseB.ID, deadline.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetOverdueDeadlines(t *testing.T) {
	db := setupTestDB()
	now := time.Now().UTC()
	lawyer := createTestLawyer(db, "overdue@example.com")
	court := createTestCourt(db, "Overdue Court")
	activeCase := createTestCase(db, lawyer.ID, court.ID, "CASE-OVERDUE-ACTIVE")
	inactiveCase := createTestCase(db, lawyer.ID, court.ID, "CASE-OVERDUE-INACTIVE")

	db.Create(&models.Deadline{CaseID: activeCase.ID, DueDate: now.AddDate(0, 0, -3), Description: "Past due", Priority: "Medium"})
	db.Create(&models.Deadline{CaseID: activeCase.ID, DueDate: now.AddDate(0, 0, -1), Description: "Done late", Priority: "Medium", IsCompleted: true, CompletedDate: &now})
	db.Create(&models.Deadline{CaseID: activeCase.ID, DueDate: now.AddDate(0, 0, 3), Description: "Future", Priority: "Medium"})
	db.Create(&models.Deadline{CaseID: inactiveCase.ID, DueDate: now.AddDate(0, 0, -3), Description: "Hidden", Priority: "Medium"})
	db.Model(inactiveCase).Update("is_active", false)

	overdue, err := GetOverdueDeadlines(db, now)
	assert.NoError(t, err)
	assert.Len(t, overdue, 1)
	assert.Equal(t, "Past due", overdue[0].Description)
}

func TestCompletionInvariantSurvivesUpdates(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "invariant@example.com")
	court := createTestCourt(db, "Invariant Court")
	caseRecord := createTestCase(db, lawyer.ID, court.ID, "CASE-INVARIANT")

	deadline := &models.Deadline{
		DueDate:     time.Now().UTC().AddDate(0, 0, 10),
		Description: "Invariant check",
	}
	assert.NoError(t, AddDeadline(db, caseRecord.ID, deadline))

	toggle := func(v bool) *models.Deadline {
		updated, err := UpdateDeadline(db, caseRecord.ID, deadline.ID, UpdateDeadlineInput{IsCompleted: &v})
		assert.NoError(t, err)
		return updated
	}

	for _, v := range []bool{true, false, true, true, false} {
		updated := toggle(v)
		if updated.IsCompleted {
			assert.NotNil(t, updated.CompletedDate)
		} else {
			assert.Nil(t, updated.CompletedDate)
		}
	}

	var stored models.Deadline
	assert.NoError(t, db.First(&stored, "id = ?", deadline.ID).Error)
	assert.False(t, stored.IsCompleted)
	assert.Nil(t, stored.CompletedDate)
}
