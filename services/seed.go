package services

import (
	"log"
	"time"

	"legal_case_api_go/models"

	"gorm.io/gorm"
)

// SeedSampleData loads a small fixture set: two lawyers, two courts, two
// parties and two cases with hearings and deadlines. Skipped entirely when
// any case already exists; this never runs implicitly at server startup.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Case{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[SEED] Cases already exist, skipping sample data")
		return nil
	}

	now := time.Now().UTC()

	return db.Transaction(func(tx *gorm.DB) error {
		smith := &models.Lawyer{
			FirstName:      "John",
			LastName:       "Smith",
			Email:          "john.smith@example.com",
			BarNumber:      strPtr("BAR12345"),
			Specialization: strPtr("Criminal Law"),
			IsActive:       true,
		}
		jones := &models.Lawyer{
			FirstName:      "Sarah",
			LastName:       "Jones",
			Email:          "sarah.jones@example.com",
			BarNumber:      strPtr("BAR67890"),
			Specialization: strPtr("Civil Law"),
			IsActive:       true,
		}
		if err := tx.Create(smith).Error; err != nil {
			return err
		}
		if err := tx.Create(jones).Error; err != nil {
			return err
		}

		district := &models.Court{
			Name:     "District Court",
			Type:     strPtr("District"),
			City:     strPtr("Springfield"),
			State:    strPtr("IL"),
			IsActive: true,
		}
		supreme := &models.Court{
			Name:     "State Supreme Court",
			Type:     strPtr("Supreme"),
			City:     strPtr("Springfield"),
			State:    strPtr("IL"),
			IsActive: true,
		}
		if err := tx.Create(district).Error; err != nil {
			return err
		}
		if err := tx.Create(supreme).Error; err != nil {
			return err
		}

		doe := &models.Party{
			FirstName: "Jane",
			LastName:  "Doe",
			PartyType: strPtr("Individual"),
			Email:     strPtr("jane.doe@example.com"),
			IsActive:  true,
		}
		acme := &models.Party{
			FirstName: "Acme",
			LastName:  "Corp",
			PartyType: strPtr("Corporation"),
			Email:     strPtr("legal@acme.example.com"),
			IsActive:  true,
		}
		if err := tx.Create(doe).Error; err != nil {
			return err
		}
		if err := tx.Create(acme).Error; err != nil {
			return err
		}

		caseOne := &models.Case{
			CaseNumber:  "CASE-2026-001",
			Title:       "State v. Doe",
			Description: "Criminal proceedings",
			LawyerID:    smith.ID,
			CourtID:     district.ID,
			DateFiled:   now.AddDate(0, -2, 0),
			Status:      models.CaseStatusActive,
			IsActive:    true,
		}
		caseTwo := &models.Case{
			CaseNumber:  "CASE-2026-002",
			Title:       "Doe v. Acme Corp",
			Description: "Contract dispute",
			LawyerID:    jones.ID,
			CourtID:     supreme.ID,
			DateFiled:   now.AddDate(0, -1, 0),
			Status:      models.CaseStatusPending,
			IsActive:    true,
		}
		if err := tx.Create(caseOne).Error; err != nil {
			return err
		}
		if err := tx.Create(caseTwo).Error; err != nil {
			return err
		}

		links := []models.CaseParty{
			{CaseID: caseOne.ID, PartyID: doe.ID, Role: models.PartyRoleDefendant},
			{CaseID: caseTwo.ID, PartyID: doe.ID, Role: models.PartyRolePlaintiff},
			{CaseID: caseTwo.ID, PartyID: acme.ID, Role: models.PartyRoleDefendant},
		}
		for i := range links {
			if err := tx.Create(&links[i]).Error; err != nil {
				return err
			}
		}

		hearings := []models.Hearing{
			{
				CaseID:      caseOne.ID,
				CourtID:     &district.ID,
				Date:        now.AddDate(0, 0, 14),
				Time:        "09:30",
				Location:    strPtr("Courtroom 3A"),
				HearingType: strPtr("Initial"),
				Status:      models.HearingStatusScheduled,
			},
			{
				CaseID:      caseTwo.ID,
				CourtID:     &supreme.ID,
				Date:        now.AddDate(0, 0, 21),
				Time:        "14:00",
				HearingType: strPtr("Follow-up"),
				Status:      models.HearingStatusScheduled,
			},
		}
		for i := range hearings {
			if err := tx.Create(&hearings[i]).Error; err != nil {
				return err
			}
		}

		deadlines := []models.Deadline{
			{
				CaseID:      caseOne.ID,
				DueDate:     now.AddDate(0, 0, 7),
				Description: "File motion to suppress",
				Priority:    models.DeadlinePriorityHigh,
			},
			{
				CaseID:      caseTwo.ID,
				DueDate:     now.AddDate(0, 0, 30),
				Description: "Submit discovery documents",
				Priority:    models.DeadlinePriorityMedium,
			},
		}
		for i := range deadlines {
			if err := tx.Create(&deadlines[i]).Error; err != nil {
				return err
			}
		}

		log.Println("[SEED] Sample data created")
		return nil
	})
}

func strPtr(s string) *string {
	return &s
}
