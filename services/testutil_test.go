package services

import (
	"time"

	"legal_case_api_go/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(
		&models.Lawyer{},
		&models.Court{},
		&models.Party{},
		&models.Case{},
		&models.CaseParty{},
		&models.Hearing{},
		&models.Deadline{},
	)
	return db
}

func createTestLawyer(db *gorm.DB, email string) *models.Lawyer {
	lawyer := &models.Lawyer{
		FirstName: "Ada",
		LastName:  "Reyes",
		Email:     email,
		IsActive:  true,
	}
	db.Create(lawyer)
	return lawyer
}

func createTestCourt(db *gorm.DB, name string) *models.Court {
	court := &models.Court{
		Name:     name,
		City:     strPtr("Springfield"),
		State:    strPtr("IL"),
		IsActive: true,
	}
	db.Create(court)
	return court
}

func createTestParty(db *gorm.DB, email string) *models.Party {
	party := &models.Party{
		FirstName: "Sam",
		LastName:  "Porter",
		Email:     strPtr(email),
		IsActive:  true,
	}
	db.Create(party)
	return party
}

func createTestCase(db *gorm.DB, lawyerID, courtID, caseNumber string) *models.Case {
	caseRecord := &models.Case{
		CaseNumber: caseNumber,
		Title:      "Test Case",
		LawyerID:   lawyerID,
		CourtID:    courtID,
		DateFiled:  time.Now().UTC().AddDate(0, -1, 0),
		Status:     models.CaseStatusActive,
		IsActive:   true,
	}
	db.Create(caseRecord)
	return caseRecord
}
