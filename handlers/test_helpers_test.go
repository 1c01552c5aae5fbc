package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"time"

	"legal_case_api_go/db"
	"legal_case_api_go/models"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	testDB.AutoMigrate(
		&models.Lawyer{},
		&models.Court{},
		&models.Party{},
		&models.Case{},
		&models.CaseParty{},
		&models.Hearing{},
		&models.Deadline{},
	)

	// Handlers read the global DB
	db.DB = testDB
	return testDB
}

func setupEcho(method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewRequestValidator()

	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func strPtr(s string) *string {
	return &s
}

func createTestLawyer(testDB *gorm.DB, email string) *models.Lawyer {
	lawyer := &models.Lawyer{
		FirstName: "Ada",
		LastName:  "Reyes",
		Email:     email,
		IsActive:  true,
	}
	testDB.Create(lawyer)
	return lawyer
}

func createTestCourt(testDB *gorm.DB, name string) *models.Court {
	court := &models.Court{
		Name:     name,
		City:     strPtr("Springfield"),
		State:    strPtr("IL"),
		IsActive: true,
	}
	testDB.Create(court)
	return court
}

func createTestParty(testDB *gorm.DB, email string) *models.Party {
	party := &models.Party{
		FirstName: "Sam",
		LastName:  "Porter",
		Email:     strPtr(email),
		IsActive:  true,
	}
	testDB.Create(party)
	return party
}

func createTestCase(testDB *gorm.DB, lawyerID, courtID, caseNumber string) *models.Case {
	caseRecord := &models.Case{
		CaseNumber: caseNumber,
		Title:      "Test Case",
		LawyerID:   lawyerID,
		CourtID:    courtID,
		DateFiled:  time.Now().UTC().AddDate(0, -1, 0),
		Status:     models.CaseStatusActive,
		IsActive:   true,
	}
	testDB.Create(caseRecord)
	return caseRecord
}
