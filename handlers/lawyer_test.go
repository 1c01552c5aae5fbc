package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"legal_case_api_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCreateLawyerHandler(t *testing.T) {
	setupTestDB()

	c, rec := setupEcho(http.MethodPost, "/api/lawyers", jsonBody(`{
		"first_name": "Ada",
		"last_name": "Reyes",
		"email": "ada@example.com",
		"bar_number": "BAR-100"
	}`))

	err := CreateLawyerHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.Lawyer
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.True(t, created.IsActive)
}

func TestCreateLawyerHandler_ValidationFailure(t *testing.T) {
	setupTestDB()

	c, _ := setupEcho(http.MethodPost, "/api/lawyers", jsonBody(`{
		"first_name": "Ada",
		"last_name": "Reyes",
		"email": "not-an-email"
	}`))

	err := CreateLawyerHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCreateLawyerHandler_DuplicateEmail(t *testing.T) {
	testDB := setupTestDB()
	createTestLawyer(testDB, "dup@example.com")

	c, _ := setupEcho(http.MethodPost, "/api/lawyers", jsonBody(`{
		"first_name": "Other",
		"last_name": "Person",
		"email": "dup@example.com"
	}`))

	err := CreateLawyerHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestGetLawyerHandler_NotFound(t *testing.T) {
	setupTestDB()

	c, _ := setupEcho(http.MethodGet, "/api/lawyers/missing", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := GetLawyerHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestDeactivateLawyerHandler_BlockedByActiveCase(t *testing.T) {
	testDB := setupTestDB()
	lawyer := createTestLawyer(testDB, "guarded@example.com")
	court := createTestCourt(testDB, "Guard Court")
	createTestCase(testDB, lawyer.ID, court.ID, "CASE-H-GUARD")

	c, _ := setupEcho(http.MethodDelete, "/api/lawyers/"+lawyer.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(lawyer.ID)

	err := DeactivateLawyerHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestDeactivateLawyerHandler(t *testing.T) {
	testDB := setupTestDB()
	lawyer := createTestLawyer(testDB, "free@example.com")

	c, rec := setupEcho(http.MethodDelete, "/api/lawyers/"+lawyer.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(lawyer.ID)

	err := DeactivateLawyerHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var reloaded models.Lawyer
	testDB.First(&reloaded, "id = ?", lawyer.ID)
	assert.False(t, reloaded.IsActive)
}
