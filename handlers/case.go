package handlers

import (
	"net/http"
	"strconv"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
	"legal_case_api_go/services"

	"github.com/labstack/echo/v4"
)

// CasePartyRequest names a party and its role on a case
type CasePartyRequest struct {
	PartyID string `json:"party_id" validate:"required"`
	Role    string `json:"role" validate:"required,oneof=Plaintiff Defendant Witness Attorney 'Expert Witness' 'Third Party'"`
}

// CreateCaseRequest is the payload for registering a new case
type CreateCaseRequest struct {
	CaseNumber  string             `json:"case_number" validate:"required,max=50"`
	Title       string             `json:"title" validate:"required,max=200"`
	Description string             `json:"description" validate:"omitempty,max=1000"`
	LawyerID    string             `json:"lawyer_id" validate:"required"`
	CourtID     string             `json:"court_id" validate:"required"`
	DateFiled   string             `json:"date_filed" validate:"required"`
	Status      string             `json:"status" validate:"omitempty,oneof=Active Pending Closed 'On Hold'"`
	Parties     []CasePartyRequest `json:"parties" validate:"omitempty,dive"`
}

// UpdateCaseRequest is the partial-update payload for a case
type UpdateCaseRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	LawyerID    *string `json:"lawyer_id"`
	CourtID     *string `json:"court_id"`
	Status      *string `json:"status" validate:"omitempty,oneof=Active Pending Closed 'On Hold'"`
	Outcome     *string `json:"outcome" validate:"omitempty,max=500"`
}

// GetCasesHandler returns active cases with filtering and pagination
func GetCasesHandler(c echo.Context) error {
	filter := services.CaseFilter{
		Status:   c.QueryParam("status"),
		LawyerID: c.QueryParam("lawyer_id"),
		CourtID:  c.QueryParam("court_id"),
		Page:     1,
		Limit:    20,
	}
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
			filter.Page = p
		}
	}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 && l <= 100 {
			filter.Limit = l
		}
	}

	cases, total, err := services.GetCases(db.DB, filter)
	if err != nil {
		return serviceError(err)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": cases,
		"pagination": map[string]interface{}{
			"page":        filter.Page,
			"limit":       filter.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

// GetCaseHandler returns a case with all relationships
func GetCaseHandler(c echo.Context) error {
	caseRecord, err := services.GetCaseByID(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, caseRecord)
}

// CreateCaseHandler registers a new case with optional initial parties
func CreateCaseHandler(c echo.Context) error {
	var req CreateCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dateFiled, err := services.ParseDate(req.DateFiled)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := req.Status
	if status == "" {
		status = models.CaseStatusActive
	}

	caseRecord := &models.Case{
		CaseNumber:  req.CaseNumber,
		Title:       req.Title,
		Description: req.Description,
		LawyerID:    req.LawyerID,
		CourtID:     req.CourtID,
		DateFiled:   dateFiled,
		Status:      status,
		IsActive:    true,
	}

	parties := make([]services.CasePartyInput, 0, len(req.Parties))
	for _, p := range req.Parties {
		parties = append(parties, services.CasePartyInput{PartyID: p.PartyID, Role: p.Role})
	}

	if err := services.CreateCase(db.DB, caseRecord, parties); err != nil {
		return serviceError(err)
	}

	created, err := services.GetCaseByID(db.DB, caseRecord.ID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCaseHandler applies a partial update to a case
func UpdateCaseHandler(c echo.Context) error {
	var req UpdateCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := services.UpdateCase(db.DB, c.Param("id"), services.UpdateCaseInput{
		Title:       req.Title,
		Description: req.Description,
		LawyerID:    req.LawyerID,
		CourtID:     req.CourtID,
		Status:      req.Status,
		Outcome:     req.Outcome,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeactivateCaseHandler soft-deletes a case
func DeactivateCaseHandler(c echo.Context) error {
	id := c.Param("id")
	if err := services.DeactivateCase(db.DB, id); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Case successfully deactivated",
		"case_id": id,
	})
}

// AttachPartyHandler links a party to a case under a role
func AttachPartyHandler(c echo.Context) error {
	var req CasePartyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	caseID := c.Param("id")
	input := services.CasePartyInput{PartyID: req.PartyID, Role: req.Role}
	if err := services.AttachParty(db.DB, caseID, input); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"case_id":  caseID,
		"party_id": req.PartyID,
		"role":     req.Role,
	})
}

// DetachPartyHandler removes a (case, party, role) link
func DetachPartyHandler(c echo.Context) error {
	caseID := c.Param("id")
	partyID := c.Param("partyId")
	role := c.QueryParam("role")
	if role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "role query parameter is required")
	}

	if err := services.DetachParty(db.DB, caseID, partyID, role); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Party removed from case",
	})
}
