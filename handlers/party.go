package handlers

import (
	"net/http"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
	"legal_case_api_go/services"

	"github.com/labstack/echo/v4"
)

// CreatePartyRequest is the payload for creating or updating a party
type CreatePartyRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	PartyType *string `json:"party_type" validate:"omitempty,max=50"`
	Email     *string `json:"email" validate:"omitempty,email,max=200"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Address   *string `json:"address" validate:"omitempty,max=300"`
	City      *string `json:"city" validate:"omitempty,max=100"`
	State     *string `json:"state" validate:"omitempty,max=50"`
	ZipCode   *string `json:"zip_code" validate:"omitempty,max=20"`
}

// GetPartiesHandler returns all active parties
func GetPartiesHandler(c echo.Context) error {
	parties, err := services.GetParties(db.DB)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, parties)
}

// GetPartyHandler returns a single party
func GetPartyHandler(c echo.Context) error {
	party, err := services.GetPartyByID(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, party)
}

// GetPartyCasesHandler returns the active cases a party participates in
func GetPartyCasesHandler(c echo.Context) error {
	cases, err := services.GetPartyCases(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, cases)
}

// CreatePartyHandler registers a new party
func CreatePartyHandler(c echo.Context) error {
	var req CreatePartyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	party := &models.Party{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		PartyType: req.PartyType,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		IsActive:  true,
	}
	if err := services.CreateParty(db.DB, party); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, party)
}

// UpdatePartyHandler updates an existing party
func UpdatePartyHandler(c echo.Context) error {
	var req CreatePartyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	party, err := services.GetPartyByID(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}

	party.FirstName = req.FirstName
	party.LastName = req.LastName
	party.PartyType = req.PartyType
	party.Email = req.Email
	party.Phone = req.Phone
	party.Address = req.Address
	party.City = req.City
	party.State = req.State
	party.ZipCode = req.ZipCode

	if err := services.UpdateParty(db.DB, party); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, party)
}

// DeactivatePartyHandler soft-deletes a party
func DeactivatePartyHandler(c echo.Context) error {
	id := c.Param("id")
	if err := services.DeactivateParty(db.DB, id); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Party successfully deactivated",
		"party_id": id,
	})
}
