package handlers

import (
	"net/http"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
	"legal_case_api_go/services"

	"github.com/labstack/echo/v4"
)

// CreateCourtRequest is the payload for creating or updating a court
type CreateCourtRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Type    *string `json:"type" validate:"omitempty,max=100"`
	Address *string `json:"address" validate:"omitempty,max=300"`
	City    *string `json:"city" validate:"omitempty,max=100"`
	State   *string `json:"state" validate:"omitempty,max=50"`
	ZipCode *string `json:"zip_code" validate:"omitempty,max=20"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
}

// GetCourtsHandler returns all active courts
func GetCourtsHandler(c echo.Context) error {
	courts, err := services.GetCourts(db.DB)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, courts)
}

// GetCourtHandler returns a single court
func GetCourtHandler(c echo.Context) error {
	court, err := services.GetCourtByID(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, court)
}

// CreateCourtHandler registers a new court
func CreateCourtHandler(c echo.Context) error {
	var req CreateCourtRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	court := &models.Court{
		Name:     req.Name,
		Type:     req.Type,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := services.CreateCourt(db.DB, court); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, court)
}

// UpdateCourtHandler updates an existing court
func UpdateCourtHandler(c echo.Context) error {
	var req CreateCourtRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	court, err := services.GetCourtByID(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}

	court.Name = req.Name
	court.Type = req.Type
	court.Address = req.Address
	court.City = req.City
	court.State = req.State
	court.ZipCode = req.ZipCode
	court.Phone = req.Phone

	if err := services.UpdateCourt(db.DB, court); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, court)
}

// DeactivateCourtHandler soft-deletes a court
func DeactivateCourtHandler(c echo.Context) error {
	id := c.Param("id")
	if err := services.DeactivateCourt(db.DB, id); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Court successfully deactivated",
		"court_id": id,
	})
}
