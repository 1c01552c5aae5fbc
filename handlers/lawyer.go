package handlers

import (
	"net/http"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
	"legal_case_api_go/services"

	"github.com/labstack/echo/v4"
)

// CreateLawyerRequest is the payload for creating or updating a lawyer
type CreateLawyerRequest struct {
	FirstName      string  `json:"first_name" validate:"required,max=100"`
	LastName       string  `json:"last_name" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email,max=200"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	BarNumber      *string `json:"bar_number" validate:"omitempty,max=50"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
}

// GetLawyersHandler returns all active lawyers
func GetLawyersHandler(c echo.Context) error {
	lawyers, err := services.GetLawyers(db.DB)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, lawyers)
}

// GetLawyerHandler returns a single lawyer
func GetLawyerHandler(c echo.Context) error {
	lawyer, err := services.GetLawyerByID(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, lawyer)
}

// CreateLawyerHandler registers a new lawyer
func CreateLawyerHandler(c echo.Context) error {
	var req CreateLawyerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lawyer := &models.Lawyer{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		BarNumber:      req.BarNumber,
		Specialization: req.Specialization,
		IsActive:       true,
	}
	if err := services.CreateLawyer(db.DB, lawyer); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, lawyer)
}

// UpdateLawyerHandler updates an existing lawyer
func UpdateLawyerHandler(c echo.Context) error {
	var req CreateLawyerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lawyer, err := services.GetLawyerByID(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}

	lawyer.FirstName = req.FirstName
	lawyer.LastName = req.LastName
	lawyer.Email = req.Email
	lawyer.Phone = req.Phone
	lawyer.BarNumber = req.BarNumber
	lawyer.Specialization = req.Specialization

	if err := services.UpdateLawyer(db.DB, lawyer); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, lawyer)
}

// DeactivateLawyerHandler soft-deletes a lawyer
func DeactivateLawyerHandler(c echo.Context) error {
	id := c.Param("id")
	if err := services.DeactivateLawyer(db.DB, id); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Lawyer successfully deactivated",
		"lawyer_id": id,
	})
}
