package handlers

import (
	"net/http"
	"time"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
	"legal_case_api_go/services"

	"github.com/labstack/echo/v4"
)

// CreateHearingRequest is the payload for scheduling a hearing on a case
type CreateHearingRequest struct {
	CourtID     *string `json:"court_id"`
	Date        string  `json:"date" validate:"required"`
	Time        string  `json:"time" validate:"required,len=5"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	HearingType *string `json:"hearing_type" validate:"omitempty,max=100"`
	Remarks     *string `json:"remarks" validate:"omitempty,max=500"`
}

// UpdateHearingRequest is the partial-update payload for a hearing
type UpdateHearingRequest struct {
	Date        *string `json:"date"`
	Time        *string `json:"time" validate:"omitempty,len=5"`
	CourtID     *string `json:"court_id"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	HearingType *string `json:"hearing_type" validate:"omitempty,max=100"`
	Remarks     *string `json:"remarks" validate:"omitempty,max=500"`
	Status      *string `json:"status" validate:"omitempty,oneof=Scheduled Completed Postponed Cancelled"`
}

// AddHearingHandler schedules a hearing on a case
func AddHearingHandler(c echo.Context) error {
	var req CreateHearingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := services.ParseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hearing := &models.Hearing{
		CourtID:     req.CourtID,
		Date:        date,
		Time:        req.Time,
		Location:    req.Location,
		HearingType: req.HearingType,
		Remarks:     req.Remarks,
	}
	if err := services.AddHearing(db.DB, c.Param("id"), hearing); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, hearing)
}

// UpdateHearingHandler applies a partial update to a hearing
func UpdateHearingHandler(c echo.Context) error {
	var req UpdateHearingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := services.ParseDate(*req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		date = &parsed
	}

	hearing, err := services.UpdateHearing(db.DB, c.Param("id"), c.Param("hearingId"), services.UpdateHearingInput{
		Date:        date,
		Time:        req.Time,
		CourtID:     req.CourtID,
		Location:    req.Location,
		HearingType: req.HearingType,
		Remarks:     req.Remarks,
		Status:      req.Status,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, hearing)
}

// DeleteHearingHandler removes a hearing
func DeleteHearingHandler(c echo.Context) error {
	if err := services.DeleteHearing(db.DB, c.Param("id"), c.Param("hearingId")); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Hearing deleted successfully",
	})
}
