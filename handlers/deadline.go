package handlers

import (
	"net/http"
	"time"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
	"legal_case_api_go/services"

	"github.com/labstack/echo/v4"
)

// CreateDeadlineRequest is the payload for adding a deadline to a case
type CreateDeadlineRequest struct {
	DueDate     string  `json:"due_date" validate:"required"`
	Description string  `json:"description" validate:"required,max=500"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=High Medium Low"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateDeadlineRequest is the partial-update payload for a deadline
type UpdateDeadlineRequest struct {
	DueDate     *string `json:"due_date"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=High Medium Low"`
	IsCompleted *bool   `json:"is_completed"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
}

// AddDeadlineHandler adds a deadline to a case
func AddDeadlineHandler(c echo.Context) error {
	var req CreateDeadlineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dueDate, err := services.ParseDate(req.DueDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	deadline := &models.Deadline{
		DueDate:     dueDate,
		Description: req.Description,
		Priority:    req.Priority,
		Notes:       req.Notes,
	}
	if err := services.AddDeadline(db.DB, c.Param("id"), deadline); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, deadline)
}

// UpdateDeadlineHandler applies a partial update to a deadline
func UpdateDeadlineHandler(c echo.Context) error {
	var req UpdateDeadlineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := services.ParseDate(*req.DueDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		dueDate = &parsed
	}

	deadline, err := services.UpdateDeadline(db.DB, c.Param("id"), c.Param("deadlineId"), services.UpdateDeadlineInput{
		DueDate:     dueDate,
		Description: req.Description,
		Priority:    req.Priority,
		IsCompleted: req.IsCompleted,
		Notes:       req.Notes,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, deadline)
}

// CompleteDeadlineHandler marks a deadline complete. Completing an
// already-completed deadline is a conflict.
func CompleteDeadlineHandler(c echo.Context) error {
	deadline, err := services.CompleteDeadline(db.DB, c.Param("id"), c.Param("deadlineId"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, deadline)
}

// DeleteDeadlineHandler removes a deadline
func DeleteDeadlineHandler(c echo.Context) error {
	if err := services.DeleteDeadline(db.DB, c.Param("id"), c.Param("deadlineId")); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Deadline deleted successfully",
	})
}

// GetDeadlinesHandler lists deadlines on active cases
func GetDeadlinesHandler(c echo.Context) error {
	deadlines, err := services.GetDeadlines(db.DB)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, deadlines)
}

// GetOverdueDeadlinesHandler lists incomplete, past-due deadlines on active cases
func GetOverdueDeadlinesHandler(c echo.Context) error {
	deadlines, err := services.GetOverdueDeadlines(db.DB, time.Now().UTC())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, deadlines)
}
