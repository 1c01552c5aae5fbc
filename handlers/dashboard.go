package handlers

import (
	"net/http"
	"time"

	"legal_case_api_go/db"
	"legal_case_api_go/services"

	"github.com/labstack/echo/v4"
)

// GetDashboardHandler returns the compact dashboard aggregate
func GetDashboardHandler(c echo.Context) error {
	summary, err := services.BuildDashboardSummary(db.DB, time.Now().UTC())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
