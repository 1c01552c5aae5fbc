package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"legal_case_api_go/db"
	"legal_case_api_go/services"

	"github.com/labstack/echo/v4"
)

// GetCaseReportHandler returns the full case report: global counts, per-case
// rollups and per-lawyer/per-court caseloads
func GetCaseReportHandler(c echo.Context) error {
	report, err := services.BuildCaseReport(db.DB, time.Now().UTC())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// GetLawyerCaseloadsHandler returns the per-lawyer caseload rollup
func GetLawyerCaseloadsHandler(c echo.Context) error {
	caseloads, err := services.BuildLawyerCaseloads(db.DB, time.Now().UTC())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, caseloads)
}

// GetCourtCaseloadsHandler returns the per-court caseload rollup
func GetCourtCaseloadsHandler(c echo.Context) error {
	caseloads, err := services.BuildCourtCaseloads(db.DB, time.Now().UTC())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, caseloads)
}

// GetDeadlineSummaryHandler returns the deadline summary. The horizon is
// controlled by the "days" query parameter, defaulting to 30.
func GetDeadlineSummaryHandler(c echo.Context) error {
	days, err := horizonDays(c)
	if err != nil {
		return err
	}

	summary, err := services.BuildDeadlineSummary(db.DB, time.Now().UTC(), days)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetUpcomingHearingsHandler lists scheduled hearings on active cases within
// the horizon, ordered by date then time-of-day
func GetUpcomingHearingsHandler(c echo.Context) error {
	days, err := horizonDays(c)
	if err != nil {
		return err
	}

	hearings, err := services.GetUpcomingHearings(db.DB, time.Now().UTC(), days)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, hearings)
}

// GetCasesByStatusHandler lists active case summaries matching a status
func GetCasesByStatusHandler(c echo.Context) error {
	cases, err := services.GetCasesByStatus(db.DB, c.Param("status"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, cases)
}

// GetLawyerReportHandler lists active case summaries assigned to a lawyer
func GetLawyerReportHandler(c echo.Context) error {
	cases, err := services.GetCasesByLawyer(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, cases)
}

// GetCourtReportHandler lists active case summaries filed in a court
func GetCourtReportHandler(c echo.Context) error {
	cases, err := services.GetCasesByCourt(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, cases)
}

// ExportCaseReportHandler streams the full report as an XLSX workbook
func ExportCaseReportHandler(c echo.Context) error {
	now := time.Now().UTC()

	var buf bytes.Buffer
	if err := services.ExportCaseReport(db.DB, now, &buf); err != nil {
		return serviceError(err)
	}

	filename := fmt.Sprintf("case_report_%s.xlsx", now.Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// horizonDays parses the optional "days" query parameter
func horizonDays(c echo.Context) (int, error) {
	raw := c.QueryParam("days")
	if raw == "" {
		return services.DefaultHorizonDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
	}
	return days, nil
}
