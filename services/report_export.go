package services

import (
	"fmt"
	"io"
	"time"

	"legal_case_api_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportCaseReport writes the full case report as an XLSX workbook with one
// sheet per aggregate (cases, lawyer caseloads, court caseloads)
func ExportCaseReport(db *gorm.DB, now time.Time, w io.Writer) error {
	report, err := BuildCaseReport(db, now)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeCasesSheet(f, report); err != nil {
		return err
	}
	if err := writeLawyerSheet(f, report.LawyerCaseloads); err != nil {
		return err
	}
	if err := writeCourtSheet(f, report.CourtCaseloads); err != nil {
		return err
	}

	// Drop the default sheet so the workbook opens on the cases sheet
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write report workbook: %w", err)
	}
	return nil
}

func writeCasesSheet(f *excelize.File, report *models.CaseReport) error {
	const sheet = "Cases"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	header := []interface{}{
		"Case Number", "Title", "Status", "Lawyer", "Court", "Date Filed",
		"Hearings", "Completed Hearings", "Deadlines", "Completed Deadlines",
		"Overdue Deadlines", "Next Hearing", "Next Deadline",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, item := range report.Cases {
		row := []interface{}{
			item.CaseNumber,
			item.Title,
			item.Status,
			item.LawyerName,
			item.CourtName,
			item.DateFiled.Format("2006-01-02"),
			item.TotalHearings,
			item.CompletedHearings,
			item.TotalDeadlines,
			item.CompletedDeadlines,
			item.OverdueDeadlines,
			formatOptionalDate(item.NextHearingDate),
			formatOptionalDate(item.NextDeadlineDate),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeLawyerSheet(f *excelize.File, caseloads []models.LawyerCaseload) error {
	const sheet = "Lawyer Caseloads"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	header := []interface{}{
		"Lawyer", "Specialization", "Total Cases", "Active Cases",
		"Closed Cases", "Upcoming Hearings", "Overdue Deadlines",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, cl := range caseloads {
		row := []interface{}{
			cl.LawyerName,
			cl.Specialization,
			cl.TotalCases,
			cl.ActiveCases,
			cl.ClosedCases,
			cl.UpcomingHearings,
			cl.OverdueDeadlines,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeCourtSheet(f *excelize.File, caseloads []models.CourtCaseload) error {
	const sheet = "Court Caseloads"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	header := []interface{}{
		"Court", "Type", "Total Cases", "Active Cases", "Upcoming Hearings",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, cl := range caseloads {
		row := []interface{}{
			cl.CourtName,
			cl.CourtType,
			cl.TotalCases,
			cl.ActiveCases,
			cl.UpcomingHearings,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
