package services

import (
	"fmt"
	"strings"
	"time"

	"legal_case_api_go/models"

	"gorm.io/gorm"
)

// The report service computes rollups over a snapshot of the store. Nothing
// here mutates state; every derived value is recomputed per call. Callers
// pass "now" so the window boundaries are explicit.

// BuildCaseReport assembles the full report: global counts, per-case items
// and per-lawyer/per-court caseloads
func BuildCaseReport(db *gorm.DB, now time.Time) (*models.CaseReport, error) {
	var cases []models.Case
	err := db.Where("is_active = ?", true).
		Preload("Lawyer").
		Preload("Court").
		Preload("Hearings").
		Preload("Deadlines").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cases for report: %w", err)
	}

	lawyerCaseloads, err := BuildLawyerCaseloads(db, now)
	if err != nil {
		return nil, err
	}

	courtCaseloads, err := BuildCourtCaseloads(db, now)
	if err != nil {
		return nil, err
	}

	report := &models.CaseReport{
		TotalCases:      len(cases),
		Cases:           make([]models.CaseReportItem, 0, len(cases)),
		LawyerCaseloads: lawyerCaseloads,
		CourtCaseloads:  courtCaseloads,
		GeneratedAt:     now,
	}

	for i := range cases {
		c := &cases[i]
		switch c.Status {
		case models.CaseStatusActive:
			report.ActiveCases++
		case models.CaseStatusClosed:
			report.ClosedCases++
		case models.CaseStatusPending:
			report.PendingCases++
		}
		report.Cases = append(report.Cases, buildCaseReportItem(c, now))
	}

	return report, nil
}

// BuildLawyerCaseloads computes the per-lawyer rollup across active cases
func BuildLawyerCaseloads(db *gorm.DB, now time.Time) ([]models.LawyerCaseload, error) {
	var lawyers []models.Lawyer
	err := db.Where("is_active = ?", true).
		Preload("Cases", "is_active = ?", true).
		Preload("Cases.Hearings").
		Preload("Cases.Deadlines").
		Find(&lawyers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lawyers for report: %w", err)
	}

	caseloads := make([]models.LawyerCaseload, 0, len(lawyers))
	for i := range lawyers {
		l := &lawyers[i]
		caseload := models.LawyerCaseload{
			LawyerID:       l.ID,
			LawyerName:     l.FullName(),
			Specialization: orDefault(l.Specialization, "General"),
			TotalCases:     len(l.Cases),
		}
		for j := range l.Cases {
			c := &l.Cases[j]
			if c.Status == models.CaseStatusActive {
				caseload.ActiveCases++
			}
			if c.Status == models.CaseStatusClosed {
				caseload.ClosedCases++
			}
			for k := range c.Hearings {
				if IsUpcomingHearing(&c.Hearings[k], now, DefaultHorizonDays) {
					caseload.UpcomingHearings++
				}
			}
			for k := range c.Deadlines {
				if IsOverdueDeadline(&c.Deadlines[k], now) {
					caseload.OverdueDeadlines++
				}
			}
		}
		caseloads = append(caseloads, caseload)
	}
	return caseloads, nil
}

// BuildCourtCaseloads computes the per-court rollup. Hearing counts only
// consider hearings whose owning case is still active.
func BuildCourtCaseloads(db *gorm.DB, now time.Time) ([]models.CourtCaseload, error) {
	var courts []models.Court
	err := db.Where("is_active = ?", true).
		Preload("Cases", "is_active = ?", true).
		Preload("Hearings.Case").
		Find(&courts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts for report: %w", err)
	}

	caseloads := make([]models.CourtCaseload, 0, len(courts))
	for i := range courts {
		co := &courts[i]
		caseload := models.CourtCaseload{
			CourtID:    co.ID,
			CourtName:  co.Name,
			CourtType:  orDefault(co.Type, "General"),
			TotalCases: len(co.Cases),
		}
		for j := range co.Cases {
			if co.Cases[j].Status == models.CaseStatusActive {
				caseload.ActiveCases++
			}
		}
		for j := range co.Hearings {
			h := &co.Hearings[j]
			if h.Case.IsActive && IsUpcomingHearing(h, now, DefaultHorizonDays) {
				caseload.UpcomingHearings++
			}
		}
		caseloads = append(caseloads, caseload)
	}
	return caseloads, nil
}

// BuildDeadlineSummary aggregates all deadlines on active cases and lists
// the upcoming ones within the horizon
func BuildDeadlineSummary(db *gorm.DB, now time.Time, horizonDays int) (*models.DeadlineSummary, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	var deadlines []models.Deadline
	err := db.
		Joins("JOIN cases ON cases.id = deadlines.case_id").
		Where("cases.is_active = ?", true).
		Preload("Case.Lawyer").
		Order("due_date").
		Find(&deadlines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deadlines for summary: %w", err)
	}

	summary := &models.DeadlineSummary{
		TotalDeadlines:    len(deadlines),
		UpcomingDeadlines: []models.UpcomingDeadline{},
	}
	for i := range deadlines {
		d := &deadlines[i]
		if d.IsCompleted {
			summary.CompletedDeadlines++
		}
		if IsPendingDeadline(d, now) {
			summary.PendingDeadlines++
		}
		if IsOverdueDeadline(d, now) {
			summary.OverdueDeadlines++
		}
		if IsUpcomingDeadline(d, now, horizonDays) {
			summary.UpcomingDeadlines = append(summary.UpcomingDeadlines, models.UpcomingDeadline{
				DeadlineID:    d.ID,
				CaseNumber:    d.Case.CaseNumber,
				Description:   d.Description,
				DueDate:       d.DueDate,
				Priority:      d.Priority,
				DaysRemaining: DaysRemaining(d.DueDate, now),
				LawyerName:    d.Case.Lawyer.FullName(),
			})
		}
	}
	return summary, nil
}

// GetUpcomingHearings fetches scheduled hearings on active cases within the
// horizon, ordered by date then time-of-day
func GetUpcomingHearings(db *gorm.DB, now time.Time, horizonDays int) ([]models.Hearing, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	var hearings []models.Hearing
	err := db.
		Joins("JOIN cases ON cases.id = hearings.case_id").
		Where("cases.is_active = ?", true).
		Where("hearings.status = ?", models.HearingStatusScheduled).
		Where("hearings.date > ? AND hearings.date <= ?", now, now.AddDate(0, 0, horizonDays)).
		Preload("Court").
		Preload("Case.Lawyer").
		Order("hearings.date, hearings.time").
		Find(&hearings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming hearings: %w", err)
	}
	return hearings, nil
}

// GetCasesByStatus fetches active case summaries matching a status,
// case-insensitively, newest first
func GetCasesByStatus(db *gorm.DB, status string) ([]models.CaseSummary, error) {
	var cases []models.Case
	err := db.Where("is_active = ? AND LOWER(status) = ?", true, strings.ToLower(status)).
		Preload("Lawyer").
		Preload("Court").
		Order("created_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cases by status: %w", err)
	}
	return caseSummaries(cases), nil
}

// GetCasesByLawyer fetches active case summaries assigned to a lawyer
func GetCasesByLawyer(db *gorm.DB, lawyerID string) ([]models.CaseSummary, error) {
	if _, err := GetLawyerByID(db, lawyerID); err != nil {
		return nil, err
	}

	var cases []models.Case
	err := db.Where("is_active = ? AND lawyer_id = ?", true, lawyerID).
		Preload("Lawyer").
		Preload("Court").
		Order("created_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cases by lawyer: %w", err)
	}
	return caseSummaries(cases), nil
}

// GetCasesByCourt fetches active case summaries filed in a court
func GetCasesByCourt(db *gorm.DB, courtID string) ([]models.CaseSummary, error) {
	if _, err := GetCourtByID(db, courtID); err != nil {
		return nil, err
	}

	var cases []models.Case
	err := db.Where("is_active = ? AND court_id = ?", true, courtID).
		Preload("Lawyer").
		Preload("Court").
		Order("created_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cases by court: %w", err)
	}
	return caseSummaries(cases), nil
}

// BuildDashboardSummary computes the compact dashboard aggregate: case
// counts, hearings in the next 7 days, overdue and pending deadline counts
func BuildDashboardSummary(db *gorm.DB, now time.Time) (*models.DashboardSummary, error) {
	var cases []models.Case
	if err := db.Where("is_active = ?", true).Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cases for dashboard: %w", err)
	}

	summary := &models.DashboardSummary{
		TotalCases:  len(cases),
		GeneratedAt: now,
	}
	for i := range cases {
		switch cases[i].Status {
		case models.CaseStatusActive:
			summary.ActiveCases++
		case models.CaseStatusPending:
			summary.PendingCases++
		case models.CaseStatusClosed:
			summary.ClosedCases++
		}
	}

	hearings, err := GetUpcomingHearings(db, now, 7)
	if err != nil {
		return nil, err
	}
	summary.HearingsThisWeek = len(hearings)

	deadlineSummary, err := BuildDeadlineSummary(db, now, DefaultHorizonDays)
	if err != nil {
		return nil, err
	}
	summary.OverdueDeadlines = deadlineSummary.OverdueDeadlines
	summary.PendingDeadlines = deadlineSummary.PendingDeadlines

	return summary, nil
}

// buildCaseReportItem computes the per-case rollup. "Next" dates consider
// only future scheduled hearings and future incomplete deadlines; ties fall
// to store order.
func buildCaseReportItem(c *models.Case, now time.Time) models.CaseReportItem {
	item := models.CaseReportItem{
		CaseID:         c.ID,
		CaseNumber:     c.CaseNumber,
		Title:          c.Title,
		Status:         c.Status,
		LawyerName:     c.Lawyer.FullName(),
		CourtName:      c.Court.Name,
		DateFiled:      c.DateFiled,
		TotalHearings:  len(c.Hearings),
		TotalDeadlines: len(c.Deadlines),
	}

	for i := range c.Hearings {
		h := &c.Hearings[i]
		if h.Status == models.HearingStatusCompleted {
			item.CompletedHearings++
		}
		if h.Status == models.HearingStatusScheduled && h.Date.After(now) {
			if item.NextHearingDate == nil || h.Date.Before(*item.NextHearingDate) {
				date := h.Date
				item.NextHearingDate = &date
			}
		}
	}

	for i := range c.Deadlines {
		d := &c.Deadlines[i]
		if d.IsCompleted {
			item.CompletedDeadlines++
		}
		if IsOverdueDeadline(d, now) {
			item.OverdueDeadlines++
		}
		if !d.IsCompleted && d.DueDate.After(now) {
			if item.NextDeadlineDate == nil || d.DueDate.Before(*item.NextDeadlineDate) {
				due := d.DueDate
				item.NextDeadlineDate = &due
			}
		}
	}

	return item
}

func caseSummaries(cases []models.Case) []models.CaseSummary {
	summaries := make([]models.CaseSummary, 0, len(cases))
	for i := range cases {
		c := &cases[i]
		summaries = append(summaries, models.CaseSummary{
			CaseID:     c.ID,
			CaseNumber: c.CaseNumber,
			Title:      c.Title,
			Status:     c.Status,
			LawyerName: c.Lawyer.FullName(),
			CourtName:  c.Court.Name,
			DateFiled:  c.DateFiled,
		})
	}
	return summaries
}

func orDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
