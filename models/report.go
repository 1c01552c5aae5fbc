package models

import "time"

// Report aggregates are computed on read and never persisted.

// CaseReport is the full report snapshot across all active cases
type CaseReport struct {
	TotalCases      int              `json:"total_cases"`
	ActiveCases     int              `json:"active_cases"`
	ClosedCases     int              `json:"closed_cases"`
	PendingCases    int              `json:"pending_cases"`
	Cases           []CaseReportItem `json:"cases"`
	LawyerCaseloads []LawyerCaseload `json:"lawyer_caseloads"`
	CourtCaseloads  []CourtCaseload  `json:"court_caseloads"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// CaseReportItem is the per-case rollup inside a CaseReport
type CaseReportItem struct {
	CaseID             string     `json:"case_id"`
	CaseNumber         string     `json:"case_number"`
	Title              string     `json:"title"`
	Status             string     `json:"status"`
	LawyerName         string     `json:"lawyer_name"`
	CourtName          string     `json:"court_name"`
	DateFiled          time.Time  `json:"date_filed"`
	TotalHearings      int        `json:"total_hearings"`
	CompletedHearings  int        `json:"completed_hearings"`
	TotalDeadlines     int        `json:"total_deadlines"`
	CompletedDeadlines int        `json:"completed_deadlines"`
	OverdueDeadlines   int        `json:"overdue_deadlines"`
	NextHearingDate    *time.Time `json:"next_hearing_date,omitempty"`
	NextDeadlineDate   *time.Time `json:"next_deadline_date,omitempty"`
}

// LawyerCaseload summarizes one lawyer's active cases, hearings and deadlines
type LawyerCaseload struct {
	LawyerID         string `json:"lawyer_id"`
	LawyerName       string `json:"lawyer_name"`
	Specialization   string `json:"specialization"`
	TotalCases       int    `json:"total_cases"`
	ActiveCases      int    `json:"active_cases"`
	ClosedCases      int    `json:"closed_cases"`
	UpcomingHearings int    `json:"upcoming_hearings"`
	OverdueDeadlines int    `json:"overdue_deadlines"`
}

// CourtCaseload summarizes one court's active cases and upcoming hearings
type CourtCaseload struct {
	CourtID          string `json:"court_id"`
	CourtName        string `json:"court_name"`
	CourtType        string `json:"court_type"`
	TotalCases       int    `json:"total_cases"`
	ActiveCases      int    `json:"active_cases"`
	UpcomingHearings int    `json:"upcoming_hearings"`
}

// DeadlineSummary covers all deadlines belonging to active cases
type DeadlineSummary struct {
	TotalDeadlines     int                `json:"total_deadlines"`
	CompletedDeadlines int                `json:"completed_deadlines"`
	PendingDeadlines   int                `json:"pending_deadlines"`
	OverdueDeadlines   int                `json:"overdue_deadlines"`
	UpcomingDeadlines  []UpcomingDeadline `json:"upcoming_deadlines"`
}

// UpcomingDeadline is one entry of the upcoming-deadline list.
// DaysRemaining is recomputed on every read.
type UpcomingDeadline struct {
	DeadlineID    string    `json:"deadline_id"`
	CaseNumber    string    `json:"case_number"`
	Description   string    `json:"description"`
	DueDate       time.Time `json:"due_date"`
	Priority      string    `json:"priority"`
	DaysRemaining int       `json:"days_remaining"`
	LawyerName    string    `json:"lawyer_name"`
}

// CaseSummary is the flat case shape used by list and filter endpoints
type CaseSummary struct {
	CaseID     string    `json:"case_id"`
	CaseNumber string    `json:"case_number"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	LawyerName string    `json:"lawyer_name"`
	CourtName  string    `json:"court_name"`
	DateFiled  time.Time `json:"date_filed"`
}

// DashboardSummary is the compact aggregate for the dashboard endpoint
type DashboardSummary struct {
	TotalCases       int       `json:"total_cases"`
	ActiveCases      int       `json:"active_cases"`
	PendingCases     int       `json:"pending_cases"`
	ClosedCases      int       `json:"closed_cases"`
	HearingsThisWeek int       `json:"hearings_this_week"`
	OverdueDeadlines int       `json:"overdue_deadlines"`
	PendingDeadlines int       `json:"pending_deadlines"`
	GeneratedAt      time.Time `json:"generated_at"`
}
