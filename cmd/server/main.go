package main

import (
	"log"
	"time"

	"legal_case_api_go/config"
	"legal_case_api_go/db"
	"legal_case_api_go/handlers"
	"legal_case_api_go/models"
	"legal_case_api_go/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Lawyer{},
		&models.Court{},
		&models.Party{},
		&models.Case{},
		&models.CaseParty{},
		&models.Hearing{},
		&models.Deadline{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.Validator = handlers.NewRequestValidator()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	api := e.Group("/api")

	// Lawyers
	api.GET("/lawyers", handlers.GetLawyersHandler)
	api.GET("/lawyers/:id", handlers.GetLawyerHandler)
	api.POST("/lawyers", handlers.CreateLawyerHandler)
	api.PUT("/lawyers/:id", handlers.UpdateLawyerHandler)
	api.DELETE("/lawyers/:id", handlers.DeactivateLawyerHandler)

	// Courts
	api.GET("/courts", handlers.GetCourtsHandler)
	api.GET("/courts/:id", handlers.GetCourtHandler)
	api.POST("/courts", handlers.CreateCourtHandler)
	api.PUT("/courts/:id", handlers.UpdateCourtHandler)
	api.DELETE("/courts/:id", handlers.DeactivateCourtHandler)

	// Parties
	api.GET("/parties", handlers.GetPartiesHandler)
	api.GET("/parties/:id", handlers.GetPartyHandler)
	api.GET("/parties/:id/cases", handlers.GetPartyCasesHandler)
	api.POST("/parties", handlers.CreatePartyHandler)
	api.PUT("/parties/:id", handlers.UpdatePartyHandler)
	api.DELETE("/parties/:id", handlers.DeactivatePartyHandler)

	// Cases
	api.GET("/cases", handlers.GetCasesHandler)
	api.GET("/cases/:id", handlers.GetCaseHandler)
	api.POST("/cases", handlers.CreateCaseHandler)
	api.PUT("/cases/:id", handlers.UpdateCaseHandler)
	api.DELETE("/cases/:id", handlers.DeactivateCaseHandler)
	api.POST("/cases/:id/parties", handlers.AttachPartyHandler)
	api.DELETE("/cases/:id/parties/:partyId", handlers.DetachPartyHandler)

	// Hearings (scoped to a case)
	api.POST("/cases/:id/hearings", handlers.AddHearingHandler)
	api.PUT("/cases/:id/hearings/:hearingId", handlers.UpdateHearingHandler)
	api.DELETE("/cases/:id/hearings/:hearingId", handlers.DeleteHearingHandler)

	// Deadlines (scoped to a case)
	api.POST("/cases/:id/deadlines", handlers.AddDeadlineHandler)
	api.PUT("/cases/:id/deadlines/:deadlineId", handlers.UpdateDeadlineHandler)
	api.PUT("/cases/:id/deadlines/:deadlineId/complete", handlers.CompleteDeadlineHandler)
	api.DELETE("/cases/:id/deadlines/:deadlineId", handlers.DeleteDeadlineHandler)

	// Deadline listing across cases; the overdue list lives under reports
	api.GET("/deadlines", handlers.GetDeadlinesHandler)

	// Reports
	api.GET("/reports", handlers.GetCaseReportHandler)
	api.GET("/reports/lawyers", handlers.GetLawyerCaseloadsHandler)
	api.GET("/reports/courts", handlers.GetCourtCaseloadsHandler)
	api.GET("/reports/deadlines", handlers.GetDeadlineSummaryHandler)
	api.GET("/reports/deadlines/overdue", handlers.GetOverdueDeadlinesHandler)
	api.GET("/reports/hearings/upcoming", handlers.GetUpcomingHearingsHandler)
	api.GET("/reports/cases/status/:status", handlers.GetCasesByStatusHandler)
	api.GET("/reports/cases/lawyer/:id", handlers.GetLawyerReportHandler)
	api.GET("/reports/cases/court/:id", handlers.GetCourtReportHandler)
	api.GET("/reports/export", handlers.ExportCaseReportHandler)

	// Dashboard
	api.GET("/dashboard", handlers.GetDashboardHandler)

	// Start deadline reminder job (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			jobs.SendDeadlineReminders(db.DB, cfg)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
