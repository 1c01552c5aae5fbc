package main

import (
	"log"

	"legal_case_api_go/config"
	"legal_case_api_go/db"
	"legal_case_api_go/models"
	"legal_case_api_go/services"
)

func main() {
	cfg := config.Load()

	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

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

	if err := services.SeedSampleData(db.DB); err != nil {
		log.Fatalf("Failed to seed sample data: %v", err)
	}

	log.Println("Sample data seeded")
}
