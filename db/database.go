package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared handle used by services, handlers and the reminder job.
var DB *gorm.DB

// Initialize opens the sqlite store. WAL journaling lets report reads run
// alongside the reminder job's writes; foreign keys back the CASCADE
// constraints on hearings, deadlines and case parties.
func Initialize(dbPath, environment string) error {
	level := logger.Info
	if environment == "production" {
		level = logger.Warn
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath+"?_journal_mode=WAL&_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return fmt.Errorf("failed to open database at %s: %w", dbPath, err)
	}

	log.Printf("Database ready at %s (WAL, foreign keys on)", dbPath)
	return nil
}

// AutoMigrate applies the schema for the given models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	if err := DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the underlying connection
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}
