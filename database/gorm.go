package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the snapshot database. A DATABASE_URL environment variable
// selects Postgres; otherwise a local SQLite file is used, which is the
// default for a single-user deployment.
func Connect(sqlitePath string) (*gorm.DB, error) {
	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		dialector = postgres.Open(dbURL)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Single logical writer; a small pool is plenty
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate the snapshot table
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}

	log.Println("✅ Connected to snapshot database")
	return db, nil
}
