package config

import (
	"os"
	"strings"
	"time"

	"github.com/personachat/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultSQLitePath = "conversations.db"

// OpenDatabase opens the conversation store and migrates its schema. The
// default is an embedded sqlite file; a DATABASE_URI with a postgres scheme
// selects PostgreSQL instead. Migration is additive only, the create is
// idempotent and never destructive.
func OpenDatabase() (*gorm.DB, error) {
	uri := os.Getenv("DATABASE_URI")
	if uri == "" {
		uri = defaultSQLitePath
	}

	var dial gorm.Dialector
	if strings.HasPrefix(uri, "postgres://") || strings.HasPrefix(uri, "postgresql://") {
		dial = postgres.Open(uri)
	} else {
		dial = sqlite.Open(uri)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.AutoMigrate(&models.ConversationTurn{}); err != nil {
		return nil, err
	}
	return db, nil
}
