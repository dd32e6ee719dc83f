package database

import (
	"fmt"

	"github.com/gdg-garage/hotel-web/internal/config"
	"github.com/gdg-garage/hotel-web/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the sqlite database at cfg.DatabasePath and migrates the
// session table.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DatabasePath, err)
	}

	if err := db.AutoMigrate(&models.SessionEntry{}); err != nil {
		return nil, fmt.Errorf("migrate session entries: %w", err)
	}

	return db, nil
}
