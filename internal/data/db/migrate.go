package db

import (
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Identity
		&types.User{},

		// Content
		&types.Material{},
		&types.Video{},

		// Assessment
		&types.Question{},
		&types.TestAttempt{},
	)
}
