package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/session"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/user"
)

// RunMigrations runs all database migrations
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&user.User{}, &session.Session{}); err != nil {
		return fmt.Errorf("failed to make migrations: %w", err)
	}
	return nil
}
