// Package migration creates and updates the database schema from the
// persistence models.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/persistence/models"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"
)

// Run applies the schema for all persisted models.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.CommunityModel{},
		&models.PropertyModel{},
		&models.MaintenanceTicketModel{},
		&models.MaintenanceLogModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("database schema migrated")
	return nil
}
