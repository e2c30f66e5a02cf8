package seed

import (
	"directory/config"
	"directory/internal/logger"
	. "directory/internal/models"
	"directory/internal/storage"

	"gorm.io/gorm"
)

// Seed writes the default employee collection, skipping records that already
// exist, and marks the store as seeded so the runtime path does not seed
// again after the user empties the directory.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	for _, employee := range storage.DefaultEmployees() {
		var existing Employee
		if err := db.First(&existing, "id = ?", employee.ID).Error; err == nil {
			log.Info("Employee already exists", "id", employee.ID)
			continue
		}
		log.Info("Seeding employee", "id", employee.ID, "firstName", employee.FirstName)
		if err := db.Create(&employee).Error; err != nil {
			log.Er("failed to create employee", err, "id", employee.ID)
		}
	}

	err := db.Exec(`INSERT OR REPLACE INTO store_meta (key, value) VALUES ('seeded', 'true')`).Error
	if err != nil {
		return log.Err("failed to mark store as seeded", err)
	}

	return nil
}
