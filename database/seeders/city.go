package seeders

import (
	"gocafe/configs/logconfig"
	"gocafe/models"

	"gorm.io/gorm"
)

// SeedCities loads the city reference rows. Cities are immutable and have
// no admin surface, so an already-populated table is left alone.
func SeedCities(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.City{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cities := []models.City{
		{Code: "sf", Name: "San Francisco", State: "CA"},
		{Code: "berk", Name: "Berkeley", State: "CA"},
		{Code: "oak", Name: "Oakland", State: "CA"},
		{Code: "la", Name: "Los Angeles", State: "CA"},
		{Code: "pdx", Name: "Portland", State: "OR"},
		{Code: "sea", Name: "Seattle", State: "WA"},
	}

	logconfig.SLog.Info("Seeding cities...")

	for _, city := range cities {
		if err := db.Create(&city).Error; err != nil {
			logconfig.SLog.Error("City seed failed: "+city.Code, err)
			return err
		}
	}

	logconfig.SLog.Info("City seeding complete.")
	return nil
}
