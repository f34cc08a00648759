package seeders

import (
	"gocafe/configs/logconfig"
	"gocafe/models"

	"gorm.io/gorm"
)

// SeedCafes loads a starter cafe set for fresh databases so the list page
// is not empty on first run.
func SeedCafes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Cafe{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cafes := []models.Cafe{
		{
			Name:        "Bernie's Cafe",
			Description: "Serving locals in Noe Valley.",
			URL:         "https://bernies.example.com/",
			Address:     "3966 24th St",
			CityCode:    "sf",
		},
		{
			Name:        "Perfect Day",
			Description: "Hangout spot for artists and writers.",
			URL:         "https://perfectday.example.com/",
			Address:     "1 Telegraph Ave",
			CityCode:    "berk",
		},
	}

	logconfig.SLog.Info("Seeding cafes...")

	for _, cafe := range cafes {
		cafe.ApplyDefaults()
		if err := db.Create(&cafe).Error; err != nil {
			logconfig.SLog.Error("Cafe seed failed: "+cafe.Name, err)
			return err
		}
	}

	logconfig.SLog.Info("Cafe seeding complete.")
	return nil
}
