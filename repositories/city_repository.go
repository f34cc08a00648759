package repositories

import (
	"context"

	"gocafe/configs/databaseconfig"
	"gocafe/configs/logconfig"
	"gocafe/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ICityRepository interface {
	ListCityChoices(ctx context.Context) ([]models.CityChoice, error)
	GetCityByCode(ctx context.Context, code string) (*models.City, error)
	CityExists(ctx context.Context, code string) (bool, error)
}

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository() ICityRepository {
	return &CityRepository{db: databaseconfig.GetDB()}
}

func NewCityRepositoryWithDB(db *gorm.DB) ICityRepository {
	return &CityRepository{db: db}
}

// ListCityChoices returns the (code, name) pairs for the city select box.
func (r *CityRepository) ListCityChoices(ctx context.Context) ([]models.CityChoice, error) {
	var choices []models.CityChoice
	err := r.db.WithContext(ctx).
		Model(&models.City{}).
		Select("code", "name").
		Order("name ASC").
		Scan(&choices).Error
	if err != nil {
		logconfig.Log.Error("City choice query failed", zap.Error(err))
		return nil, err
	}
	return choices, nil
}

func (r *CityRepository) GetCityByCode(ctx context.Context, code string) (*models.City, error) {
	var city models.City
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&city).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logconfig.Log.Error("City query failed", zap.String("code", code), zap.Error(err))
		}
		return nil, err
	}
	return &city, nil
}

func (r *CityRepository) CityExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.City{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		logconfig.Log.Error("City existence query failed", zap.String("code", code), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

var _ ICityRepository = (*CityRepository)(nil)
