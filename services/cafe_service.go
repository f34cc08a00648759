package services

import (
	"context"
	"fmt"

	"gocafe/configs/databaseconfig"
	"gocafe/configs/logconfig"
	"gocafe/models"
	"gocafe/repositories"
	"gocafe/requests"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ErrCafeNotFound  ServiceError = "cafe not found"
	ErrUnknownCity   ServiceError = "select a known city"
	ErrDanglingCity  ServiceError = "cafe references a city that no longer exists"
	ErrCafeWriteFail ServiceError = "cafe could not be saved"
)

type ICafeService interface {
	ListCafes(ctx context.Context) ([]models.Cafe, error)
	GetCafe(ctx context.Context, id uint) (*models.Cafe, error)
	CreateCafe(ctx context.Context, req requests.CafeRequest) (*models.Cafe, error)
	UpdateCafe(ctx context.Context, id uint, req requests.CafeRequest) (*models.Cafe, error)
	DeleteCafe(ctx context.Context, id uint) error
	ListCityChoices(ctx context.Context) ([]models.CityChoice, error)
	GetCityState(ctx context.Context, cafe *models.Cafe) (string, error)
}

type CafeService struct {
	cafes  repositories.ICafeRepository
	cities repositories.ICityRepository
}

func NewCafeService() ICafeService {
	return NewCafeServiceWithDB(databaseconfig.GetDB())
}

func NewCafeServiceWithDB(db *gorm.DB) ICafeService {
	return &CafeService{
		cafes:  repositories.NewCafeRepositoryWithDB(db),
		cities: repositories.NewCityRepositoryWithDB(db),
	}
}

func (s *CafeService) ListCafes(ctx context.Context) ([]models.Cafe, error) {
	return s.cafes.ListCafes(ctx)
}

func (s *CafeService) GetCafe(ctx context.Context, id uint) (*models.Cafe, error) {
	cafe, err := s.cafes.GetCafeByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}
	return cafe, nil
}

// CreateCafe applies defaults, then persists; the store rejects a city
// code that does not resolve, so nothing is written on a bad reference.
func (s *CafeService) CreateCafe(ctx context.Context, req requests.CafeRequest) (*models.Cafe, error) {
	cafe := &models.Cafe{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		Address:     req.Address,
		CityCode:    req.CityCode,
		ImageURL:    req.ImageURL,
	}
	cafe.ApplyDefaults()

	if err := s.cafes.CreateCafe(ctx, cafe); err != nil {
		if err == gorm.ErrForeignKeyViolated {
			logconfig.Log.Warn("Cafe create with unknown city",
				zap.String("city_code", req.CityCode))
			return nil, ErrUnknownCity
		}
		return nil, ErrCafeWriteFail
	}

	logconfig.Log.Info("Cafe created",
		zap.Uint("cafe_id", cafe.ID),
		zap.String("name", cafe.Name))
	return cafe, nil
}

// UpdateCafe loads the existing row and overwrites the editable fields.
// Omitted optional fields fall back to their defaults; required fields
// were already enforced by the request validation.
func (s *CafeService) UpdateCafe(ctx context.Context, id uint, req requests.CafeRequest) (*models.Cafe, error) {
	cafe, err := s.cafes.GetCafeByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}

	cafe.Name = req.Name
	cafe.Description = req.Description
	cafe.URL = req.URL
	cafe.Address = req.Address
	cafe.CityCode = req.CityCode
	cafe.ImageURL = req.ImageURL
	cafe.ApplyDefaults()

	if err := s.cafes.UpdateCafe(ctx, cafe); err != nil {
		switch err {
		case gorm.ErrForeignKeyViolated:
			logconfig.Log.Warn("Cafe update with unknown city",
				zap.Uint("cafe_id", id),
				zap.String("city_code", req.CityCode))
			return nil, ErrUnknownCity
		case gorm.ErrRecordNotFound:
			return nil, ErrCafeNotFound
		default:
			return nil, ErrCafeWriteFail
		}
	}

	logconfig.Log.Info("Cafe updated", zap.Uint("cafe_id", cafe.ID))
	return cafe, nil
}

func (s *CafeService) DeleteCafe(ctx context.Context, id uint) error {
	if err := s.cafes.DeleteCafe(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrCafeNotFound
		}
		return err
	}
	return nil
}

func (s *CafeService) ListCityChoices(ctx context.Context) ([]models.CityChoice, error) {
	return s.cities.ListCityChoices(ctx)
}

// GetCityState renders "City, ST" for a cafe. A dangling city reference
// cannot happen while the integrity invariant holds, but it is reported
// rather than swallowed.
func (s *CafeService) GetCityState(ctx context.Context, cafe *models.Cafe) (string, error) {
	city, err := s.cities.GetCityByCode(ctx, cafe.CityCode)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			logconfig.Log.Error("Dangling city reference",
				zap.Uint("cafe_id", cafe.ID),
				zap.String("city_code", cafe.CityCode))
			return "", ErrDanglingCity
		}
		return "", err
	}
	return fmt.Sprintf("%s, %s", city.Name, city.State), nil
}

var _ ICafeService = (*CafeService)(nil)
