package repositories

import (
	"context"

	"gocafe/configs/databaseconfig"
	"gocafe/configs/logconfig"
	"gocafe/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ICafeRepository interface {
	ListCafes(ctx context.Context) ([]models.Cafe, error)
	GetCafeByID(ctx context.Context, id uint) (*models.Cafe, error)
	CreateCafe(ctx context.Context, cafe *models.Cafe) error
	UpdateCafe(ctx context.Context, cafe *models.Cafe) error
	DeleteCafe(ctx context.Context, id uint) error
}

type CafeRepository struct {
	db *gorm.DB
}

func NewCafeRepository() ICafeRepository {
	return &CafeRepository{db: databaseconfig.GetDB()}
}

func NewCafeRepositoryWithDB(db *gorm.DB) ICafeRepository {
	return &CafeRepository{db: db}
}

// ListCafes returns every cafe ordered by name, case as stored.
func (r *CafeRepository) ListCafes(ctx context.Context) ([]models.Cafe, error) {
	var cafes []models.Cafe
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cafes).Error
	if err != nil {
		logconfig.Log.Error("Cafe list query failed", zap.Error(err))
		return nil, err
	}
	return cafes, nil
}

func (r *CafeRepository) GetCafeByID(ctx context.Context, id uint) (*models.Cafe, error) {
	var cafe models.Cafe
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cafe).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logconfig.Log.Error("Cafe query failed", zap.Uint("cafe_id", id), zap.Error(err))
		}
		return nil, err
	}
	return &cafe, nil
}

// CreateCafe persists a new cafe. The city reference is verified inside
// the same transaction as the insert; a missing city surfaces as
// gorm.ErrForeignKeyViolated and nothing is written.
func (r *CafeRepository) CreateCafe(ctx context.Context, cafe *models.Cafe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cityMustExist(tx, cafe.CityCode); err != nil {
			return err
		}
		if err := tx.Create(cafe).Error; err != nil {
			logconfig.Log.Error("Cafe create failed",
				zap.String("name", cafe.Name),
				zap.Error(err))
			return err
		}
		return nil
	})
}

// UpdateCafe overwrites a loaded cafe row under the same city check as
// CreateCafe.
func (r *CafeRepository) UpdateCafe(ctx context.Context, cafe *models.Cafe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cityMustExist(tx, cafe.CityCode); err != nil {
			return err
		}
		result := tx.Save(cafe)
		if result.Error != nil {
			logconfig.Log.Error("Cafe update failed",
				zap.Uint("cafe_id", cafe.ID),
				zap.Error(result.Error))
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteCafe removes the row; the likes foreign key cascades.
func (r *CafeRepository) DeleteCafe(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Cafe{}, id)
	if result.Error != nil {
		logconfig.Log.Error("Cafe delete failed", zap.Uint("cafe_id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func cityMustExist(tx *gorm.DB, code string) error {
	var count int64
	if err := tx.Model(&models.City{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrForeignKeyViolated
	}
	return nil
}

var _ ICafeRepository = (*CafeRepository)(nil)
