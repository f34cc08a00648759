package repositories

import (
	"context"

	"gocafe/configs/databaseconfig"
	"gocafe/configs/logconfig"
	"gocafe/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uint) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository() IUserRepository {
	return &UserRepository{db: databaseconfig.GetDB()}
}

func NewUserRepositoryWithDB(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) findUser(query *gorm.DB, operation string, fields ...zap.Field) (*models.User, error) {
	var user models.User
	err := query.First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		fields = append(fields, zap.Error(err))
		logconfig.Log.Error(operation+" failed", fields...)
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts inside a transaction. Username uniqueness rides on
// the unique index, so two concurrent signups cannot both win; the loser
// sees gorm.ErrDuplicatedKey.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if err == gorm.ErrDuplicatedKey {
				return err
			}
			logconfig.Log.Error("User create failed",
				zap.String("username", user.Username),
				zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findUser(
		r.db.WithContext(ctx).Where("username = ?", username),
		"User query (username)",
		zap.String("username", username),
	)
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	return r.findUser(
		r.db.WithContext(ctx).Where("id = ?", id),
		"User query (ID)",
		zap.Uint("user_id", id),
	)
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).Save(user)
	if result.Error != nil {
		logconfig.Log.Error("User update failed",
			zap.Uint("user_id", user.ID),
			zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		logconfig.Log.Warn("User update matched no row", zap.Uint("user_id", user.ID))
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteUser removes the row; the likes foreign key cascades.
func (r *UserRepository) DeleteUser(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		logconfig.Log.Error("User delete failed", zap.Uint("user_id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var _ IUserRepository = (*UserRepository)(nil)
