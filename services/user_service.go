package services

import (
	"context"

	"gocafe/configs/databaseconfig"
	"gocafe/configs/logconfig"
	"gocafe/models"
	"gocafe/repositories"
	"gocafe/requests"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const ErrProfileUpdateFailed ServiceError = "profile could not be updated"

type IUserService interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, req requests.UpdateProfileRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserService struct {
	repo repositories.IUserRepository
}

func NewUserService() IUserService {
	return NewUserServiceWithDB(databaseconfig.GetDB())
}

func NewUserServiceWithDB(db *gorm.DB) IUserService {
	return &UserService{repo: repositories.NewUserRepositoryWithDB(db)}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile overwrites the editable profile fields. Username,
// password, and the admin flag are untouchable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req requests.UpdateProfileRequest) (*models.User, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Description = req.Description
	user.ImageURL = req.ImageURL
	user.ApplyDefaults()

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		logconfig.Log.Error("Profile update failed",
			zap.Uint("user_id", userID),
			zap.Error(err))
		return nil, ErrProfileUpdateFailed
	}

	logconfig.Log.Info("Profile updated", zap.Uint("user_id", userID))
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.DeleteUser(ctx, id)
}

var _ IUserService = (*UserService)(nil)
