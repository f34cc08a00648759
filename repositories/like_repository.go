package repositories

import (
	"context"

	"gocafe/configs/databaseconfig"
	"gocafe/configs/logconfig"
	"gocafe/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ILikeRepository interface {
	AddLike(ctx context.Context, userID, cafeID uint) error
	RemoveLike(ctx context.Context, userID, cafeID uint) error
	HasLike(ctx context.Context, userID, cafeID uint) (bool, error)
	CountLikes(ctx context.Context, cafeID uint) (int64, error)
	ListLikedCafes(ctx context.Context, userID uint) ([]models.Cafe, error)
}

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository() ILikeRepository {
	return &LikeRepository{db: databaseconfig.GetDB()}
}

func NewLikeRepositoryWithDB(db *gorm.DB) ILikeRepository {
	return &LikeRepository{db: db}
}

// AddLike is idempotent: re-liking an already liked cafe is a no-op, the
// composite primary key swallows the duplicate.
func (r *LikeRepository) AddLike(ctx context.Context, userID, cafeID uint) error {
	like := models.Like{UserID: userID, CafeID: cafeID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	if err != nil {
		logconfig.Log.Error("Like create failed",
			zap.Uint("user_id", userID),
			zap.Uint("cafe_id", cafeID),
			zap.Error(err))
		return err
	}
	return nil
}

// RemoveLike is a no-op when the pair does not exist.
func (r *LikeRepository) RemoveLike(ctx context.Context, userID, cafeID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_liking = ? AND cafe_liked = ?", userID, cafeID).
		Delete(&models.Like{}).Error
	if err != nil {
		logconfig.Log.Error("Like delete failed",
			zap.Uint("user_id", userID),
			zap.Uint("cafe_id", cafeID),
			zap.Error(err))
		return err
	}
	return nil
}

func (r *LikeRepository) HasLike(ctx context.Context, userID, cafeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_liking = ? AND cafe_liked = ?", userID, cafeID).
		Count(&count).Error
	if err != nil {
		logconfig.Log.Error("Like lookup failed", zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

func (r *LikeRepository) CountLikes(ctx context.Context, cafeID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("cafe_liked = ?", cafeID).
		Count(&count).Error
	if err != nil {
		logconfig.Log.Error("Like count failed", zap.Uint("cafe_id", cafeID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// ListLikedCafes joins likes back to cafes instead of traversing a live
// object graph; results come back in cafe name order.
func (r *LikeRepository) ListLikedCafes(ctx context.Context, userID uint) ([]models.Cafe, error) {
	var cafes []models.Cafe
	err := r.db.WithContext(ctx).
		Model(&models.Cafe{}).
		Joins("JOIN likes ON likes.cafe_liked = cafes.id").
		Where("likes.user_liking = ?", userID).
		Order("cafes.name ASC").
		Find(&cafes).Error
	if err != nil {
		logconfig.Log.Error("Liked cafe query failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return cafes, nil
}

var _ ILikeRepository = (*LikeRepository)(nil)
