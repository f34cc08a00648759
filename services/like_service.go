package services

import (
	"context"

	"gocafe/configs/databaseconfig"
	"gocafe/configs/logconfig"
	"gocafe/models"
	"gocafe/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const ErrLikeFailed ServiceError = "like could not be saved"

type ILikeService interface {
	LikeCafe(ctx context.Context, userID, cafeID uint) error
	UnlikeCafe(ctx context.Context, userID, cafeID uint) error
	IsLiked(ctx context.Context, userID, cafeID uint) (bool, error)
	LikeCount(ctx context.Context, cafeID uint) (int64, error)
	LikedCafes(ctx context.Context, userID uint) ([]models.Cafe, error)
}

type LikeService struct {
	likes repositories.ILikeRepository
	cafes repositories.ICafeRepository
}

func NewLikeService() ILikeService {
	return NewLikeServiceWithDB(databaseconfig.GetDB())
}

func NewLikeServiceWithDB(db *gorm.DB) ILikeService {
	return &LikeService{
		likes: repositories.NewLikeRepositoryWithDB(db),
		cafes: repositories.NewCafeRepositoryWithDB(db),
	}
}

// LikeCafe records the pair after confirming the cafe exists; liking an
// already liked cafe stays a no-op.
func (s *LikeService) LikeCafe(ctx context.Context, userID, cafeID uint) error {
	if _, err := s.cafes.GetCafeByID(ctx, cafeID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrCafeNotFound
		}
		return err
	}

	if err := s.likes.AddLike(ctx, userID, cafeID); err != nil {
		return ErrLikeFailed
	}

	logconfig.Log.Info("Cafe liked",
		zap.Uint("user_id", userID),
		zap.Uint("cafe_id", cafeID))
	return nil
}

func (s *LikeService) UnlikeCafe(ctx context.Context, userID, cafeID uint) error {
	if err := s.likes.RemoveLike(ctx, userID, cafeID); err != nil {
		return ErrLikeFailed
	}
	return nil
}

func (s *LikeService) IsLiked(ctx context.Context, userID, cafeID uint) (bool, error) {
	return s.likes.HasLike(ctx, userID, cafeID)
}

func (s *LikeService) LikeCount(ctx context.Context, cafeID uint) (int64, error) {
	return s.likes.CountLikes(ctx, cafeID)
}

func (s *LikeService) LikedCafes(ctx context.Context, userID uint) ([]models.Cafe, error) {
	return s.likes.ListLikedCafes(ctx, userID)
}

var _ ILikeService = (*LikeService)(nil)
