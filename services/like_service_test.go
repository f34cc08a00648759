package services_test

import (
	"testing"

	"gocafe/services"

	"github.com/stretchr/testify/require"
)

func setupLikeTest(t *testing.T) (services.ILikeService, uint, uint) {
	t.Helper()
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")

	auth := services.NewAuthServiceWithDB(db)
	user, err := auth.Register(testCtx, signupReq("amy"))
	require.NoError(t, err)

	cafes := services.NewCafeServiceWithDB(db)
	cafe, err := cafes.CreateCafe(testCtx, cafeReq("Bernie's Cafe", "sf"))
	require.NoError(t, err)

	return services.NewLikeServiceWithDB(db), user.ID, cafe.ID
}

func TestLikeService_LikeAndUnlike(t *testing.T) {
	svc, userID, cafeID := setupLikeTest(t)

	require.NoError(t, svc.LikeCafe(testCtx, userID, cafeID))

	liked, err := svc.IsLiked(testCtx, userID, cafeID)
	require.NoError(t, err)
	require.True(t, liked)

	count, err := svc.LikeCount(testCtx, cafeID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	require.NoError(t, svc.UnlikeCafe(testCtx, userID, cafeID))

	liked, err = svc.IsLiked(testCtx, userID, cafeID)
	require.NoError(t, err)
	require.False(t, liked)
}

func TestLikeService_Like_UnknownCafe(t *testing.T) {
	svc, userID, _ := setupLikeTest(t)

	err := svc.LikeCafe(testCtx, userID, 999)
	require.ErrorIs(t, err, services.ErrCafeNotFound)
}

func TestLikeService_LikedCafes(t *testing.T) {
	svc, userID, cafeID := setupLikeTest(t)

	require.NoError(t, svc.LikeCafe(testCtx, userID, cafeID))

	cafes, err := svc.LikedCafes(testCtx, userID)
	require.NoError(t, err)
	require.Len(t, cafes, 1)
	require.Equal(t, "Bernie's Cafe", cafes[0].Name)
}
