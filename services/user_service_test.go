package services_test

import (
	"testing"

	"gocafe/requests"
	"gocafe/services"

	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	auth := services.NewAuthServiceWithDB(db)
	svc := services.NewUserServiceWithDB(db)

	user, err := auth.Register(testCtx, signupReq("amy"))
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(testCtx, user.ID, requests.UpdateProfileRequest{
		FirstName:   "Amelia",
		LastName:    "Lee",
		Email:       "amelia@example.com",
		Description: "coffee person",
		ImageURL:    "https://example.com/amelia.png",
	})
	require.NoError(t, err)
	require.Equal(t, "Amelia", updated.FirstName)
	require.Equal(t, "amelia@example.com", updated.Email)

	// Username and password survive a profile edit untouched.
	require.Equal(t, user.Username, updated.Username)
	require.Equal(t, user.HashedPassword, updated.HashedPassword)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserServiceWithDB(db)

	_, err := svc.UpdateProfile(testCtx, 999, requests.UpdateProfileRequest{
		FirstName: "Ghost",
		LastName:  "User",
		Email:     "ghost@example.com",
	})
	require.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserService_DeleteUser_RemovesRow(t *testing.T) {
	db := newTestDB(t)
	auth := services.NewAuthServiceWithDB(db)
	svc := services.NewUserServiceWithDB(db)

	user, err := auth.Register(testCtx, signupReq("amy"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(testCtx, user.ID))

	_, err = svc.GetUserByID(testCtx, user.ID)
	require.ErrorIs(t, err, services.ErrUserNotFound)
}
