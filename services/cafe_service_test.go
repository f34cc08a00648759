package services_test

import (
	"testing"

	"gocafe/models"
	"gocafe/requests"
	"gocafe/services"

	"github.com/stretchr/testify/require"
)

func cafeReq(name, cityCode string) requests.CafeRequest {
	return requests.CafeRequest{
		Name:        name,
		Description: "good coffee",
		URL:         "https://cafe.example.com/",
		Address:     "1 Main St",
		CityCode:    cityCode,
		ImageURL:    "https://cafe.example.com/photo.jpg",
	}
}

func TestCafeService_Create_EchoesFields(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	svc := services.NewCafeServiceWithDB(db)

	req := cafeReq("Bernie's Cafe", "sf")
	cafe, err := svc.CreateCafe(testCtx, req)
	require.NoError(t, err)
	require.NotZero(t, cafe.ID)
	require.Equal(t, req.Name, cafe.Name)
	require.Equal(t, req.Description, cafe.Description)
	require.Equal(t, req.URL, cafe.URL)
	require.Equal(t, req.Address, cafe.Address)
	require.Equal(t, req.CityCode, cafe.CityCode)
	require.Equal(t, req.ImageURL, cafe.ImageURL)
}

func TestCafeService_Create_AppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	svc := services.NewCafeServiceWithDB(db)

	req := cafeReq("Bernie's Cafe", "sf")
	req.Description = ""
	req.ImageURL = ""

	cafe, err := svc.CreateCafe(testCtx, req)
	require.NoError(t, err)
	require.Equal(t, models.DefaultCafeDescription, cafe.Description)
	require.Equal(t, models.DefaultCafeImage, cafe.ImageURL)
}

func TestCafeService_Create_UnknownCityPersistsNothing(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCafeServiceWithDB(db)

	_, err := svc.CreateCafe(testCtx, cafeReq("Nowhere Cafe", "nope"))
	require.ErrorIs(t, err, services.ErrUnknownCity)

	var count int64
	require.NoError(t, db.Model(&models.Cafe{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCafeService_GetCityState(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	svc := services.NewCafeServiceWithDB(db)

	cafe, err := svc.CreateCafe(testCtx, cafeReq("Bernie's Cafe", "sf"))
	require.NoError(t, err)

	cityState, err := svc.GetCityState(testCtx, cafe)
	require.NoError(t, err)
	require.Equal(t, "San Francisco, CA", cityState)
}

func TestCafeService_Update_NameOnlyPreservesRest(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	svc := services.NewCafeServiceWithDB(db)

	created, err := svc.CreateCafe(testCtx, cafeReq("Old Name", "sf"))
	require.NoError(t, err)

	// The edit form is pre-filled from the loaded row, so an edit that
	// only touches the name resubmits everything else as loaded.
	req := requests.CafeRequest{
		Name:        "New Name",
		Description: created.Description,
		URL:         created.URL,
		Address:     created.Address,
		CityCode:    created.CityCode,
		ImageURL:    created.ImageURL,
	}
	updated, err := svc.UpdateCafe(testCtx, created.ID, req)
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.Name)
	require.Equal(t, created.Description, updated.Description)
	require.Equal(t, created.URL, updated.URL)
	require.Equal(t, created.Address, updated.Address)
	require.Equal(t, created.CityCode, updated.CityCode)
	require.Equal(t, created.ImageURL, updated.ImageURL)
}

func TestCafeService_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	svc := services.NewCafeServiceWithDB(db)

	_, err := svc.UpdateCafe(testCtx, 42, cafeReq("Ghost Cafe", "sf"))
	require.ErrorIs(t, err, services.ErrCafeNotFound)
}

func TestCafeService_Get_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCafeServiceWithDB(db)

	_, err := svc.GetCafe(testCtx, 42)
	require.ErrorIs(t, err, services.ErrCafeNotFound)
}

func TestCafeService_ListCityChoices(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	seedCity(t, db, "berk", "Berkeley", "CA")
	svc := services.NewCafeServiceWithDB(db)

	choices, err := svc.ListCityChoices(testCtx)
	require.NoError(t, err)
	require.Equal(t, []models.CityChoice{
		{Code: "berk", Name: "Berkeley"},
		{Code: "sf", Name: "San Francisco"},
	}, choices)
}
