package repositories_test

import (
	"testing"

	"gocafe/models"
	"gocafe/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCafeRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	repo := repositories.NewCafeRepositoryWithDB(db)

	cafe := &models.Cafe{
		Name:        "Bernie's Cafe",
		Description: "good coffee",
		URL:         "https://bernies.example.com/",
		Address:     "3966 24th St",
		CityCode:    "sf",
		ImageURL:    models.DefaultCafeImage,
	}
	require.NoError(t, repo.CreateCafe(testCtx, cafe))
	require.NotZero(t, cafe.ID)

	got, err := repo.GetCafeByID(testCtx, cafe.ID)
	require.NoError(t, err)
	require.Equal(t, "Bernie's Cafe", got.Name)
	require.Equal(t, "good coffee", got.Description)
	require.Equal(t, "https://bernies.example.com/", got.URL)
	require.Equal(t, "3966 24th St", got.Address)
	require.Equal(t, "sf", got.CityCode)
}

func TestCafeRepository_Create_UnknownCity(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCafeRepositoryWithDB(db)

	cafe := &models.Cafe{
		Name:        "Nowhere Cafe",
		Description: "x",
		URL:         "https://nowhere.example.com/",
		Address:     "0 Null St",
		CityCode:    "nope",
		ImageURL:    models.DefaultCafeImage,
	}
	err := repo.CreateCafe(testCtx, cafe)
	require.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	require.Zero(t, countRows(t, db, &models.Cafe{}))
}

func TestCafeRepository_List_OrderedByName(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	repo := repositories.NewCafeRepositoryWithDB(db)

	seedCafe(t, db, "Zeta Beans", "sf")
	seedCafe(t, db, "Alpha Roast", "sf")
	seedCafe(t, db, "Muddy Cup", "sf")

	cafes, err := repo.ListCafes(testCtx)
	require.NoError(t, err)
	require.Len(t, cafes, 3)
	require.Equal(t, "Alpha Roast", cafes[0].Name)
	require.Equal(t, "Muddy Cup", cafes[1].Name)
	require.Equal(t, "Zeta Beans", cafes[2].Name)
}

func TestCafeRepository_Get_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCafeRepositoryWithDB(db)

	_, err := repo.GetCafeByID(testCtx, 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCafeRepository_Update_PreservesUntouchedFields(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	repo := repositories.NewCafeRepositoryWithDB(db)

	cafe := seedCafe(t, db, "Old Name", "sf")

	loaded, err := repo.GetCafeByID(testCtx, cafe.ID)
	require.NoError(t, err)
	loaded.Name = "New Name"
	require.NoError(t, repo.UpdateCafe(testCtx, loaded))

	got, err := repo.GetCafeByID(testCtx, cafe.ID)
	require.NoError(t, err)
	require.Equal(t, "New Name", got.Name)
	require.Equal(t, cafe.Description, got.Description)
	require.Equal(t, cafe.URL, got.URL)
	require.Equal(t, cafe.Address, got.Address)
	require.Equal(t, cafe.CityCode, got.CityCode)
	require.Equal(t, cafe.ImageURL, got.ImageURL)
}

func TestCafeRepository_Update_UnknownCity(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	repo := repositories.NewCafeRepositoryWithDB(db)

	cafe := seedCafe(t, db, "Bernie's Cafe", "sf")
	cafe.CityCode = "nope"

	err := repo.UpdateCafe(testCtx, cafe)
	require.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	got, err := repo.GetCafeByID(testCtx, cafe.ID)
	require.NoError(t, err)
	require.Equal(t, "sf", got.CityCode)
}

func TestCafeRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	seedCity(t, db, "sf", "San Francisco", "CA")
	repo := repositories.NewCafeRepositoryWithDB(db)

	cafe := seedCafe(t, db, "Short Lived", "sf")
	require.NoError(t, repo.DeleteCafe(testCtx, cafe.ID))

	_, err := repo.GetCafeByID(testCtx, cafe.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.ErrorIs(t, repo.DeleteCafe(testCtx, cafe.ID), gorm.ErrRecordNotFound)
}
