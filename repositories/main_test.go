package repositories_test

import (
	"context"
	"testing"

	"gocafe/configs/databaseconfig"
	"gocafe/configs/logconfig"
	"gocafe/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with foreign keys on, so
// the cascade behavior under test is the real constraint, not a mock.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if logconfig.Log == nil {
		logconfig.InitLogger()
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, one in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, databaseconfig.Migrate(db))
	return db
}

func seedCity(t *testing.T, db *gorm.DB, code, name, state string) {
	t.Helper()
	require.NoError(t, db.Create(&models.City{Code: code, Name: name, State: state}).Error)
}

func seedCafe(t *testing.T, db *gorm.DB, name, cityCode string) *models.Cafe {
	t.Helper()
	cafe := &models.Cafe{
		Name:        name,
		Description: "a cafe",
		URL:         "https://cafe.example.com/",
		Address:     "1 Main St",
		CityCode:    cityCode,
		ImageURL:    models.DefaultCafeImage,
	}
	require.NoError(t, db.Create(cafe).Error)
	return cafe
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		FirstName:      "Test",
		LastName:       "User",
		Description:    models.DefaultUserDescription,
		ImageURL:       models.DefaultUserImage,
		HashedPassword: "$2a$10$notarealdigestnotarealdigestnotarealdigestabcdefg",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

var testCtx = context.Background()
