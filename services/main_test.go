package services_test

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
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, databaseconfig.Migrate(db))
	return db
}

func seedCity(t *testing.T, db *gorm.DB, code, name, state string) {
	t.Helper()
	require.NoError(t, db.Create(&models.City{Code: code, Name: name, State: state}).Error)
}

var testCtx = context.Background()
