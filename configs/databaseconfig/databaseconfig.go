package databaseconfig

import (
	"gocafe/configs/envconfig"
	"gocafe/configs/logconfig"
	"gocafe/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

const defaultDSN = "host=localhost user=postgres password=postgres dbname=gocafe port=5432 sslmode=disable"

// InitDB opens the postgres connection and migrates the schema.
// TranslateError is on so unique violations surface as gorm.ErrDuplicatedKey.
func InitDB() {
	dsn := envconfig.String("DATABASE_URL", defaultDSN)

	logLevel := gormlogger.Warn
	if !envconfig.IsProd() {
		logLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		logconfig.Log.Fatal("Database connection failed", zap.Error(err))
	}

	if err := Migrate(conn); err != nil {
		logconfig.Log.Fatal("Database migration failed", zap.Error(err))
	}

	db = conn
	logconfig.SLog.Infow("Database connected", "dsn_default", dsn == defaultDSN)
}

// Migrate creates the four tables and their constraints.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.City{},
		&models.Cafe{},
		&models.User{},
		&models.Like{},
	)
}

func GetDB() *gorm.DB {
	return db
}

func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		logconfig.Log.Warn("Could not get underlying sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logconfig.Log.Warn("Database close failed", zap.Error(err))
	}
}
