package logconfig

import (
	"gocafe/configs/envconfig"

	"go.uber.org/zap"
)

var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

func InitLogger() {
	var err error
	if envconfig.IsProd() {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("logger could not be initialized: " + err.Error())
	}
	SLog = Log.Sugar()
}

func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
