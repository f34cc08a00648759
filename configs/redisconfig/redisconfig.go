package redisconfig

import (
	"context"
	"time"

	"gocafe/configs/envconfig"
	"gocafe/configs/logconfig"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var client *redis.Client

// InitRedis connects when REDIS_ADDR is set. Without it the app falls
// back to in-memory sessions, which is fine for development.
func InitRedis() {
	addr := envconfig.String("REDIS_ADDR", "")
	if addr == "" {
		logconfig.SLog.Info("REDIS_ADDR not set, sessions will use in-memory storage")
		return
	}

	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: envconfig.String("REDIS_PASSWORD", ""),
		DB:       envconfig.Int("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		logconfig.Log.Fatal("Redis connection failed", zap.String("addr", addr), zap.Error(err))
	}

	client = c
	logconfig.SLog.Infow("Redis connected", "addr", addr)
}

func GetClient() *redis.Client {
	return client
}

func Close() {
	if client != nil {
		_ = client.Close()
	}
}
