package sessionconfig

import (
	"context"
	"time"

	"gocafe/configs/logconfig"
	"gocafe/configs/redisconfig"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var store *session.Store

// SessionUserKey is the session field holding the authenticated user id.
const SessionUserKey = "user_id"

func InitSession() {
	cfg := session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:gocafe_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}

	if client := redisconfig.GetClient(); client != nil {
		cfg.Storage = &redisStorage{client: client}
		logconfig.SLog.Info("Session store backed by redis")
	}

	store = session.New(cfg)
}

func GetStore() *session.Store {
	return store
}

func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	return store.Get(c)
}

// redisStorage adapts the shared go-redis client to fiber.Storage.
type redisStorage struct {
	client *redis.Client
}

const storagePrefix = "gocafe:sess:"

func (s *redisStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), storagePrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}

func (s *redisStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), storagePrefix+key, val, exp).Err()
}

func (s *redisStorage) Delete(key string) error {
	return s.client.Del(context.Background(), storagePrefix+key).Err()
}

func (s *redisStorage) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, storagePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *redisStorage) Close() error {
	return nil
}
