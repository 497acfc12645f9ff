package redis

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/glowmedspa/medspa-backend/config"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// Init connects the cache client. No REDIS_ADDR means no cache; callers
// nil-check Client and fall through to the database.
func Init(cfg config.Settings) {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, service cache disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   0,
	})

	// Test connection
	if _, err := Client.Ping(Ctx).Result(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}
