// ba-dashboard/config/redis.go

package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis sets up the optional Redis client used to share the cleaned
// dataset between processes. Without REDIS_ADDR the dashboard still works,
// each process just keeps its own in-memory copy.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		slog.Warn("REDIS_ADDR is not set, dataset caching stays in-process only.")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("Could not connect to Redis", "error", err)
		RDB = nil
		return
	}

	slog.Info("Connected to Redis.")
}
