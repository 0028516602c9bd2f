package database

import (
	"context"
	"log/slog"
	"time"

	"bookreview/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the redis connection used by the rate limiters. Returns
// nil when no REDIS_URL is configured; callers treat a nil client as
// "limiting disabled".
func ConnectRedis(cfg *config.Config, logger *slog.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set, redis-backed rate limiting disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error("invalid REDIS_URL, rate limiting disabled", "error", err)
		return nil
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("redis unreachable, rate limiting disabled", "error", err)
		client.Close()
		return nil
	}

	logger.Info("Connected to redis successfully")
	return client
}
