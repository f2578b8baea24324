package settings

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "github.com/amarasa/lead-shield/internal/domain/errors"
	"github.com/amarasa/lead-shield/internal/infrastructure/config"
)

// redisStore implements Store backed by Redis
type redisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore creates a Redis-backed settings store with the given configuration
func NewRedisStore(cfg *config.RedisConfig, logger *zap.Logger) (Store, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("redis config is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.URL,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("redis settings store initialized",
		zap.String("addr", cfg.URL),
		zap.Int("db", cfg.DB))

	return &redisStore{
		client: client,
		logger: logger,
	}, nil
}

// GetString retrieves a string setting; missing keys read as empty
func (r *redisStore) GetString(ctx context.Context, key string) (string, error) {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		r.logger.Error("redis get failed", zap.String("key", key), zap.Error(err))
		return "", apperrors.Wrap(err, "redis get failed")
	}

	return result, nil
}

// GetBool retrieves a boolean setting; missing keys read as false
func (r *redisStore) GetBool(ctx context.Context, key string) (bool, error) {
	result, err := r.GetString(ctx, key)
	if err != nil {
		return false, err
	}

	return result == "1" || result == "true", nil
}

// SetBool stores a boolean setting with no expiry
func (r *redisStore) SetBool(ctx context.Context, key string, value bool) error {
	stored := "0"
	if value {
		stored = "1"
	}

	if err := r.client.Set(ctx, key, stored, 0).Err(); err != nil {
		r.logger.Error("redis set failed",
			zap.String("key", key),
			zap.Bool("value", value),
			zap.Error(err))
		return apperrors.Wrap(err, "redis set failed")
	}

	return nil
}
