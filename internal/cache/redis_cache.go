package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"go-image-intensity/internal/logger"
	"go-image-intensity/pkg/models"
)

// RedisCache implements ResultCache on a Redis key-value store. Values are
// JSON-serialized AnalysisResults.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.AnalysisResult, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WithError(err).WithField("key", key).Warn("Cache read failed, treating as miss")
		}
		return nil, false
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		logger.WithError(err).WithField("key", key).Warn("Cached value is not deserializable, treating as miss")
		return nil, false
	}
	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, key string, result *models.AnalysisResult, ttl time.Duration) {
	data, err := json.Marshal(result)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("Failed to serialize result for caching")
		return
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"key": key,
			"ttl": ttl,
		}).Warn("Cache write failed")
	}
}
