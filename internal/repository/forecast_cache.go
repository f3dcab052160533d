package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bed_forecast/internal/models"

	"github.com/go-redis/redis/v8"
)

// kvStore is the slice of the redis client the cache needs.
type kvStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisForecastCache stores whole forecast sequences as JSON strings.
type RedisForecastCache struct {
	client kvStore
	ttl    time.Duration
}

func NewRedisForecastCache(client kvStore, ttl time.Duration) *RedisForecastCache {
	return &RedisForecastCache{client: client, ttl: ttl}
}

// RedisOptions mirrors the redis section of the service config.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient dials redis and checks the connection.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}
	return client, nil
}

// Get reports ok=false on a cache miss.
func (c *RedisForecastCache) Get(ctx context.Context, key string) ([]models.DailyForecast, bool, error) {
	str, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get forecast %s from redis: %w", key, err)
	}
	var days []models.DailyForecast
	if err := json.Unmarshal([]byte(str), &days); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached forecast %s: %w", key, err)
	}
	return days, true, nil
}

func (c *RedisForecastCache) Set(ctx context.Context, key string, days []models.DailyForecast) error {
	data, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("marshal forecast %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, string(data), c.ttl).Err(); err != nil {
		return fmt.Errorf("set forecast %s in redis: %w", key, err)
	}
	return nil
}
