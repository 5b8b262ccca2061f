package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"price-optimization-api/config"
)

// PredictionsChannel is the pub/sub channel served results are fanned
// out on for live subscribers.
const PredictionsChannel = "pricing:predictions"

// CacheService wraps redis for response caching and result fan-out. A
// nil service or one without a reachable redis degrades to a no-op, so
// the API keeps serving when redis is down.
type CacheService struct {
	client *redis.Client
}

// NewCacheService connects to redis. An unreachable redis is reported
// but the returned service is still usable as a disabled cache.
func NewCacheService(cfg config.RedisConfig) (*CacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return &CacheService{}, fmt.Errorf("redis ping failed: %w", err)
	}
	return &CacheService{client: client}, nil
}

func (s *CacheService) Available() bool {
	return s != nil && s.client != nil
}

// Get unmarshals the cached value for key into dest. The boolean
// reports whether the key was present.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !s.Available() {
		return false, nil
	}
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !s.Available() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Publish(ctx context.Context, channel string, message interface{}) error {
	if !s.Available() {
		return nil
	}
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return s.client.Publish(ctx, channel, data).Err()
}

func (s *CacheService) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	if !s.Available() {
		return nil
	}
	return s.client.Subscribe(ctx, channel)
}

func (s *CacheService) Close() error {
	if !s.Available() {
		return nil
	}
	return s.client.Close()
}
