package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/kiosk/config"
	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/storage"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	catalogTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, catalogTTL time.Duration) *RedisCache {
	return NewFromClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogTTL,
	)
}

func NewFromClient(client *redis.Client, catalogTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, catalogTTL: catalogTTL}
}

// GetDestinations returns nil, nil on a cache miss.
func (c *RedisCache) GetDestinations(ctx context.Context) ([]domain.Destination, error) {
	data, err := c.client.Get(ctx, destinationsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var destinations []domain.Destination
	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (c *RedisCache) SetDestinations(ctx context.Context, destinations []domain.Destination) error {
	payload, err := json.Marshal(destinations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, destinationsKey(), payload, c.catalogTTL).Err()
}

// DeviceStore returns the key-value store of one kiosk device.
func (c *RedisCache) DeviceStore(deviceID string) storage.Store {
	return &deviceStore{client: c.client, deviceID: deviceID}
}

func (c *RedisCache) Factory() storage.Factory {
	return c.DeviceStore
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type deviceStore struct {
	client   *redis.Client
	deviceID string
}

func (s *deviceStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, deviceKey(s.deviceID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", storage.ErrNotFound
	}
	return v, err
}

func (s *deviceStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, deviceKey(s.deviceID, key), value, 0).Err()
}

func (s *deviceStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, deviceKey(s.deviceID, key)).Err()
}

func destinationsKey() string {
	return "cache:destinations"
}

func deviceKey(deviceID, key string) string {
	return fmt.Sprintf("kiosk:%s:%s", deviceID, key)
}
