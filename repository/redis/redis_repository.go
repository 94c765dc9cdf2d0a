package redis

import (
	"context"
	"encoding/json"
	"time"

	redisclient "github.com/sbmotors/dealership/cmd/redis"
)

// Repository is a thin cache over Redis. All methods degrade to no-ops when
// the client was never initialized, so a missing Redis only disables caching.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// GetJSON unmarshals a cached value into dest. The bool reports a cache hit;
// a missing key or unreachable Redis reads as a miss, not an error.
func (r *redis) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := r.Get(ctx, key)
	if err != nil || val == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redis) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	body, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.SetWithTTL(ctx, key, string(body), ttl)
}
