package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "cindral:dataset"

// RedisAdapter stores the snapshot as a single JSON value under one key.
type RedisAdapter struct {
	rdb *redis.Client
	key string
}

func NewRedisAdapter(rdb *redis.Client, key string) *RedisAdapter {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisAdapter{rdb: rdb, key: key}
}

func (a *RedisAdapter) Load(ctx context.Context) (*Dataset, error) {
	raw, err := a.rdb.Get(ctx, a.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", a.key, err)
	}
	d := new(Dataset)
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("parse snapshot at %s: %w", a.key, err)
	}
	d.ensureSlices()
	return d, nil
}

func (a *RedisAdapter) Save(ctx context.Context, d *Dataset) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := a.rdb.Set(ctx, a.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", a.key, err)
	}
	return nil
}
