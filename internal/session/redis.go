package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as a hash whose fields are the session keys.
// Every write refreshes the expiry of the whole hash.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, prefix: "session:"}
}

func (s *RedisStore) Get(ctx context.Context, sid, key string, dst any) (bool, error) {
	data, err := s.client.HGet(ctx, s.prefix+sid, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load session %s/%s: %w", sid, key, err)
	}
	return true, decode(data, dst)
}

func (s *RedisStore) Set(ctx context.Context, sid, key string, value any) error {
	payload, err := encode(value)
	if err != nil {
		return err
	}

	hkey := s.prefix + sid
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, hkey, key, payload)
	pipe.Expire(ctx, hkey, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session %s/%s: %w", sid, key, err)
	}
	return nil
}
