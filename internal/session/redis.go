// internal/session/redis.go
package session

import (
	"context"
	"time"

	"brand-intake/internal/common/errors"
	"brand-intake/internal/intake"

	"github.com/redis/go-redis/v9"
)

// RedisStore saves wizard states as JSON under prefix+id. Every read and
// write renews the TTL.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Load(ctx context.Context, id string) (intake.State, error) {
	data, err := s.client.GetEx(ctx, s.key(id), s.ttl).Bytes()
	if err == redis.Nil {
		return nil, errors.NewSessionNotFoundError(id)
	}
	if err != nil {
		return nil, errors.NewSessionStoreFailedError("load", err)
	}

	state, err := intake.UnmarshalState(data)
	if err != nil {
		return nil, errors.NewSessionStoreFailedError("decode", err)
	}
	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, state intake.State) error {
	data, err := intake.MarshalState(state)
	if err != nil {
		return errors.NewSessionStoreFailedError("encode", err)
	}
	if err := s.client.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return errors.NewSessionStoreFailedError("save", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.NewSessionStoreFailedError("delete", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
