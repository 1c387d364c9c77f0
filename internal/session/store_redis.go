package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Credential keys, scoped per device:
	// session:{device_id}:token -> opaque session token
	// session:{device_id}:role  -> role string
	keyToken = "session:%s:token"
	keyRole  = "session:%s:role"
)

// RedisStore keeps the two credential keys of one device in Redis.
type RedisStore struct {
	rdb      *redis.Client
	deviceID string
}

func NewRedisStore(rdb *redis.Client, deviceID string) *RedisStore {
	return &RedisStore{rdb: rdb, deviceID: deviceID}
}

// NewRedisFactory returns a Factory producing device-scoped stores over a
// shared client.
func NewRedisFactory(rdb *redis.Client) Factory {
	return func(deviceID string) Store {
		return NewRedisStore(rdb, deviceID)
	}
}

func (s *RedisStore) tokenKey() string { return fmt.Sprintf(keyToken, s.deviceID) }
func (s *RedisStore) roleKey() string  { return fmt.Sprintf(keyRole, s.deviceID) }

func (s *RedisStore) Save(ctx context.Context, token string, role Role) error {
	// MSet writes both keys in one round trip so a partial credential is
	// never persisted.
	if err := s.rdb.MSet(ctx, s.tokenKey(), token, s.roleKey(), string(role)).Err(); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (string, Role, bool, error) {
	vals, err := s.rdb.MGet(ctx, s.tokenKey(), s.roleKey()).Result()
	if err != nil {
		return "", RoleNone, false, fmt.Errorf("load credentials: %w", err)
	}

	token, _ := vals[0].(string)
	roleStr, _ := vals[1].(string)
	if token == "" {
		return "", RoleNone, false, nil
	}
	return token, Role(roleStr), true, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.tokenKey(), s.roleKey()).Err(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
