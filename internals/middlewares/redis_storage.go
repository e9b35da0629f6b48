package middlewares

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const limiterKeyPrefix = "csms:limiter:"

// RedisStorage memenuhi fiber.Storage supaya counter rate limit
// dibagi antar instance.
type RedisStorage struct {
	Client *redis.Client
	Ctx    context.Context
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{Client: client, Ctx: context.Background()}
}

// NewRedisStorageFromURL parse REDIS_URL lalu ping sekali.
func NewRedisStorageFromURL(url string) (*RedisStorage, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	s := NewRedisStorage(redis.NewClient(opts))

	ctx, cancel := context.WithTimeout(s.Ctx, 3*time.Second)
	defer cancel()
	if err := s.Client.Ping(ctx).Err(); err != nil {
		_ = s.Client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return s, nil
}

func (s *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.Client.Get(s.Ctx, limiterKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	return s.Client.Set(s.Ctx, limiterKeyPrefix+key, val, exp).Err()
}

func (s *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return s.Client.Del(s.Ctx, limiterKeyPrefix+key).Err()
}

// Reset hanya menghapus key milik limiter, bukan FLUSHDB.
func (s *RedisStorage) Reset() error {
	iter := s.Client.Scan(s.Ctx, 0, limiterKeyPrefix+"*", 100).Iterator()
	for iter.Next(s.Ctx) {
		if err := s.Client.Del(s.Ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *RedisStorage) Close() error {
	return s.Client.Close()
}
