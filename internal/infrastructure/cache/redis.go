// Package cache wraps go-redis for the match listing cache and the per-job
// run lock.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"hiring-intel/internal/config"
	"hiring-intel/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultTTL     = 10 * time.Minute
	defaultLockTTL = 30 * time.Second
	pingTimeout    = 2 * time.Second
)

var ErrUnavailable = errors.New("redis unavailable")

// Redis degrades to a no-op when the server is unreachable at startup:
// reads miss, writes succeed silently and locks are never held. Errors after
// startup are returned and logged once.
type Redis struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration

	warned atomic.Bool
}

func NewRedis(cfg config.RedisConfig, log *zap.Logger) *Redis {
	log = logger.OrNop(log)
	if cfg.Disabled {
		log.Info("cache disabled by config")
		return newRedis(nil, cfg.TTL, log)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, bypassing cache", zap.String("addr", cfg.Addr()), zap.Error(err))
		_ = client.Close()
		return newRedis(nil, cfg.TTL, log)
	}
	return newRedis(client, cfg.TTL, log)
}

// NewRedisWithClient wraps an existing client without pinging it.
func NewRedisWithClient(client *redis.Client, ttl time.Duration, log *zap.Logger) *Redis {
	return newRedis(client, ttl, logger.OrNop(log))
}

func newRedis(client *redis.Client, ttl time.Duration, log *zap.Logger) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{client: client, logger: log, ttl: ttl}
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) Ping(ctx context.Context) error {
	if !r.Available() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

// fail logs the first runtime failure and passes err through.
func (r *Redis) fail(err error) error {
	if r.warned.CompareAndSwap(false, true) {
		r.logger.Warn("redis call failed", zap.Error(err))
	}
	return err
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, r.fail(err)
	case len(b) == 0:
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value for ttl, or the configured TTL when ttl is zero.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		return r.fail(err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if !r.Available() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return r.fail(err)
	}
	return nil
}

// SetIfNotExists reports false without error when redis is unavailable, so
// lock callers check Available first.
func (r *Redis) SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	ok, err := r.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, r.fail(err)
	}
	return ok, nil
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// DeleteIfValue removes key only while it still holds value, so an expired
// lock taken over by another run is left alone.
func (r *Redis) DeleteIfValue(ctx context.Context, key, value string) error {
	if !r.Available() {
		return nil
	}
	err := releaseScript.Run(ctx, r.client, []string{key}, value).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return r.fail(err)
	}
	return nil
}
