package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/katalvlaran/lvmaze/floorplan"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix     = "lvmaze:maze:"
	defaultTTL        = 24 * time.Hour
	defaultLockExpiry = 2 * time.Minute
	defaultLockTries  = 64
)

// Redis is a Cache and Locker backed by a Redis server. Locks use redsync,
// so several processes generating the same order wait for the first one and
// then read its result.
type Redis struct {
	client     *redis.Client
	locker     *redsync.Redsync
	prefix     string
	ttl        time.Duration
	lockExpiry time.Duration
	lockTries  int
}

// RedisOption configures a Redis cache.
type RedisOption func(*Redis)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) { r.prefix = prefix }
}

// WithTTL sets how long entries live. Zero keeps them forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) { r.ttl = ttl }
}

// WithLockExpiry sets how long a generation lock survives without release.
func WithLockExpiry(d time.Duration) RedisOption {
	return func(r *Redis) { r.lockExpiry = d }
}

// WithLockTries sets how often Lock retries before giving up.
func WithLockTries(n int) RedisOption {
	return func(r *Redis) { r.lockTries = n }
}

// NewRedis wraps client.
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{
		client:     client,
		prefix:     defaultPrefix,
		ttl:        defaultTTL,
		lockExpiry: defaultLockExpiry,
		lockTries:  defaultLockTries,
	}
	for _, opt := range opts {
		opt(r)
	}
	pool := goredis.NewPool(client)
	r.locker = redsync.New(pool)
	return r
}

// Get implements Cache.
func (r *Redis) Get(ctx context.Context, key string) (*floorplan.Floorplan, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get %s: %w", key, err)
	}
	return decode(data)
}

// Put implements Cache.
func (r *Redis) Put(ctx context.Context, key string, fp *floorplan.Floorplan) error {
	data, err := encode(fp)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.prefix+key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

// Lock implements Locker.
func (r *Redis) Lock(ctx context.Context, key string) (func(context.Context) error, error) {
	mutex := r.locker.NewMutex(r.prefix+key+":lock",
		redsync.WithExpiry(r.lockExpiry),
		redsync.WithTries(r.lockTries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("cache: lock %s: %w", key, err)
	}
	return func(ctx context.Context) error {
		ok, err := mutex.UnlockContext(ctx)
		if err != nil {
			return fmt.Errorf("cache: unlock %s: %w", key, err)
		}
		if !ok {
			return ErrLockLost
		}
		return nil
	}, nil
}
