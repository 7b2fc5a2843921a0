package locker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"car-rental-core/utils"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisLocker is a Locker shared by every process pointing at the same Redis
type RedisLocker struct {
	rs      *redsync.Redsync
	options redisLockerOptions
}

type redisLockerOptions struct {
	prefix        string
	expiry        time.Duration
	tries         int
	retryDelay    time.Duration
	renewInterval time.Duration
}

type RedisLockerOption func(*redisLockerOptions)

// WithRedisLockerPrefix sets the key prefix
func WithRedisLockerPrefix(prefix string) RedisLockerOption {
	return func(o *redisLockerOptions) {
		o.prefix = prefix
	}
}

// WithRedisLockerExpiry sets how long a lock survives a crashed holder
func WithRedisLockerExpiry(d time.Duration) RedisLockerOption {
	return func(o *redisLockerOptions) {
		o.expiry = d
	}
}

// WithRedisLockerTries sets how many acquisition attempts are made
func WithRedisLockerTries(n int) RedisLockerOption {
	return func(o *redisLockerOptions) {
		o.tries = n
	}
}

// WithRedisLockerRetryDelay sets the wait between attempts
func WithRedisLockerRetryDelay(d time.Duration) RedisLockerOption {
	return func(o *redisLockerOptions) {
		o.retryDelay = d
	}
}

// WithRedisLockerRenewInterval sets how often a held lock is extended.
// Zero means a third of the expiry.
func WithRedisLockerRenewInterval(d time.Duration) RedisLockerOption {
	return func(o *redisLockerOptions) {
		o.renewInterval = d
	}
}

// NewRedisLocker creates a RedisLocker on top of client
func NewRedisLocker(client *redis.Client, opts ...RedisLockerOption) *RedisLocker {
	options := redisLockerOptions{
		prefix:     "rental-lock:",
		expiry:     8 * time.Second,
		tries:      64,
		retryDelay: 25 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.tries <= 0 {
		options.tries = 1
	}
	if options.renewInterval <= 0 {
		options.renewInterval = options.expiry / 3
	}

	return &RedisLocker{
		rs:      redsync.New(goredis.NewPool(client)),
		options: options,
	}
}

// Lock implements Locker. The lock is extended every renew interval while
// held. If an extension fails the returned context is cancelled, so a holder
// that outlives its lock sees it before committing.
func (l *RedisLocker) Lock(ctx context.Context, key string) (context.Context, Unlock, error) {
	const op = "locker.RedisLocker.Lock"

	mutex := l.rs.NewMutex(
		l.options.prefix+key,
		redsync.WithExpiry(l.options.expiry),
		redsync.WithTries(l.options.tries),
		redsync.WithRetryDelay(l.options.retryDelay),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, nil, fmt.Errorf("%s: failed to acquire %s: %w", op, key, err)
	}

	lockCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.autoRenew(lockCtx, cancel, mutex, key)
	}()

	var once sync.Once
	return lockCtx, func() {
		once.Do(func() {
			cancel()
			wg.Wait()
			if ok, err := mutex.UnlockContext(context.Background()); err != nil || !ok {
				utils.Warn(op+": lock was lost before release", map[string]any{
					"key":   key,
					"error": fmt.Sprint(err),
				})
			}
		})
	}, nil
}

// autoRenew extends the mutex until ctx is done; a failed extension cancels ctx
func (l *RedisLocker) autoRenew(ctx context.Context, lost context.CancelFunc, mutex *redsync.Mutex, key string) {
	ticker := time.NewTicker(l.options.renewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ok, err := mutex.ExtendContext(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil || !ok {
				utils.Warn("locker.RedisLocker: lock lost while held", map[string]any{
					"key":   key,
					"error": fmt.Sprint(err),
				})
				lost()
				return
			}
		}
	}
}
