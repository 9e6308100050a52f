package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockPollInterval = 50 * time.Millisecond

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 2 * time.Second,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Acquire blocks until the lock on key is held or ctx ends. The lock expires
// after ttl even if release is never called. When redis is unavailable the
// lock is reported as held so callers degrade to unlocked operation.
func (c *Client) Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error) {
	noop := func() {}
	if c == nil || c.client == nil {
		return noop, nil
	}

	token := uuid.NewString()
	for {
		ok, err := c.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return noop, ctx.Err()
			}
			// fail safe: behave like an uncontended lock
			return noop, nil
		}
		if ok {
			return func() {
				// release must outlive a cancelled request context
				rctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = releaseScript.Run(rctx, c.client, []string{key}, token).Err()
			}, nil
		}

		timer := time.NewTimer(lockPollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return noop, ctx.Err()
		case <-timer.C:
		}
	}
}

// Ping reports whether redis answers.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connections.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
