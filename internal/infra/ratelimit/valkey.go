package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

const window = time.Minute

type windowCounter interface {
	incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// Valkey is a fixed one-minute window shared by every replica through Valkey.
type Valkey struct {
	counter windowCounter
	limit   int64
	prefix  string
	now     func() time.Time
}

// NewValkey builds a shared limiter allowing requestsPerMinute+burst calls per window.
func NewValkey(client valkey.Client, prefix string, requestsPerMinute, burst int) *Valkey {
	if prefix == "" {
		prefix = "roast:ratelimit"
	}
	return &Valkey{
		counter: valkeyCounter{client: client},
		limit:   int64(requestsPerMinute + burst),
		prefix:  prefix,
		now:     time.Now,
	}
}

// Allow increments the current window counter for key.
func (l *Valkey) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().Unix() / int64(window/time.Second)
	count, err := l.counter.incr(ctx, fmt.Sprintf("%s:%s:%d", l.prefix, key, bucket), 2*window)
	if err != nil {
		return false, err
	}
	return count <= l.limit, nil
}

var _ Limiter = (*Valkey)(nil)

type valkeyCounter struct {
	client valkey.Client
}

func (c valkeyCounter) incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := c.client.Do(ctx, c.client.B().Incr().Key(key).Build()).AsInt64()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := c.client.Do(ctx, c.client.B().Expire().Key(key).Seconds(int64(ttl/time.Second)).Build()).Error(); err != nil {
			return 0, err
		}
	}
	return count, nil
}
