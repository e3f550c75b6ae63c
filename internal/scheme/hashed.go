package scheme

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Hashed persists every logical field inside one Redis hash keyed by the
// namespace. The whole session occupies a single key, which keeps the
// top-level keyspace flat no matter how many records a session accumulates.
type Hashed struct {
	redis redis.UniversalClient
	key   string
}

var _ Scheme = (*Hashed)(nil)

// NewHashed creates the hashed layout for a namespace.
func NewHashed(client redis.UniversalClient, namespace string) *Hashed {
	return &Hashed{redis: client, key: HashKey(namespace)}
}

func (h *Hashed) Name() string { return "hashed" }

func (h *Hashed) Read(ctx context.Context, field string) ([]byte, error) {
	data, err := h.redis.HGet(ctx, h.key, field).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, nil
}

func (h *Hashed) ReadMany(ctx context.Context, fields []string) ([][]byte, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	values, err := h.redis.HMGet(ctx, h.key, fields...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return rawValues(values), nil
}

func (h *Hashed) Write(ctx context.Context, field string, data []byte) error {
	if err := h.redis.HSet(ctx, h.key, field, data).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (h *Hashed) Apply(ctx context.Context, puts map[string][]byte, deletes []string) error {
	if len(puts) == 0 && len(deletes) == 0 {
		return nil
	}

	_, err := h.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for field, data := range puts {
			pipe.HSet(ctx, h.key, field, data)
		}
		if len(deletes) > 0 {
			pipe.HDel(ctx, h.key, deletes...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
