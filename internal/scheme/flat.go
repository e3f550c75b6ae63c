package scheme

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Flat persists every logical field as its own top-level key under the
// namespace prefix. Reads over many fields use a single MGET; batches go
// through one pipeline.
type Flat struct {
	redis     redis.UniversalClient
	namespace string
}

var _ Scheme = (*Flat)(nil)

// NewFlat creates the flat layout for a namespace.
func NewFlat(client redis.UniversalClient, namespace string) *Flat {
	return &Flat{redis: client, namespace: namespace}
}

func (f *Flat) Name() string { return "flat" }

func (f *Flat) key(field string) string {
	return FlatKey(f.namespace, field)
}

func (f *Flat) Read(ctx context.Context, field string) ([]byte, error) {
	data, err := f.redis.Get(ctx, f.key(field)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, nil
}

func (f *Flat) ReadMany(ctx context.Context, fields []string) ([][]byte, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	keys := make([]string, len(fields))
	for i, field := range fields {
		keys[i] = f.key(field)
	}

	values, err := f.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return rawValues(values), nil
}

func (f *Flat) Write(ctx context.Context, field string, data []byte) error {
	if err := f.redis.Set(ctx, f.key(field), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (f *Flat) Apply(ctx context.Context, puts map[string][]byte, deletes []string) error {
	if len(puts) == 0 && len(deletes) == 0 {
		return nil
	}

	_, err := f.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for field, data := range puts {
			pipe.Set(ctx, f.key(field), data, 0)
		}
		if len(deletes) > 0 {
			keys := make([]string, len(deletes))
			for i, field := range deletes {
				keys[i] = f.key(field)
			}
			pipe.Del(ctx, keys...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
