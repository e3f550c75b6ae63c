package redisauth

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/PGRjoystick/baileys-redis-auth/internal/scheme"
)

// deleteScanCount bounds each SCAN batch so large keyspaces are walked
// without a blocking KEYS call.
const deleteScanCount = 1000

// DeleteByPattern removes every key matching a glob-style pattern using a
// cursor-bounded scan and non-blocking UNLINK batches. Flat-layout sessions
// are purged with the pattern "<namespace>:*".
//
// Any command failure stops the walk and propagates; keys already unlinked
// stay deleted. A pattern matching nothing succeeds, so repeated calls are
// idempotent. This is an admin-path O(n) operation and must not be used in
// message hot paths.
func DeleteByPattern(ctx context.Context, client redis.UniversalClient, pattern string) error {
	var cursor uint64

	for {
		keys, next, err := client.Scan(ctx, cursor, pattern, deleteScanCount).Result()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
		if len(keys) > 0 {
			if err := client.Unlink(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// DeleteHash removes a hashed-layout session in one DEL of its single hash.
// Deleting a namespace that was never written is not an error.
func DeleteHash(ctx context.Context, client redis.UniversalClient, namespace string) error {
	if err := client.Del(ctx, scheme.HashKey(namespace)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
