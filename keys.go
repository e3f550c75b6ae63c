package redisauth

import (
	"context"
	"fmt"
	"time"

	"github.com/PGRjoystick/baileys-redis-auth/bufferjson"
	"github.com/PGRjoystick/baileys-redis-auth/internal/scheme"
)

// KeyStore reads and writes the keyed signal records a session accumulates:
// pre-keys, sessions, sender keys, app-state sync keys and versions. Records
// are opaque JSON values owned by the protocol client; the store only
// applies the binary-payload convention on the way in and out.
type KeyStore struct {
	store *Store
}

// Get fetches the requested identifiers of one category in a single bulk
// read. Identifiers with no stored record are omitted from the result, so
// the caller can distinguish absent from present without sentinel values.
//
//	Performance: 1 Redis command (MGET or HMGET).
func (k *KeyStore) Get(ctx context.Context, category string, ids []string) (map[string]any, error) {
	result := make(map[string]any, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	fields := make([]string, len(ids))
	for i, id := range ids {
		fields[i] = scheme.RecordField(category, id)
	}

	start := time.Now()
	values, err := k.store.scheme.ReadMany(ctx, fields)
	if err != nil {
		return nil, err
	}
	k.store.metrics.Observe(MetricReadLatency, time.Since(start))
	k.store.metrics.Add(MetricRecordsRequested, uint64(len(ids)))

	var found uint64
	for i, data := range values {
		if data == nil {
			continue
		}
		value, err := bufferjson.Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRecordCorrupt, err)
		}
		result[ids[i]] = value
		found++
	}
	k.store.metrics.Add(MetricRecordsFound, found)
	return result, nil
}

// Set applies a batch of record changes across categories in one pipelined
// dispatch. A nil value deletes the record. An empty batch costs no Redis
// round trip.
//
// Commands travel together but are not atomic across keys; a mid-batch
// failure can leave part of the batch applied. The protocol client treats
// records as idempotent upserts, so a retried batch converges.
func (k *KeyStore) Set(ctx context.Context, changes map[string]map[string]any) error {
	puts := make(map[string][]byte)
	var deletes []string

	for category, records := range changes {
		for id, value := range records {
			field := scheme.RecordField(category, id)
			if value == nil {
				deletes = append(deletes, field)
				continue
			}
			data, err := bufferjson.Marshal(value)
			if err != nil {
				return err
			}
			puts[field] = data
		}
	}

	if err := k.store.scheme.Apply(ctx, puts, deletes); err != nil {
		return err
	}
	k.store.metrics.Add(MetricRecordsWritten, uint64(len(puts)))
	k.store.metrics.Add(MetricRecordsDeleted, uint64(len(deletes)))
	return nil
}
