package scheme

import (
	"context"
	"errors"
)

// CredsField is the logical field name of the credential bundle.
const CredsField = "creds"

// ErrUnavailable wraps every failed Redis command issued by a layout.
var ErrUnavailable = errors.New("redis unavailable")

// Scheme is the physical layout strategy for one namespace. Implementations
// are stateless beyond the client and namespace and are safe for concurrent
// use.
type Scheme interface {
	// Name reports the layout name for diagnostics.
	Name() string

	// Read returns the stored payload for a logical field, or nil when the
	// field has never been written.
	Read(ctx context.Context, field string) ([]byte, error)

	// ReadMany returns stored payloads positionally; absent fields are nil.
	ReadMany(ctx context.Context, fields []string) ([][]byte, error)

	// Write stores a single logical field.
	Write(ctx context.Context, field string, data []byte) error

	// Apply dispatches writes and deletes as one pipelined batch. Commands
	// travel together but carry no cross-command atomicity; a mid-batch
	// failure can leave part of the batch applied.
	Apply(ctx context.Context, puts map[string][]byte, deletes []string) error
}

// RecordField builds the logical field name for a keyed record. The category
// is embedded so identifiers cannot collide across categories.
func RecordField(category, id string) string {
	return category + "-" + id
}

// FlatKey is the top-level Redis key for one logical field in the flat
// layout.
func FlatKey(namespace, field string) string {
	return namespace + ":" + field
}

// HashKey is the single Redis key holding every logical field in the hashed
// layout.
func HashKey(namespace string) string {
	return "authState:" + namespace
}

// rawValues normalizes an MGET or HMGET reply into positional byte slices,
// with nil marking absent fields.
func rawValues(values []interface{}) [][]byte {
	out := make([][]byte, len(values))
	for i, v := range values {
		switch t := v.(type) {
		case string:
			out[i] = []byte(t)
		case []byte:
			out[i] = t
		}
	}
	return out
}
