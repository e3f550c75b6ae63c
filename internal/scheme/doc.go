// Package scheme maps logical auth-state fields onto a physical Redis
// layout. A logical field is either the credential bundle ([CredsField]) or
// a keyed record named by [RecordField]; how fields become Redis keys is the
// layout's decision alone.
//
// Two layouts exist: [Flat] stores every field as its own top-level key
// under the namespace prefix, [Hashed] stores all fields inside a single
// hash keyed by the namespace. Both layouts for the same namespace occupy
// disjoint parts of the keyspace and never see each other's data.
//
// # What this package must NOT do
//
//   - Encode or decode field payloads (callers hand it opaque bytes).
//   - Own the Redis client lifecycle.
//   - Retry failed commands; every failure wraps [ErrUnavailable] and
//     surfaces to the caller.
package scheme
