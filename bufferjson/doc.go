// Package bufferjson implements the JSON convention the messaging client
// uses for binary payloads inside persisted auth state.
//
// # Wire format
//
// Binary values are stored as {"type":"Buffer","data":"<base64>"}. The
// decoder additionally accepts the numeric-array payload and the
// {"buffer":true} marker written by older client versions, so state
// persisted before an upgrade stays readable. Encoding always produces
// the base64 form.
//
// # Architecture boundaries
//
// This package owns the codec only. It does NOT know Redis key names,
// store layouts, or the credential schema. Callers hand it opaque value
// trees or typed destinations.
package bufferjson
