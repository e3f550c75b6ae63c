// Package redisauth persists a messaging client's authentication state in
// Redis so a session survives restarts without re-pairing the device.
//
// A [Store] is opened per session namespace and exposes three things: the
// in-memory credential bundle ([Store.Creds]), a bulk accessor for keyed
// signal records ([Store.Keys]), and an explicit persistence point
// ([Store.SaveCreds]). Nothing is written back implicitly; the protocol
// client decides when state is worth saving.
//
// # Layouts
//
// [Open] uses the flat layout: one top-level key per logical field,
// "<namespace>:creds" for the bundle and "<namespace>:<category>-<id>" for
// records. [OpenHashed] stores the same fields inside the single hash
// "authState:<namespace>". Both layouts can coexist for the same namespace
// without touching each other's keys; each has a matching bulk removal
// helper ([DeleteByPattern], [DeleteHash]).
//
// # Concurrency
//
// The credential bundle is a plain mutable struct shared with the protocol
// client and carries no internal locking. Calls for one namespace are
// expected from one goroutine at a time; distinct namespaces are fully
// independent.
//
// # What this package must NOT do
//
//   - Retry or reconnect. Connection policy belongs to the caller; a failed
//     command surfaces one wrapped error.
//   - Guarantee cross-key atomicity for batched writes.
//   - Interpret credential contents beyond decoding them.
package redisauth
