// Package creds models the long-lived credential bundle a messaging client
// carries across restarts: the noise and identity key pairs, the signed
// pre-key, registration identifiers, and pairing metadata.
//
// [New] produces the same defaults the client generates on first pairing,
// so a store that finds no persisted bundle can hand back a usable fresh
// one. Key material is Curve25519; the signed pre-key signature uses the
// XEd25519 scheme ([Sign], [Verify]) so it verifies against the Curve25519
// identity key without a separate Ed25519 key pair.
//
// # Architecture boundaries
//
// This package owns key generation and the credential schema. It does NOT
// touch Redis, choose key names, or run the signal protocol. Sessions,
// ratchets, and message crypto belong to the protocol client.
package creds
