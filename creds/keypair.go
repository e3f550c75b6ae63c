package creds

import (
	"crypto/rand"

	"golang.org/x/crypto/curve25519"

	"github.com/PGRjoystick/baileys-redis-auth/bufferjson"
)

const (
	// KeySize is the byte length of Curve25519 public and private keys.
	KeySize = 32
	// SignatureSize is the byte length of an XEd25519 signature.
	SignatureSize = 64

	// pubKeyTypeDJB prefixes serialized public keys on the wire.
	pubKeyTypeDJB = 0x05
)

// KeyPair is a Curve25519 key pair.
type KeyPair struct {
	Public  bufferjson.Buffer `json:"public"`
	Private bufferjson.Buffer `json:"private"`
}

// NewKeyPair returns a fresh Curve25519 key pair.
// The private key is clamped per RFC 7748.
func NewKeyPair() (KeyPair, error) {
	priv := make([]byte, KeySize)
	if _, err := rand.Read(priv); err != nil {
		return KeyPair{}, err
	}
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64

	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{Public: pub, Private: priv}, nil
}

// SignedKeyPair is a pre-key pair whose serialized public key is signed by
// the identity key.
type SignedKeyPair struct {
	KeyPair   KeyPair           `json:"keyPair"`
	Signature bufferjson.Buffer `json:"signature"`
	KeyID     uint32            `json:"keyId"`
}

// NewSignedKeyPair generates a pre-key pair and signs its serialized public
// key with the identity private key.
func NewSignedKeyPair(identity KeyPair, keyID uint32) (SignedKeyPair, error) {
	pair, err := NewKeyPair()
	if err != nil {
		return SignedKeyPair{}, err
	}
	sig, err := Sign(identity.Private, SerializePubKey(pair.Public))
	if err != nil {
		return SignedKeyPair{}, err
	}
	return SignedKeyPair{KeyPair: pair, Signature: sig, KeyID: keyID}, nil
}

// SerializePubKey prefixes a raw Curve25519 public key with the DJB key type
// byte. Keys that already carry the prefix pass through unchanged.
func SerializePubKey(pub []byte) []byte {
	if len(pub) == KeySize+1 {
		return pub
	}
	out := make([]byte, 0, len(pub)+1)
	out = append(out, pubKeyTypeDJB)
	return append(out, pub...)
}
