package creds

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"errors"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// signPrefix domain-separates the signature nonce hash from plain Ed25519.
var signPrefix = [32]byte{
	0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// Sign produces an XEd25519 signature over message with a Curve25519
// private key. The sign bit of the derived Edwards public key travels in
// the top bit of the last signature byte, which is how signed pre-keys are
// validated across the messaging ecosystem.
func Sign(privateKey, message []byte) ([]byte, error) {
	if len(privateKey) != KeySize {
		return nil, errors.New("private key must be 32 bytes")
	}

	a, err := edwards25519.NewScalar().SetBytesWithClamping(privateKey)
	if err != nil {
		return nil, err
	}
	edPub := new(edwards25519.Point).ScalarBaseMult(a).Bytes()
	signBit := edPub[31] & 0x80

	var random [64]byte
	if _, err := rand.Read(random[:]); err != nil {
		return nil, err
	}

	h := sha512.New()
	h.Write(signPrefix[:])
	h.Write(privateKey)
	h.Write(message)
	h.Write(random[:])
	r, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, err
	}
	encodedR := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	h.Reset()
	h.Write(encodedR)
	h.Write(edPub)
	h.Write(message)
	k, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, err
	}

	s := edwards25519.NewScalar().MultiplyAdd(k, a, r)

	sig := make([]byte, SignatureSize)
	copy(sig[:32], encodedR)
	copy(sig[32:], s.Bytes())
	sig[63] |= signBit
	return sig, nil
}

// Verify checks an XEd25519 signature against a Curve25519 public key,
// raw or in serialized form. The Montgomery key is mapped to its Edwards
// equivalent with the sign bit recovered from the signature, then checked
// as a plain Ed25519 signature.
func Verify(publicKey, message, signature []byte) bool {
	if len(publicKey) == KeySize+1 && publicKey[0] == pubKeyTypeDJB {
		publicKey = publicKey[1:]
	}
	if len(publicKey) != KeySize || len(signature) != SignatureSize {
		return false
	}

	u, err := new(field.Element).SetBytes(publicKey)
	if err != nil {
		return false
	}

	// y = (u - 1) / (u + 1)
	one := new(field.Element).One()
	num := new(field.Element).Subtract(u, one)
	den := new(field.Element).Add(u, one)
	y := num.Multiply(num, den.Invert(den))

	edPub := make([]byte, ed25519.PublicKeySize)
	copy(edPub, y.Bytes())
	edPub[31] |= signature[63] & 0x80

	sig := make([]byte, SignatureSize)
	copy(sig, signature)
	sig[63] &= 0x7F

	return ed25519.Verify(ed25519.PublicKey(edPub), message, sig)
}
