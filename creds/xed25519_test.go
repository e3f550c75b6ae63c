package creds

import (
	"bytes"
	"testing"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	pair, err := NewKeyPair()
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}

	msg := []byte("signed prekey payload")
	sig, err := Sign(pair.Private, msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if len(sig) != SignatureSize {
		t.Fatalf("signature length = %d, want %d", len(sig), SignatureSize)
	}
	if !Verify(pair.Public, msg, sig) {
		t.Fatal("signature did not verify")
	}
}

func TestVerifyAcceptsSerializedKey(t *testing.T) {
	pair, err := NewKeyPair()
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}

	msg := []byte("prefixed key form")
	sig, err := Sign(pair.Private, msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !Verify(SerializePubKey(pair.Public), msg, sig) {
		t.Fatal("signature did not verify against serialized key")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	pair, err := NewKeyPair()
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}

	sig, err := Sign(pair.Private, []byte("original"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if Verify(pair.Public, []byte("tampered"), sig) {
		t.Fatal("tampered message verified")
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	pair, err := NewKeyPair()
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}

	msg := []byte("payload")
	sig, err := Sign(pair.Private, msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig[10] ^= 0x40
	if Verify(pair.Public, msg, sig) {
		t.Fatal("tampered signature verified")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer, err := NewKeyPair()
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}
	other, err := NewKeyPair()
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}

	msg := []byte("payload")
	sig, err := Sign(signer.Private, msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if Verify(other.Public, msg, sig) {
		t.Fatal("signature verified against wrong key")
	}
}

func TestVerifyRejectsBadLengths(t *testing.T) {
	pair, err := NewKeyPair()
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}

	msg := []byte("payload")
	sig, err := Sign(pair.Private, msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if Verify(pair.Public[:16], msg, sig) {
		t.Fatal("short public key verified")
	}
	if Verify(pair.Public, msg, sig[:32]) {
		t.Fatal("short signature verified")
	}
	if Verify(nil, msg, sig) {
		t.Fatal("nil public key verified")
	}
}

func TestSignRejectsBadKeyLength(t *testing.T) {
	if _, err := Sign([]byte{1, 2, 3}, []byte("payload")); err == nil {
		t.Fatal("expected error for short private key")
	}
}

func TestSignIsRandomized(t *testing.T) {
	pair, err := NewKeyPair()
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}

	msg := []byte("same message twice")
	first, err := Sign(pair.Private, msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	second, err := Sign(pair.Private, msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Fatal("two signatures over the same message were identical")
	}
	if !Verify(pair.Public, msg, first) || !Verify(pair.Public, msg, second) {
		t.Fatal("randomized signatures did not both verify")
	}
}
