package core

import (
	"crypto/ed25519"
	crand "crypto/rand"
	"fmt"
	"strings"
)

// SystemAddress is the reserved 64-zero-hex-char address used as the source
// for mints and the sink for burns.
var SystemAddress Address = Address(strings.Repeat("0", 64))

// Address is an opaque 64-character lowercase hexadecimal account
// identifier, derived as hex(SHA-256(pubkey)).
type Address string

// KeyPair is an Ed25519 signing key pair.
type KeyPair struct {
	priv ed25519.PrivateKey
}

// PublicKey is the verifying half of a KeyPair.
type PublicKey struct {
	bytes ed25519.PublicKey
}

// GenerateKeyPair creates a new key pair from OS randomness.
func GenerateKeyPair() (*KeyPair, error) {
	_, priv, err := ed25519.GenerateKey(crand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	return &KeyPair{priv: priv}, nil
}

// KeyPairFromSeed reconstructs a key pair from a 32-byte seed.
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{priv: priv}, nil
}

// PublicKey returns the public half of the key pair.
func (k *KeyPair) PublicKey() PublicKey {
	pub := k.priv.Public().(ed25519.PublicKey)
	return PublicKey{bytes: pub}
}

// Address derives this key pair's account address: hex(SHA-256(pubkey)).
func (k *KeyPair) Address() Address {
	return k.PublicKey().Address()
}

// Sign returns the 64-byte Ed25519 signature over message.
func (k *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(k.priv, message)
}

// SecretBytes exports the 32-byte seed of the signing key.
func (k *KeyPair) SecretBytes() []byte {
	seed := k.priv.Seed()
	out := make([]byte, len(seed))
	copy(out, seed)
	return out
}

// PublicKeyFromBytes wraps raw 32-byte Ed25519 public key material.
func PublicKeyFromBytes(b []byte) PublicKey {
	cp := make([]byte, len(b))
	copy(cp, b)
	return PublicKey{bytes: cp}
}

// Bytes returns the raw 32-byte public key.
func (p PublicKey) Bytes() []byte {
	return p.bytes
}

// Address derives the account address: hex(SHA-256(pubkey)).
func (p PublicKey) Address() Address {
	return Address(sha256Hex(p.bytes))
}

// Verify checks an Ed25519 signature over message. Any decoding failure
// (wrong-length key or signature) returns false rather than raising.
func (p PublicKey) Verify(message, signature []byte) bool {
	if len(p.bytes) != ed25519.PublicKeySize {
		return false
	}
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.bytes), message, signature)
}
