// Package native provides Ed25519 signing using standard crypto libraries.
package native

import (
	"crypto/ed25519"
	"fmt"
	"io"

	"github.com/mrz1836/rcli/internal/errors"
)

// Signer signs messages with an Ed25519 key derived from a 32-byte seed.
type Signer struct {
	privKey ed25519.PrivateKey
}

// NewSigner derives the key pair for seed. The same seed always yields the
// same key pair.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed must be %d bytes, got %d",
			errors.ErrKeyFormat, ed25519.SeedSize, len(seed))
	}
	return &Signer{privKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// Sign signs the message using Ed25519. The result is always 64 bytes.
func (s *Signer) Sign(message []byte) []byte {
	return ed25519.Sign(s.privKey, message)
}

// PublicKey returns the verifying key paired with this signer.
func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.privKey.Public().(ed25519.PublicKey)
}

// Seed returns a copy of the 32-byte seed.
func (s *Signer) Seed() []byte {
	return s.privKey.Seed()
}

// Verifier checks Ed25519 signatures against a 32-byte public key.
type Verifier struct {
	pubKey ed25519.PublicKey
}

// NewVerifier wraps a raw public key.
func NewVerifier(publicKey []byte) (*Verifier, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d",
			errors.ErrKeyFormat, ed25519.PublicKeySize, len(publicKey))
	}
	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, publicKey)
	return &Verifier{pubKey: pub}, nil
}

// Verify reports whether signature is a valid signature of message.
// Malformed signatures and public keys that do not decode to a curve point
// both report false.
func (v *Verifier) Verify(message, signature []byte) bool {
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(v.pubKey, message, signature)
}

// GenerateKey draws a fresh seed from random and returns it together with
// the derived public key.
func GenerateKey(random io.Reader) (seed, publicKey []byte, err error) {
	seed = make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(random, seed); err != nil {
		return nil, nil, fmt.Errorf("%w: generating ed25519 seed: %w", errors.ErrRandomSource, err)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return seed, []byte(priv.Public().(ed25519.PublicKey)), nil
}
