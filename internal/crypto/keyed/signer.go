// Package keyed provides the BLAKE3 keyed-hash signing scheme.
package keyed

import (
	"crypto/subtle"
	"fmt"

	"lukechampine.com/blake3"

	"github.com/mrz1836/rcli/internal/errors"
)

// KeySize is the required length of a keyed-hash secret.
const KeySize = 32

// Size is the length of a keyed-hash tag.
const Size = 32

// Signer computes BLAKE3 keyed-hash tags with a 32-byte secret.
// The same key and message always produce the same tag.
type Signer struct {
	key [KeySize]byte
}

// NewSigner copies key into a new Signer.
func NewSigner(key []byte) (*Signer, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: blake3 key must be %d bytes, got %d",
			errors.ErrKeyFormat, KeySize, len(key))
	}
	s := &Signer{}
	copy(s.key[:], key)
	return s, nil
}

// Sign returns the 32-byte keyed hash of message.
func (s *Signer) Sign(message []byte) []byte {
	h := blake3.New(Size, s.key[:])
	_, _ = h.Write(message)
	return h.Sum(nil)
}

// Verify recomputes the tag over message and compares it with signature in
// constant time.
func (s *Signer) Verify(message, signature []byte) bool {
	return subtle.ConstantTimeCompare(s.Sign(message), signature) == 1
}
