package crypto

import (
	"crypto/ed25519"
	"fmt"
	"io"
	"os"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto/keyed"
	"github.com/mrz1836/rcli/internal/crypto/native"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/passgen"
)

// KeyMaterial is a parsed key bound to its scheme and purpose.
//
// Keyed-hash material holds the 32-byte shared secret for either purpose.
// Ed25519 material holds the seed for Signing and the public key for
// Verifying.
type KeyMaterial struct {
	scheme  Scheme
	purpose KeyPurpose
	bytes   []byte
}

// Scheme returns the scheme the key belongs to.
func (k *KeyMaterial) Scheme() Scheme { return k.scheme }

// Purpose returns what the key was loaded for.
func (k *KeyMaterial) Purpose() KeyPurpose { return k.purpose }

// LoadKey reads a key file and parses it for scheme and purpose.
func LoadKey(path string, scheme Scheme, purpose KeyPurpose) (*KeyMaterial, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied by design
	if err != nil {
		return nil, errors.WithKind(errors.ErrIO, err, "reading key %s", path)
	}
	key, err := ParseKey(data, scheme, purpose)
	if err != nil {
		return nil, fmt.Errorf("loading key %s: %w", path, err)
	}
	return key, nil
}

// ParseKey interprets raw key file contents.
//
// A keyed-hash key uses the first 32 bytes of the file so that a trailing
// newline added by an editor is tolerated; fewer bytes is a format error.
// An Ed25519 key must be exactly 32 bytes.
func ParseKey(data []byte, scheme Scheme, purpose KeyPurpose) (*KeyMaterial, error) {
	if purpose != Signing && purpose != Verifying {
		return nil, fmt.Errorf("%w: unknown key purpose %d", errors.ErrInvalidArgument, int(purpose))
	}

	switch scheme {
	case KeyedHash:
		if len(data) < keyed.KeySize {
			return nil, fmt.Errorf("%w: blake3 key needs %d bytes, got %d",
				errors.ErrKeyFormat, keyed.KeySize, len(data))
		}
		return newKeyMaterial(scheme, purpose, data[:keyed.KeySize]), nil
	case AsymmetricSignature:
		if len(data) != constants.KeySize {
			return nil, fmt.Errorf("%w: ed25519 %s key must be %d bytes, got %d",
				errors.ErrKeyFormat, purpose, constants.KeySize, len(data))
		}
		return newKeyMaterial(scheme, purpose, data), nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownScheme, scheme)
	}
}

func newKeyMaterial(scheme Scheme, purpose KeyPurpose, b []byte) *KeyMaterial {
	return &KeyMaterial{
		scheme:  scheme,
		purpose: purpose,
		bytes:   append([]byte(nil), b...),
	}
}

// Sign produces the raw signature of message.
func Sign(k *KeyMaterial, message []byte) ([]byte, error) {
	switch k.scheme {
	case KeyedHash:
		s, err := keyed.NewSigner(k.bytes)
		if err != nil {
			return nil, err
		}
		return s.Sign(message), nil
	case AsymmetricSignature:
		if k.purpose != Signing {
			return nil, fmt.Errorf("%w: ed25519 signing requires the private seed, not a public key",
				errors.ErrKeyFormat)
		}
		s, err := native.NewSigner(k.bytes)
		if err != nil {
			return nil, err
		}
		return s.Sign(message), nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownScheme, k.scheme)
	}
}

// Verify checks signature against message. A signature of the wrong length
// is an error; a well-formed signature that does not match returns false.
//
// Ed25519 material loaded for Signing is accepted; its public key is
// derived from the seed. Callers choose the purpose when loading, since a
// seed and a public key file have the same length.
func Verify(k *KeyMaterial, message, signature []byte) (bool, error) {
	if want := k.scheme.SignatureSize(); want == 0 {
		return false, fmt.Errorf("%w: %s", errors.ErrUnknownScheme, k.scheme)
	} else if len(signature) != want {
		return false, fmt.Errorf("%w: %s signatures are %d bytes, got %d",
			errors.ErrSignatureLength, k.scheme, want, len(signature))
	}

	switch k.scheme {
	case KeyedHash:
		s, err := keyed.NewSigner(k.bytes)
		if err != nil {
			return false, err
		}
		return s.Verify(message, signature), nil
	case AsymmetricSignature:
		pub := ed25519.PublicKey(k.bytes)
		if k.purpose == Signing {
			s, err := native.NewSigner(k.bytes)
			if err != nil {
				return false, err
			}
			pub = s.PublicKey()
		}
		v, err := native.NewVerifier(pub)
		if err != nil {
			return false, err
		}
		return v.Verify(message, signature), nil
	default:
		return false, fmt.Errorf("%w: %s", errors.ErrUnknownScheme, k.scheme)
	}
}

// GeneratedKey is one file's worth of freshly generated key material.
type GeneratedKey struct {
	FileName string
	Data     []byte
	Mode     os.FileMode
}

// Generate creates new key material for scheme using random.
//
// The keyed-hash secret is 32 printable characters so the key file can be
// inspected and copied by hand. Ed25519 produces a seed file and a public
// key file.
func Generate(scheme Scheme, random io.Reader) ([]GeneratedKey, error) {
	switch scheme {
	case KeyedHash:
		opts := passgen.DefaultOptions()
		opts.Length = keyed.KeySize
		secret, err := passgen.Generate(random, opts)
		if err != nil {
			return nil, fmt.Errorf("generating blake3 key: %w", err)
		}
		return []GeneratedKey{
			{FileName: constants.Blake3KeyFileName, Data: []byte(secret), Mode: constants.SecretFileMode},
		}, nil
	case AsymmetricSignature:
		seed, pub, err := native.GenerateKey(random)
		if err != nil {
			return nil, err
		}
		return []GeneratedKey{
			{FileName: constants.Ed25519PrivateKeyFileName, Data: seed, Mode: constants.SecretFileMode},
			{FileName: constants.Ed25519PublicKeyFileName, Data: pub, Mode: constants.PublicFileMode},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownScheme, scheme)
	}
}
