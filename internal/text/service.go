// Package text ties the input resolver, key loader, signing schemes, and
// text codec together into the sign, verify, and generate operations
// behind the "rcli text" commands.
package text

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrz1836/rcli/internal/codec"
	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/input"
)

// Service runs text signing operations. It holds no state between calls.
type Service struct {
	resolver *input.Resolver
	random   io.Reader
	logger   zerolog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithRandom replaces the random source used for key generation.
func WithRandom(r io.Reader) ServiceOption {
	return func(s *Service) {
		s.random = r
	}
}

// WithLogger sets the logger for diagnostic output.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service that reads "-" from stdin.
func NewService(stdin io.Reader, opts ...ServiceOption) *Service {
	s := &Service{
		resolver: input.NewResolver(stdin),
		random:   rand.Reader,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignRequest describes one sign call.
type SignRequest struct {
	Input   string
	KeyPath string
	Scheme  crypto.Scheme
}

// Sign signs the input with the key and returns the signature text.
func (s *Service) Sign(ctx context.Context, req SignRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, err := crypto.LoadKey(req.KeyPath, req.Scheme, crypto.Signing)
	if err != nil {
		return "", err
	}
	message, err := s.resolver.ReadAll(req.Input)
	if err != nil {
		return "", err
	}

	sig, err := crypto.Sign(key, message)
	if err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("scheme", req.Scheme.String()).
		Str("input", req.Input).
		Int("message_bytes", len(message)).
		Msg("message signed")

	return codec.Encode(sig), nil
}

// VerifyRequest describes one verify call. Exactly one of Signature and
// SignatureFile is set.
//
// For Ed25519, a KeyPath ending in ".sk" is read as the seed and the
// public key is derived from it; any other path is read as the public key.
type VerifyRequest struct {
	Input         string
	KeyPath       string
	Scheme        crypto.Scheme
	Signature     string
	SignatureFile string
}

func (r VerifyRequest) validate() error {
	hasText := r.Signature != ""
	hasFile := r.SignatureFile != ""
	switch {
	case hasText && hasFile:
		return fmt.Errorf("%w: signature text and signature file are mutually exclusive", errors.ErrConflictingFlags)
	case !hasText && !hasFile:
		return fmt.Errorf("%w: a signature is required", errors.ErrInvalidArgument)
	case hasFile && input.IsStdin(r.Input) && input.IsStdin(r.SignatureFile):
		return fmt.Errorf("%w: message and signature cannot both be read from stdin", errors.ErrConflictingFlags)
	}
	return nil
}

// Verify reports whether the signature matches the input under the key.
// A mismatch is a false result, not an error.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := req.validate(); err != nil {
		return false, err
	}

	sigText := req.Signature
	if req.SignatureFile != "" {
		raw, err := s.resolver.ReadAll(req.SignatureFile)
		if err != nil {
			return false, err
		}
		sigText = string(raw)
	}
	sig, err := codec.Decode(strings.TrimSpace(sigText))
	if err != nil {
		return false, err
	}

	key, err := crypto.LoadKey(req.KeyPath, req.Scheme, verifyKeyPurpose(req.Scheme, req.KeyPath))
	if err != nil {
		return false, err
	}
	message, err := s.resolver.ReadAll(req.Input)
	if err != nil {
		return false, err
	}

	valid, err := crypto.Verify(key, message, sig)
	if err != nil {
		return false, err
	}

	s.logger.Debug().
		Str("scheme", req.Scheme.String()).
		Str("input", req.Input).
		Bool("valid", valid).
		Msg("signature verified")

	return valid, nil
}

// verifyKeyPurpose picks how a verify key file is parsed. Ed25519 seed and
// public key files are both 32 bytes, so the ".sk" suffix written by
// Generate is what marks a seed.
func verifyKeyPurpose(scheme crypto.Scheme, path string) crypto.KeyPurpose {
	if scheme == crypto.AsymmetricSignature &&
		filepath.Ext(path) == filepath.Ext(constants.Ed25519PrivateKeyFileName) {
		return crypto.Signing
	}
	return crypto.Verifying
}
