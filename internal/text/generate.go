package text

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
)

// GenerateRequest describes one key generation call.
type GenerateRequest struct {
	Scheme crypto.Scheme
	Dir    string
	// Force allows existing key files to be replaced.
	Force bool
}

// KeyFileNames returns the files Generate writes for scheme.
func KeyFileNames(scheme crypto.Scheme) ([]string, error) {
	switch scheme {
	case crypto.KeyedHash:
		return []string{constants.Blake3KeyFileName}, nil
	case crypto.AsymmetricSignature:
		return []string{constants.Ed25519PrivateKeyFileName, constants.Ed25519PublicKeyFileName}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownScheme, scheme)
	}
}

// ExistingKeyFiles returns the paths in dir that Generate would overwrite.
func ExistingKeyFiles(scheme crypto.Scheme, dir string) ([]string, error) {
	names, err := KeyFileNames(scheme)
	if err != nil {
		return nil, err
	}

	var existing []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, statErr := os.Lstat(path); statErr == nil {
			existing = append(existing, path)
		} else if !os.IsNotExist(statErr) {
			return nil, errors.WithKind(errors.ErrIO, statErr, "checking %s", path)
		}
	}
	return existing, nil
}

// Generate creates key material for the scheme and writes one file per
// entry into the output directory. It returns the written paths.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ensureDir(req.Dir); err != nil {
		return nil, err
	}

	if !req.Force {
		existing, err := ExistingKeyFiles(req.Scheme, req.Dir)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, fmt.Errorf("%w: %s", errors.ErrFileExists, existing[0])
		}
	}

	keys, err := crypto.Generate(req.Scheme, s.random)
	if err != nil {
		return nil, err
	}

	paths, err := writeKeySet(req.Dir, keys)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("scheme", req.Scheme.String()).
		Str("dir", req.Dir).
		Strs("files", paths).
		Msg("key material generated")

	return paths, nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", errors.ErrNotADirectory, dir)
		}
		return errors.WithKind(errors.ErrIO, err, "checking output directory %s", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", errors.ErrNotADirectory, dir)
	}
	return nil
}

// writeKeySet stages every key as a temp file before renaming any of them,
// so a failed write leaves an existing key pair untouched.
func writeKeySet(dir string, keys []crypto.GeneratedKey) ([]string, error) {
	paths := make([]string, 0, len(keys))
	staged := make([]string, 0, len(keys))
	discard := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for _, k := range keys {
		path := filepath.Join(dir, k.FileName)
		tmp, err := writeTemp(path, k.Data, k.Mode)
		if err != nil {
			discard()
			return nil, errors.WithKind(errors.ErrIO, err, "writing %s", path)
		}
		paths = append(paths, path)
		staged = append(staged, tmp)
	}

	for i, tmp := range staged {
		if err := os.Rename(tmp, paths[i]); err != nil {
			discard()
			return nil, errors.WithKind(errors.ErrIO, err, "writing %s", paths[i])
		}
	}
	return paths, nil
}

// writeTemp writes data next to path and returns the temp file name. The
// caller renames it into place.
func writeTemp(path string, data []byte, perm os.FileMode) (string, error) {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) //#nosec G304 -- path is built from the output directory
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write data: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to sync file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	// The temp file may have been created earlier with looser permissions.
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to set permissions: %w", err)
	}
	return tmpPath, nil
}
