// Package constants provides centralized constant values used throughout rcli.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// StdinDesignator is the input designator that selects standard input
// instead of a file path.
const StdinDesignator = "-"

// Key material and signature sizes, in bytes.
const (
	// KeySize is the length of every persisted key: the keyed-hash secret,
	// the Ed25519 seed and the Ed25519 public key.
	KeySize = 32

	// KeyedHashSignatureSize is the length of a BLAKE3 keyed-hash tag.
	KeyedHashSignatureSize = 32

	// Ed25519SignatureSize is the length of an Ed25519 signature.
	Ed25519SignatureSize = 64
)

// Key file names written by "text generate".
const (
	// Blake3KeyFileName holds the shared secret for the keyed-hash scheme.
	Blake3KeyFileName = "blake3.txt"

	// Ed25519PrivateKeyFileName holds the raw 32-byte Ed25519 seed.
	Ed25519PrivateKeyFileName = "ed25519.sk"

	// Ed25519PublicKeyFileName holds the raw 32-byte Ed25519 public key.
	Ed25519PublicKeyFileName = "ed25519.pk"
)

// File permissions for generated material.
const (
	// SecretFileMode is used for files holding secret key material.
	SecretFileMode = 0o600

	// PublicFileMode is used for files holding public key material.
	PublicFileMode = 0o644
)

// Defaults for the utility commands.
const (
	// SchemeBlake3 names the BLAKE3 keyed-hash signing scheme.
	SchemeBlake3 = "blake3"

	// SchemeEd25519 names the Ed25519 signing scheme.
	SchemeEd25519 = "ed25519"

	// DefaultScheme is the signing scheme used when none is configured.
	DefaultScheme = SchemeBlake3

	// DefaultPasswordLength is the default length of generated passwords.
	DefaultPasswordLength = 16

	// MaxPasswordLength is the largest password genpass will produce.
	MaxPasswordLength = 255

	// DefaultCSVDelimiter is the default CSV field separator.
	DefaultCSVDelimiter = ","

	// DefaultCSVFormat is the default CSV conversion target.
	DefaultCSVFormat = "json"

	// DefaultBase64Format is the default base64 alphabet.
	DefaultBase64Format = "standard"

	// DefaultHTTPDir is the directory served by "http serve" by default.
	DefaultHTTPDir = "."

	// DefaultHTTPPort is the default listening port for "http serve".
	DefaultHTTPPort = 8080

	// DefaultReadHeaderTimeout bounds how long the server waits for request headers.
	DefaultReadHeaderTimeout = 5 * time.Second

	// DefaultShutdownTimeout bounds graceful shutdown of the HTTP server.
	DefaultShutdownTimeout = 10 * time.Second
)
