// Package passgen generates random passwords from configurable character classes.
package passgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Character classes. Visually ambiguous characters (I, O, l, 0) are left out.
const (
	Uppercase = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	Lowercase = "abcdefghijkmnopqrstuvwxyz"
	Numbers   = "123456789"
	Symbols   = "!@#$%^&*_"
)

// Options selects the password length and the enabled character classes.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Number    bool
	Symbol    bool
}

// DefaultOptions returns all classes enabled at the default length.
func DefaultOptions() Options {
	return Options{
		Length:    constants.DefaultPasswordLength,
		Uppercase: true,
		Lowercase: true,
		Number:    true,
		Symbol:    true,
	}
}

// classes returns the enabled character classes in a fixed order.
func (o Options) classes() []string {
	var out []string
	if o.Uppercase {
		out = append(out, Uppercase)
	}
	if o.Lowercase {
		out = append(out, Lowercase)
	}
	if o.Number {
		out = append(out, Numbers)
	}
	if o.Symbol {
		out = append(out, Symbols)
	}
	return out
}

// Validate checks that at least one class is enabled and that Length can
// hold one character of every enabled class.
func (o Options) Validate() error {
	classes := o.classes()
	if len(classes) == 0 {
		return errors.ErrNoCharacterClass
	}
	if o.Length < len(classes) || o.Length > constants.MaxPasswordLength {
		return fmt.Errorf("%w: %d must be between %d and %d",
			errors.ErrInvalidPasswordLength, o.Length, len(classes), constants.MaxPasswordLength)
	}
	return nil
}

// Generate returns a password drawn from random. Every enabled class
// contributes at least one character; the remainder comes from the union
// of the enabled classes and the result is shuffled.
func Generate(random io.Reader, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	classes := opts.classes()
	password := make([]byte, 0, opts.Length)
	var pool []byte

	for _, class := range classes {
		c, err := pick(random, class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		pool = append(pool, class...)
	}

	for len(password) < opts.Length {
		c, err := pick(random, string(pool))
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(random, password); err != nil {
		return "", err
	}
	return string(password), nil
}

func pick(random io.Reader, set string) (byte, error) {
	i, err := randomIndex(random, len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by random.
func shuffle(random io.Reader, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randomIndex(random, i+1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// randomIndex returns a uniform integer in [0, n).
func randomIndex(random io.Reader, n int) (int, error) {
	v, err := rand.Int(random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}
