package secure

import (
	"crypto/rand"
	"io"
)

// Reader is the cryptographically secure random source used throughout the
// package. A package-level var rather than a direct crypto/rand.Read call
// so tests can substitute a deterministic source.
//
//nolint:gochecknoglobals // swappable RNG, tests only
var Reader io.Reader = rand.Reader

// RandomBytes reads n cryptographically secure random bytes from Reader.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
