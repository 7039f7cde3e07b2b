// Package secure provides locked, zero-on-release memory for sensitive
// byte buffers such as derived keys, and in-place zeroing (Zero) for plain
// buffers such as passphrase copies and decrypted plaintext.
package secure

import (
	"runtime"
	"sync"
)

// Bytes is a wrapper for sensitive byte slices that provides secure
// memory handling with mlock and explicit zeroing.
type Bytes struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// New creates a new Bytes of the given size. The memory is locked if the
// system supports it; locking failure is not fatal.
func New(size int) *Bytes {
	data := make([]byte, size)

	b := &Bytes{data: data}
	b.locked = mlock(data)

	runtime.SetFinalizer(b, func(s *Bytes) {
		s.Destroy()
	})

	return b
}

// FromSlice creates a Bytes holding a copy of data.
func FromSlice(data []byte) *Bytes {
	b := New(len(data))
	copy(b.data, data)
	return b
}

// Bytes returns the underlying byte slice, or nil once destroyed.
func (s *Bytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// IsLocked reports whether the memory is mlocked.
func (s *Bytes) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Len returns the length of the held data, or 0 once destroyed.
func (s *Bytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return 0
	}
	return len(s.data)
}

// Destroy zeros the memory, unlocks it, and releases the slice. Safe to
// call more than once.
func (s *Bytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}

	for i := range s.data {
		s.data[i] = 0
	}

	if s.locked {
		munlock(s.data)
		s.locked = false
	}

	s.data = nil
	runtime.SetFinalizer(s, nil)
}

// Zero overwrites a plain byte slice with zeros in place. Used for
// buffers that never went through New/FromSlice (e.g., a passphrase
// copy) but still must not linger in memory after use.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
