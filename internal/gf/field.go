// Package gf implements arithmetic over GF(2^n) for n in [3,20]: the
// discrete-log/exponent tables banana split shares are built and recombined
// with, plus the Horner and Lagrange routines layered on top of them.
package gf

import "sync"

// MinBits and MaxBits bound the field sizes this package supports.
const (
	MinBits = 3
	MaxBits = 20
)

// primitivePolynomials holds the hard-coded primitive polynomial for each
// n in [3,20], indexed as table[n-3]. Values taken from the reference
// protocol; do not recompute or "simplify" them.
//
//nolint:gochecknoglobals // fixed protocol constant table
var primitivePolynomials = [MaxBits - MinBits + 1]uint32{
	3, 3, 5, 3, 3, 29, 17, 9, 5, 83, 27, 43, 3, 45, 9, 39, 39, 9,
}

func primitivePolynomial(n uint) uint32 {
	return primitivePolynomials[n-MinBits]
}

// Tables is a precomputed discrete-log/exponent pair for GF(2^n).
// logs[0] is always undefined (noLog); logs[x] for x>0 is the discrete
// log of x; exps[i] is the corresponding power.
type Tables struct {
	N    uint
	Size uint32
	logs []int32
	exps []uint32
}

const noLog = -1

// Log returns the discrete logarithm of x, and false if x is zero (the
// one field element with no logarithm) or out of range for this table.
func (t *Tables) Log(x uint32) (uint32, bool) {
	if x >= uint32(len(t.logs)) {
		return 0, false
	}
	l := t.logs[x]
	if l == noLog {
		return 0, false
	}
	return uint32(l), true
}

// Exp returns exps[i], the field element at power i.
func (t *Tables) Exp(i uint32) uint32 {
	return t.exps[i]
}

//nolint:gochecknoglobals // per-n memoization cache, pure function of n
var (
	tableCache   = map[uint]*Tables{}
	tableCacheMu sync.Mutex
)

// TablesFor returns the memoized log/exp tables for n, generating them on
// first use. n must lie in [MinBits, MaxBits].
func TablesFor(n uint) (*Tables, error) {
	if n < MinBits || n > MaxBits {
		return nil, ErrBitsOutOfRange
	}

	tableCacheMu.Lock()
	defer tableCacheMu.Unlock()

	if t, ok := tableCache[n]; ok {
		return t, nil
	}

	t := generateTables(n)
	tableCache[n] = t
	return t, nil
}

// generateTables builds the log/exp tables for GF(2^n). x cycles through
// every nonzero field element exactly once per period; x=1 is revisited at
// i=0 and i=size-1, so the write to logs is guarded to keep the earlier
// (i=0) value.
func generateTables(n uint) *Tables {
	size := uint32(1) << n
	poly := primitivePolynomial(n)

	logs := make([]int32, size)
	for i := range logs {
		logs[i] = noLog
	}
	exps := make([]uint32, size)

	x := uint32(1)
	for i := uint32(0); i < size; i++ {
		exps[i] = x
		if logs[x] == noLog {
			logs[x] = int32(i)
		}

		x <<= 1
		if x >= size {
			x ^= poly
			x &= size - 1
		}
	}

	return &Tables{N: n, Size: size, logs: logs, exps: exps}
}

// Horner evaluates a polynomial with coefficients coeffs (coeffs[0] is the
// constant term) at x, folding from the highest-degree coefficient down.
// The explicit zero-guard avoids ever taking the log of zero.
func Horner(x uint32, coeffs []uint32, t *Tables) (uint32, error) {
	logX, ok := t.Log(x)
	if !ok {
		return 0, ErrLogOutOfRange
	}

	var fx uint32
	for i := len(coeffs) - 1; i >= 0; i-- {
		a := coeffs[i]
		if fx != 0 {
			logFx, fxOK := t.Log(fx)
			if !fxOK {
				return 0, ErrLogOutOfRange
			}
			exp := (logX + logFx) % (t.Size - 1)
			fx = t.Exp(exp) ^ a
		} else {
			fx = a
		}
	}
	return fx, nil
}

// Lagrange reconstructs the secret coefficient (the value of the
// interpolating polynomial at x=0) from distinct nonzero evaluation points
// xs and their values ys, via Σ y_i · Π (x_j / (x_i XOR x_j)).
func Lagrange(xs, ys []uint32, t *Tables) (uint32, error) {
	size := t.Size

	var sum uint32
	for i := range xs {
		if ys[i] == 0 {
			// No logarithm for zero; this term's contribution is zero.
			continue
		}
		logYi, ok := t.Log(ys[i])
		if !ok {
			return 0, ErrLogOutOfRange
		}

		product := logYi
		for j := range xs {
			if i == j {
				continue
			}

			p1, ok := t.Log(xs[j])
			if !ok {
				return 0, ErrLogOutOfRange
			}
			p2, ok := t.Log(xs[i] ^ xs[j])
			if !ok {
				return 0, ErrLogOutOfRange
			}

			product = ((size - 1) + product + p1 - p2) % (size - 1)
		}

		sum ^= t.Exp(product)
	}

	return sum, nil
}
