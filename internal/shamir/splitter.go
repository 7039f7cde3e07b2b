// Package shamir implements the byte-wise Shamir split/combine over
// GF(2^n), including the padding-marker convention that lets the combiner
// recover the original byte alignment without a stored length.
package shamir

import (
	"github.com/mrz1836/bananasplit/internal/gf"
	"github.com/mrz1836/bananasplit/internal/secure"
)

// SplitBits is the field width the splitter operates in: one GF(2^8)
// element per byte of the (padded) ciphertext.
const SplitBits = 8

// padModulus is the protocol's fixed padding block size; the padded input
// length is always a multiple of it. Not configurable — interop depends
// on this exact value.
const padModulus = 7

// paddingMarker is the single set byte that separates the left-padding
// from the real ciphertext once everything is packed into a bit stream.
const paddingMarker = 0x01

// Share is one column of the split matrix: an id (x-coordinate) paired
// with its content (y-values, one per byte of the padded ciphertext).
type Share struct {
	ID      uint32
	Content []byte
}

// Split divides ciphertext into total shares, any threshold of which
// reconstruct it via Combine. Operates byte-wise over GF(2^8).
func Split(ciphertext []byte, total, threshold int) ([]Share, error) {
	if total < 2 || total < threshold {
		return nil, ErrTooFewShares
	}
	maxShares := (1 << SplitBits) - 1
	if total > maxShares {
		return nil, ErrTooManyShares
	}

	tbl, err := gf.TablesFor(SplitBits)
	if err != nil {
		return nil, err
	}

	padded := pad(ciphertext)

	// columns[j] holds the content for share j+1 (id = j+1).
	columns := make([][]byte, total)
	for j := range columns {
		columns[j] = make([]byte, len(padded))
	}

	for pos, b := range padded {
		coeffs, err := randomCoefficients(b, threshold)
		if err != nil {
			return nil, err
		}

		for x := 1; x <= total; x++ {
			y, err := gf.Horner(uint32(x), coeffs, tbl)
			if err != nil {
				return nil, err
			}
			columns[x-1][pos] = byte(y)
		}
	}

	shares := make([]Share, total)
	for j := range shares {
		shares[j] = Share{ID: uint32(j + 1), Content: columns[j]}
	}
	return shares, nil
}

// pad prepends L zero bytes and a single 0x01 marker byte to c, where
// L = 7 - ((len(c)+1) mod 7). This rounds the padded length up to a
// multiple of 7, which is how the combiner rediscovers the byte boundary
// after reassembling the bit stream.
func pad(c []byte) []byte {
	left := padModulus - (len(c)+1)%padModulus
	out := make([]byte, 0, left+1+len(c))
	out = append(out, make([]byte, left)...)
	out = append(out, paddingMarker)
	out = append(out, c...)
	return out
}

// randomCoefficients draws threshold-1 cryptographically random
// coefficients and returns the full polynomial [secretByte, c1, ..., c_{k-1}].
func randomCoefficients(secretByte byte, threshold int) ([]uint32, error) {
	raw, err := secure.RandomBytes(threshold - 1)
	if err != nil {
		return nil, err
	}

	coeffs := make([]uint32, threshold)
	coeffs[0] = uint32(secretByte)
	for i, c := range raw {
		coeffs[i+1] = uint32(c)
	}
	return coeffs, nil
}
