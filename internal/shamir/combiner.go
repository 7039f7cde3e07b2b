package shamir

import "github.com/mrz1836/bananasplit/internal/gf"

// Combine reconstructs the padded-then-unpadded ciphertext from a set of
// shares that all agree on bits and content length. ids and contents must
// be the same length and index-aligned (contents[j] is the content for
// ids[j]); the caller (ShareSet) is responsible for the agreement checks.
func Combine(ids []uint32, contents [][]byte, bits uint32) ([]byte, error) {
	if len(ids) == 0 || len(contents) == 0 {
		return nil, ErrNoShares
	}

	tbl, err := gf.TablesFor(uint(bits))
	if err != nil {
		return nil, err
	}

	contentLength := len(contents[0])
	allBits := make([]byte, 0, contentLength*int(bits))

	ys := make([]uint32, len(ids))
	for pos := 0; pos < contentLength; pos++ {
		for j := range contents {
			ys[j] = uint32(contents[j][pos])
		}

		v, err := gf.Lagrange(ids, ys, tbl)
		if err != nil {
			return nil, err
		}
		allBits = append(allBits, valueBits(v, bits)...)
	}

	return stripMarkerAndPack(allBits)
}

// stripMarkerAndPack drops every leading zero bit up to and including the
// first set bit (the padding marker inserted by pad) and packs what's left
// MSB-first into bytes.
func stripMarkerAndPack(bitStream []byte) ([]byte, error) {
	i := 0
	for i < len(bitStream) && bitStream[i] == 0 {
		i++
	}
	if i >= len(bitStream) {
		return nil, ErrPaddingMarkerNotFound
	}

	return packBits(bitStream[i+1:]), nil
}

// valueBits returns the low n bits of v, MSB first, one byte (0 or 1) per bit.
func valueBits(v uint32, n uint32) []byte {
	out := make([]byte, n)
	for i := uint32(0); i < n; i++ {
		shift := n - 1 - i
		out[i] = byte((v >> shift) & 1)
	}
	return out
}

// packBits packs a stream of 0/1 bytes, MSB first, into a byte slice.
func packBits(bitStream []byte) []byte {
	out := make([]byte, (len(bitStream)+7)/8)
	for i, b := range bitStream {
		if b == 1 {
			out[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return out
}
