package shamir

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func contentsFor(shares []Share, ids []int) (xs []uint32, contents [][]byte) {
	for _, idx := range ids {
		xs = append(xs, shares[idx].ID)
		contents = append(contents, shares[idx].Content)
	}
	return xs, contents
}

func TestSplitCombine_roundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		secretLen int
		total, k  int
	}{
		{"ShortSecret", 16, 5, 3},
		{"LongSecret", 97, 5, 3},
		{"ThresholdEqualsTotal", 32, 5, 5},
		{"MinShares", 8, 2, 2},
		{"EmptySecret", 0, 3, 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			secret := make([]byte, tt.secretLen)
			if _, err := rand.Read(secret); err != nil {
				t.Fatal(err)
			}

			shares, err := Split(secret, tt.total, tt.k)
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			if len(shares) != tt.total {
				t.Fatalf("got %d shares, want %d", len(shares), tt.total)
			}

			ids := make([]int, tt.k)
			for i := range ids {
				ids[i] = i
			}
			xs, contents := contentsFor(shares, ids)

			got, err := Combine(xs, contents, SplitBits)
			if err != nil {
				t.Fatalf("Combine: %v", err)
			}
			if !bytes.Equal(got, secret) {
				t.Fatalf("recovered %x, want %x", got, secret)
			}

			// A different subset of k shares must also recover the secret.
			ids2 := make([]int, tt.k)
			for i := range ids2 {
				ids2[i] = tt.total - 1 - i
			}
			xs2, contents2 := contentsFor(shares, ids2)
			got2, err := Combine(xs2, contents2, SplitBits)
			if err != nil {
				t.Fatalf("Combine (subset2): %v", err)
			}
			if !bytes.Equal(got2, secret) {
				t.Fatalf("recovered (subset2) %x, want %x", got2, secret)
			}
		})
	}
}

func TestSplit_validation(t *testing.T) {
	t.Parallel()

	if _, err := Split([]byte("x"), 1, 1); !errors.Is(err, ErrTooFewShares) {
		t.Errorf("total=1: got %v, want ErrTooFewShares", err)
	}
	if _, err := Split([]byte("x"), 2, 3); !errors.Is(err, ErrTooFewShares) {
		t.Errorf("total<k: got %v, want ErrTooFewShares", err)
	}
	if _, err := Split([]byte("x"), 256, 2); !errors.Is(err, ErrTooManyShares) {
		t.Errorf("total=256: got %v, want ErrTooManyShares", err)
	}
}

func TestPad_boundaries(t *testing.T) {
	t.Parallel()

	// len(c)+1 should always round up to a multiple of 7 after padding.
	for n := 0; n < 20; n++ {
		c := make([]byte, n)
		padded := pad(c)
		if len(padded)%padModulus != 0 {
			t.Fatalf("len=%d: padded length %d not a multiple of %d", n, len(padded), padModulus)
		}
		// marker byte must be the first nonzero byte.
		markerIdx := len(padded) - len(c) - 1
		if padded[markerIdx] != paddingMarker {
			t.Fatalf("len=%d: expected marker at index %d", n, markerIdx)
		}
		for i := 0; i < markerIdx; i++ {
			if padded[i] != 0 {
				t.Fatalf("len=%d: expected zero padding before marker", n)
			}
		}
	}
}

func TestCombine_tamperedShareYieldsWrongSecret(t *testing.T) {
	t.Parallel()

	secret := []byte("a modestly long test secret string")
	shares, err := Split(secret, 5, 3)
	if err != nil {
		t.Fatal(err)
	}

	tampered := make([]byte, len(shares[0].Content))
	copy(tampered, shares[0].Content)
	tampered[0] ^= 0xFF

	xs := []uint32{shares[0].ID, shares[1].ID, shares[2].ID}
	contents := [][]byte{tampered, shares[1].Content, shares[2].Content}

	got, err := Combine(xs, contents, SplitBits)
	if err != nil {
		// A math error is an acceptable outcome for tampered input too.
		return
	}
	if bytes.Equal(got, secret) {
		t.Error("tampered share unexpectedly still reconstructed the original secret")
	}
}

func TestCombine_insufficientSharesYieldsWrongSecret(t *testing.T) {
	t.Parallel()

	secret := []byte("needs three shares to recover correctly")
	shares, err := Split(secret, 5, 3)
	if err != nil {
		t.Fatal(err)
	}

	// Only 2 of the needed 3 shares: Combine has no way to know it's
	// short, so it must not silently produce the right answer.
	xs := []uint32{shares[0].ID, shares[1].ID}
	contents := [][]byte{shares[0].Content, shares[1].Content}

	got, err := Combine(xs, contents, SplitBits)
	if err != nil {
		return
	}
	if bytes.Equal(got, secret) {
		t.Error("2-of-3 combine unexpectedly reconstructed the 3-threshold secret")
	}
}
