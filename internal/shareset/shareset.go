// Package shareset implements the ShareSet lifecycle: collecting shares
// that agree on their metadata, eagerly combining once the threshold is
// reached, and recovering the secret with a user-supplied passphrase.
package shareset

import (
	"context"
	"encoding/base64"
	"time"

	"golang.org/x/time/rate"

	bananaerr "github.com/mrz1836/bananasplit/pkg/errors"

	"github.com/mrz1836/bananasplit/internal/envelope"
	"github.com/mrz1836/bananasplit/internal/shamir"
	"github.com/mrz1836/bananasplit/internal/shareformat"
)

type state int

const (
	stateInProgress state = iota
	stateCombined
)

// NextAction tells the caller what to do next: collect more shares, or
// ask the user for the passphrase.
type NextAction struct {
	AskForPassword bool
	Have, Need     int
}

// ShareSet collects shares for one title/threshold, combines them once
// enough agree, and recovers the secret from the combined ciphertext.
type ShareSet struct {
	version        shareformat.Version
	title          string
	requiredShards int
	state          state

	// InProgress fields.
	bits          uint32
	ids           []uint32
	contentLength int
	contents      [][]byte
	nonce         string

	// Combined fields.
	data       []byte
	nonceBytes []byte

	limiter *rate.Limiter
}

// defaultRecoverLimiter throttles repeated passphrase guesses from a
// single interactive session: a local, in-process defense, not a
// substitute for rate limiting at a real network boundary (this tool has
// none).
func defaultRecoverLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(500*time.Millisecond), 5)
}

// Encrypt seals secret under a key derived from (title, passphrase) and
// splits the ciphertext into total shares, required of which recombine
// it. Returns the V1 wire-form JSON string for each share.
func Encrypt(secret, title, passphrase string, total, required int) ([]string, error) {
	ciphertext, nonce, err := envelope.Encrypt(secret, title, passphrase)
	if err != nil {
		return nil, translateEnvelopeError(err)
	}

	shares, err := shamir.Split(ciphertext, total, required)
	if err != nil {
		return nil, translateSplitError(err)
	}

	nonceB64 := base64.StdEncoding.EncodeToString(nonce)

	wire := make([]string, len(shares))
	for i, sh := range shares {
		w, err := shareformat.Encode(title, required, nonceB64, shamir.SplitBits, sh.ID, sh.Content)
		if err != nil {
			return nil, bananaerr.Wrap(bananaerr.ErrGeneral, "encode share: %v", err)
		}
		wire[i] = w
	}
	return wire, nil
}

// ParseShare decodes a raw share payload, translating any shareformat
// error into the matching pkg/errors sentinel.
func ParseShare(raw []byte) (*shareformat.Share, error) {
	share, err := shareformat.Parse(raw)
	if err != nil {
		return nil, translateParseError(err)
	}
	return share, nil
}

// Init constructs a ShareSet from the first collected share.
func Init(share *shareformat.Share) *ShareSet {
	return &ShareSet{
		version:        share.Version(),
		title:          share.Title(),
		requiredShards: share.RequiredShards(),
		state:          stateInProgress,
		bits:           share.Bits(),
		ids:            []uint32{share.ID()},
		contentLength:  len(share.Content()),
		contents:       [][]byte{share.Content()},
		nonce:          share.Nonce(),
		limiter:        defaultRecoverLimiter(),
	}
}

// Title returns the set's title, verbatim.
func (s *ShareSet) Title() string { return s.title }

// NextAction reports what the caller should do next.
func (s *ShareSet) NextAction() NextAction {
	if s.state == stateCombined {
		return NextAction{AskForPassword: true}
	}
	return NextAction{Have: len(s.ids), Need: s.requiredShards}
}

// TryAdd admits a new share into the set. Checks run in the fixed order:
// version, title, required shards, nonce, bits, id novelty, content
// length. Any mismatch fails without altering state. Once enough shares
// have been collected, the set eagerly combines and transitions to
// Combined; adding shares to an already-Combined set is rejected rather
// than silently ignored (see the package's design notes).
func (s *ShareSet) TryAdd(share *shareformat.Share) error {
	if s.state == stateCombined {
		return bananaerr.ErrSetAlreadyCombined
	}

	if share.Version() != s.version {
		return bananaerr.ErrShareVersionDifferent
	}
	if share.Title() != s.title {
		return bananaerr.ErrShareTitleDifferent
	}
	if share.RequiredShards() != s.requiredShards {
		return bananaerr.ErrShareRequiredShardsDifferent
	}
	if share.Nonce() != s.nonce {
		return bananaerr.ErrShareNonceDifferent
	}
	if share.Bits() != s.bits {
		return bananaerr.ErrShareBitsDifferent
	}
	for _, id := range s.ids {
		if id == share.ID() {
			return bananaerr.ErrShareAlreadyInSet
		}
	}
	if len(share.Content()) != s.contentLength {
		return bananaerr.ErrShareContentLengthDifferent
	}

	s.ids = append(s.ids, share.ID())
	s.contents = append(s.contents, share.Content())

	if len(s.ids) >= s.requiredShards {
		if err := s.combine(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ShareSet) combine() error {
	data, err := shamir.Combine(s.ids, s.contents, s.bits)
	if err != nil {
		return translateCombineError(err)
	}

	nonceBytes, err := decodeNonce(s.nonce)
	if err != nil {
		return err
	}

	s.data = data
	s.nonceBytes = nonceBytes
	s.state = stateCombined

	// InProgress-only fields are no longer needed; let them go.
	s.contents = nil
	s.ids = nil

	return nil
}

// RecoverWithPassphrase decrypts the combined ciphertext with the
// derived key, legal only once the set has reached Combined. A failed
// attempt leaves the set in Combined so the caller may retry with a
// different passphrase. ctx bounds the per-set passphrase-guess
// throttle, never the cryptographic work itself.
func (s *ShareSet) RecoverWithPassphrase(ctx context.Context, passphrase string) (string, error) {
	if s.state != stateCombined {
		return "", bananaerr.ErrNotReadyToDecode
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	secret, err := envelope.Decrypt(s.data, s.nonceBytes, s.title, passphrase)
	if err != nil {
		return "", translateEnvelopeError(err)
	}
	return secret, nil
}
