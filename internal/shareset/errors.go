package shareset

import (
	"encoding/base64"
	"errors"

	bananaerr "github.com/mrz1836/bananasplit/pkg/errors"

	"github.com/mrz1836/bananasplit/internal/envelope"
	"github.com/mrz1836/bananasplit/internal/gf"
	"github.com/mrz1836/bananasplit/internal/shamir"
	"github.com/mrz1836/bananasplit/internal/shareformat"
)

// translateParseError maps a shareformat.Parse failure onto the matching
// pkg/errors sentinel so callers only ever see BananaError at this
// boundary.
func translateParseError(err error) error {
	switch {
	case errors.Is(err, shareformat.ErrNotShareString):
		return bananaerr.ErrNotShareString
	case errors.Is(err, shareformat.ErrJSONParsing):
		return bananaerr.ErrJSONParsing
	case errors.Is(err, shareformat.ErrVersionNotSupported):
		return bananaerr.ErrVersionNotSupported
	case errors.Is(err, shareformat.ErrRequiredShardsNotSupported):
		return bananaerr.ErrRequiredShardsNotSupported
	case errors.Is(err, shareformat.ErrParseBit):
		return bananaerr.ErrParseBit
	case errors.Is(err, shareformat.ErrBitsOutOfRange):
		return bananaerr.ErrBitsOutOfRange
	case errors.Is(err, shareformat.ErrEmptyShare):
		return bananaerr.ErrEmptyShare
	case errors.Is(err, shareformat.ErrShareTooShort):
		return bananaerr.ErrShareTooShort
	case errors.Is(err, shareformat.ErrBodyNotBase64):
		return bananaerr.ErrBodyNotBase64
	case errors.Is(err, shareformat.ErrUndefinedBodyNotHex):
		return bananaerr.ErrUndefinedBodyNotHex
	default:
		return bananaerr.Wrap(bananaerr.ErrGeneral, "parse share: %v", err)
	}
}

// translateCombineError maps a shamir.Combine failure (including the
// gf errors it can surface) onto the matching pkg/errors sentinel.
func translateCombineError(err error) error {
	switch {
	case errors.Is(err, gf.ErrLogOutOfRange):
		return bananaerr.ErrLogOutOfRange
	case errors.Is(err, gf.ErrBitsOutOfRange):
		return bananaerr.ErrBitsOutOfRange
	case errors.Is(err, shamir.ErrPaddingMarkerNotFound):
		// Not a distinct spec error kind: the closest documented
		// meaning is the same one LogOutOfRange carries (damaged share).
		return bananaerr.ErrLogOutOfRange
	case errors.Is(err, shamir.ErrNoShares):
		return bananaerr.Wrap(bananaerr.ErrGeneral, "combine: %v", err)
	default:
		return bananaerr.Wrap(bananaerr.ErrGeneral, "combine: %v", err)
	}
}

// translateEnvelopeError maps an envelope.Encrypt or envelope.Decrypt
// failure onto the matching pkg/errors sentinel.
func translateEnvelopeError(err error) error {
	switch {
	case errors.Is(err, envelope.ErrScryptFailed):
		return bananaerr.ErrScryptFailed
	case errors.Is(err, envelope.ErrEncryptionFailed):
		return bananaerr.ErrEncryptionFailed
	case errors.Is(err, envelope.ErrDecodingFailed):
		return bananaerr.ErrDecodingFailed
	case errors.Is(err, envelope.ErrDecodedSecretNotString):
		return bananaerr.ErrDecodedSecretNotString
	case errors.Is(err, envelope.ErrNonceLength):
		return bananaerr.ErrNonceNotBase64
	default:
		return bananaerr.Wrap(bananaerr.ErrGeneral, "recover: %v", err)
	}
}

// translateSplitError maps a shamir.Split failure onto the matching
// pkg/errors sentinel.
func translateSplitError(err error) error {
	switch {
	case errors.Is(err, shamir.ErrTooFewShares):
		return bananaerr.ErrTooFewShares
	case errors.Is(err, shamir.ErrTooManyShares):
		return bananaerr.ErrTooManyShares
	default:
		return bananaerr.Wrap(bananaerr.ErrGeneral, "split: %v", err)
	}
}

func decodeNonce(nonce string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(nonce)
	if err != nil {
		return nil, bananaerr.ErrNonceNotBase64
	}
	return b, nil
}
