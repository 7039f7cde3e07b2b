// Package errors provides structured error handling for BananaSplit.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes for the CLI.
const (
	ExitSuccess    = 0 // Successful execution
	ExitGeneral    = 1 // General/unknown error
	ExitInput      = 2 // Invalid input (malformed share, bad flag combination)
	ExitAuth       = 3 // Wrong passphrase / decryption failed
	ExitNotFound   = 4 // Resource not found
	ExitIncomplete = 5 // Not enough shares collected yet
)

// BananaError is the structured error type for BananaSplit.
type BananaError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *BananaError) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *BananaError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for BananaError, comparing by Code.
func (e *BananaError) Is(target error) bool {
	var t *BananaError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors, one per spec.md §7 error kind.
var (
	ErrGeneral = &BananaError{Code: "GENERAL_ERROR", Message: "an error occurred", ExitCode: ExitGeneral}

	// Parse errors (Share.Parse).
	ErrNotShareString             = &BananaError{Code: "NOT_SHARE_STRING", Message: "share payload is not valid UTF-8 text", ExitCode: ExitInput}
	ErrJSONParsing                = &BananaError{Code: "JSON_PARSING", Message: "unable to parse share as a JSON object", ExitCode: ExitInput}
	ErrVersionNotSupported        = &BananaError{Code: "VERSION_NOT_SUPPORTED", Message: "share version is not supported", ExitCode: ExitInput}
	ErrRequiredShardsNotSupported = &BananaError{Code: "REQUIRED_SHARDS_NOT_SUPPORTED", Message: "required shards field has an unsupported format", ExitCode: ExitInput}
	ErrParseBit                   = &BananaError{Code: "PARSE_BIT", Message: "unable to parse bits character as radix-36 digit", ExitCode: ExitInput}
	ErrBitsOutOfRange             = &BananaError{Code: "BITS_OUT_OF_RANGE", Message: "bits value is outside the supported [3,20] range", ExitCode: ExitInput}
	ErrEmptyShare                 = &BananaError{Code: "EMPTY_SHARE", Message: "share body is empty", ExitCode: ExitInput}
	ErrShareTooShort              = &BananaError{Code: "SHARE_TOO_SHORT", Message: "share content is too short to contain an id", ExitCode: ExitInput}
	ErrBodyNotBase64              = &BananaError{Code: "BODY_NOT_BASE64", Message: "share body is not valid base64", ExitCode: ExitInput}
	ErrUndefinedBodyNotHex        = &BananaError{Code: "UNDEFINED_BODY_NOT_HEX", Message: "share body is not valid hex", ExitCode: ExitInput}
	ErrNonceNotBase64             = &BananaError{Code: "NONCE_NOT_BASE64", Message: "nonce is not valid base64", ExitCode: ExitInput}

	// Set admission errors (ShareSet.TryAdd).
	ErrShareVersionDifferent        = &BananaError{Code: "SHARE_VERSION_DIFFERENT", Message: "share version does not match the set", ExitCode: ExitInput}
	ErrShareTitleDifferent          = &BananaError{Code: "SHARE_TITLE_DIFFERENT", Message: "share title does not match the set", ExitCode: ExitInput}
	ErrShareRequiredShardsDifferent = &BananaError{Code: "SHARE_REQUIRED_SHARDS_DIFFERENT", Message: "share required-shards value does not match the set", ExitCode: ExitInput}
	ErrShareNonceDifferent          = &BananaError{Code: "SHARE_NONCE_DIFFERENT", Message: "share nonce does not match the set", ExitCode: ExitInput}
	ErrShareBitsDifferent           = &BananaError{Code: "SHARE_BITS_DIFFERENT", Message: "share bits value does not match the set", ExitCode: ExitInput}
	ErrShareAlreadyInSet            = &BananaError{Code: "SHARE_ALREADY_IN_SET", Message: "share id is already present in the set", ExitCode: ExitInput}
	ErrShareContentLengthDifferent  = &BananaError{Code: "SHARE_CONTENT_LENGTH_DIFFERENT", Message: "share content length does not match the set", ExitCode: ExitInput}
	ErrSetAlreadyCombined           = &BananaError{Code: "SET_ALREADY_COMBINED", Message: "share set has already reached its threshold", ExitCode: ExitInput}

	// Lifecycle errors.
	ErrNotReadyToDecode = &BananaError{Code: "NOT_READY_TO_DECODE", Message: "share set has not yet collected enough shares", ExitCode: ExitIncomplete}

	// Math errors.
	ErrLogOutOfRange = &BananaError{Code: "LOG_OUT_OF_RANGE", Message: "field value out of range, share is likely damaged", ExitCode: ExitInput}

	// Crypto errors.
	ErrScryptFailed           = &BananaError{Code: "SCRYPT_FAILED", Message: "scrypt key derivation failed", ExitCode: ExitGeneral}
	ErrEncryptionFailed       = &BananaError{Code: "ENCRYPTION_FAILED", Message: "encryption failed", ExitCode: ExitGeneral}
	ErrDecodingFailed         = &BananaError{Code: "DECODING_FAILED", Message: "unable to decode the secret - wrong passphrase or corrupted shares", ExitCode: ExitAuth}
	ErrDecodedSecretNotString = &BananaError{Code: "DECODED_SECRET_NOT_STRING", Message: "decoded secret is not valid UTF-8 text", ExitCode: ExitAuth}

	// Splitter errors.
	ErrTooFewShares  = &BananaError{Code: "TOO_FEW_SHARES", Message: "total shares must be at least the threshold and at least 2", ExitCode: ExitInput}
	ErrTooManyShares = &BananaError{Code: "TOO_MANY_SHARES", Message: "total shares exceeds the maximum supported by this bit width", ExitCode: ExitInput}

	// Generic CLI-facing errors.
	ErrInvalidInput = &BananaError{Code: "INVALID_INPUT", Message: "invalid input", ExitCode: ExitInput}
	ErrNotFound     = &BananaError{Code: "NOT_FOUND", Message: "resource not found", ExitCode: ExitNotFound}
)

// New creates a new BananaError with the given code and message.
func New(code, message string) *BananaError {
	return &BananaError{Code: code, Message: message, ExitCode: ExitGeneral}
}

// Wrap wraps an error with additional context, preserving its code and exit status.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var be *BananaError
	if errors.As(err, &be) {
		return &BananaError{
			Code:       be.Code,
			Message:    fmt.Sprintf("%s: %s", msg, be.Message),
			Details:    be.Details,
			Suggestion: be.Suggestion,
			Cause:      err,
			ExitCode:   be.ExitCode,
		}
	}

	return &BananaError{Code: "GENERAL_ERROR", Message: msg, Cause: err, ExitCode: ExitGeneral}
}

// WithDetails attaches structured context to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var be *BananaError
	if errors.As(err, &be) {
		return &BananaError{
			Code:       be.Code,
			Message:    be.Message,
			Details:    details,
			Suggestion: be.Suggestion,
			Cause:      be.Cause,
			ExitCode:   be.ExitCode,
		}
	}

	return &BananaError{Code: "GENERAL_ERROR", Message: err.Error(), Details: details, Cause: err, ExitCode: ExitGeneral}
}

// WithSuggestion attaches an actionable suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var be *BananaError
	if errors.As(err, &be) {
		return &BananaError{
			Code:       be.Code,
			Message:    be.Message,
			Details:    be.Details,
			Suggestion: suggestion,
			Cause:      be.Cause,
			ExitCode:   be.ExitCode,
		}
	}

	return &BananaError{Code: "GENERAL_ERROR", Message: err.Error(), Suggestion: suggestion, Cause: err, ExitCode: ExitGeneral}
}

// ExitCode returns the appropriate process exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var be *BananaError
	if errors.As(err, &be) {
		return be.ExitCode
	}

	return ExitGeneral
}

// Code returns the machine-readable code for an error.
func Code(err error) string {
	var be *BananaError
	if errors.As(err, &be) {
		return be.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
