package shareformat

import "errors"

// Parse errors, one per spec share-wire-format failure mode.
var (
	ErrNotShareString             = errors.New("share payload is not valid UTF-8 text")
	ErrJSONParsing                = errors.New("unable to parse share as a JSON object")
	ErrVersionNotSupported        = errors.New("share version is not supported")
	ErrRequiredShardsNotSupported = errors.New("required shards field has an unsupported format")
	ErrParseBit                   = errors.New("unable to parse bits character as radix-36 digit")
	ErrBitsOutOfRange             = errors.New("bits value is outside the supported [3,20] range")
	ErrEmptyShare                 = errors.New("share body is empty")
	ErrShareTooShort              = errors.New("share content is too short to contain an id")
	ErrBodyNotBase64              = errors.New("share body is not valid base64")
	ErrUndefinedBodyNotHex        = errors.New("share body is not valid hex")
)
