// Package shareformat encodes and decodes a single banana split share
// between its wire form (a JSON blob with a radix-36/base64 body) and an
// in-memory record.
package shareformat

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"unicode/utf8"
)

// Version identifies the share wire format. Undefined is the legacy
// hex-bodied form with no "v" key; V1 is the current base64-bodied form.
type Version int

const (
	Undefined Version = iota
	V1
)

const (
	minBits = 3
	maxBits = 20
)

// Share is a single decoded share: one point (id, content) of the secret
// sharing polynomial, plus the metadata needed to group it with its peers.
type Share struct {
	version        Version
	title          string
	requiredShards int
	nonce          string // base64-encoded, as received on the wire
	bits           uint32
	id             uint32
	content        []byte
}

// wireShare mirrors the exact JSON shape of a share: {v,t,r,n,d}.
type wireShare struct {
	V *json.Number `json:"v,omitempty"`
	T string       `json:"t"`
	R json.Number  `json:"r"`
	N string       `json:"n"`
	D string       `json:"d"`
}

// Version reports whether the share is the legacy Undefined form or V1.
func (s *Share) Version() Version { return s.version }

// Title returns the share's title, verbatim (never JSON-escaped).
func (s *Share) Title() string { return s.title }

// RequiredShards returns the threshold K embedded in the share.
func (s *Share) RequiredShards() int { return s.requiredShards }

// Nonce returns the base64-encoded nonce as received on the wire.
func (s *Share) Nonce() string { return s.nonce }

// Bits returns the field width n this share's content was split under.
func (s *Share) Bits() uint32 { return s.bits }

// ID returns the share's x-coordinate in the Shamir polynomial.
func (s *Share) ID() uint32 { return s.id }

// Content returns the share's y-values, one per byte of the split ciphertext.
func (s *Share) Content() []byte { return s.content }

// Parse decodes a share from its raw wire bytes (the UTF-8 JSON payload
// recovered from, e.g., a scanned QR code).
func Parse(raw []byte) (*Share, error) {
	if !utf8.Valid(raw) {
		return nil, ErrNotShareString
	}

	var ws wireShare
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, ErrJSONParsing
	}

	version, err := parseVersion(ws.V)
	if err != nil {
		return nil, err
	}

	requiredShards, err := parseRequiredShards(ws.R)
	if err != nil {
		return nil, err
	}

	bits, body, err := splitBitsAndBody(ws.D)
	if err != nil {
		return nil, err
	}

	content, err := decodeBody(version, body)
	if err != nil {
		return nil, err
	}

	idLen := idByteLength(bits)
	if len(content) < idLen {
		return nil, ErrShareTooShort
	}

	id := decodeID(content[:idLen])
	content = content[idLen:]

	return &Share{
		version:        version,
		title:          ws.T,
		requiredShards: requiredShards,
		nonce:          ws.N,
		bits:           bits,
		id:             id,
		content:        content,
	}, nil
}

// Encode serializes a share back to its V1 wire form.
func Encode(title string, requiredShards int, nonce string, bits uint32, id uint32, content []byte) (string, error) {
	idLen := idByteLength(bits)
	idBytes := encodeID(id, idLen)

	body := make([]byte, 0, len(idBytes)+len(content))
	body = append(body, idBytes...)
	body = append(body, content...)

	d := strconv.FormatInt(int64(bits), 36) + base64.StdEncoding.EncodeToString(body)

	one := json.Number("1")
	ws := wireShare{
		V: &one,
		T: title,
		R: json.Number(strconv.Itoa(requiredShards)),
		N: nonce,
		D: d,
	}

	out, err := json.Marshal(ws)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func parseVersion(v *json.Number) (Version, error) {
	if v == nil {
		return Undefined, nil
	}
	n, err := v.Int64()
	if err != nil || n != 1 {
		return 0, ErrVersionNotSupported
	}
	return V1, nil
}

func parseRequiredShards(r json.Number) (int, error) {
	n, err := r.Int64()
	if err != nil || n <= 0 {
		return 0, ErrRequiredShardsNotSupported
	}
	return int(n), nil
}

func splitBitsAndBody(d string) (uint32, string, error) {
	if len(d) == 0 {
		return 0, "", ErrEmptyShare
	}

	digit, ok := radix36Digit(d[0])
	if !ok {
		return 0, "", ErrParseBit
	}
	if digit < minBits || digit > maxBits {
		return 0, "", ErrBitsOutOfRange
	}

	return uint32(digit), d[1:], nil
}

func decodeBody(version Version, body string) ([]byte, error) {
	if version == Undefined {
		content, err := hex.DecodeString(body)
		if err != nil {
			return nil, ErrUndefinedBodyNotHex
		}
		return content, nil
	}

	content, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, ErrBodyNotBase64
	}
	return content, nil
}

// radix36Digit parses a single ASCII character as a base-36 digit,
// matching Rust's char::to_digit(36) (case-insensitive).
func radix36Digit(c byte) (int, bool) {
	v, err := strconv.ParseInt(string(c), 36, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// idByteLength returns the number of bytes needed to hold the largest
// possible share id for this bit width: ceil(log_256(2^bits - 1)).
func idByteLength(bits uint32) int {
	maxID := uint32(1)<<bits - 1
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], maxID)

	i := 0
	for i < 4 && b[i] == 0 {
		i++
	}
	return 4 - i
}

// decodeID reconstructs a share id by left-padding its big-endian bytes to
// 4 bytes and reading a big-endian uint32.
func decodeID(idBytes []byte) uint32 {
	var b [4]byte
	copy(b[4-len(idBytes):], idBytes)
	return binary.BigEndian.Uint32(b[:])
}

// encodeID is the inverse of decodeID: the low idLen bytes of id's
// big-endian 4-byte form.
func encodeID(id uint32, idLen int) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], id)
	return b[4-idLen:]
}
