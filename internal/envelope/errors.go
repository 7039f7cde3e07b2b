package envelope

import "errors"

var (
	// ErrScryptFailed is returned when scrypt key derivation fails.
	ErrScryptFailed = errors.New("scrypt key derivation failed")

	// ErrEncryptionFailed is returned when sealing the plaintext fails.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecodingFailed is returned when opening the ciphertext fails:
	// wrong passphrase, tampering, or truncation. Never distinguished
	// from each other — that would leak an oracle.
	ErrDecodingFailed = errors.New("unable to decode the secret - wrong passphrase or corrupted shares")

	// ErrDecodedSecretNotString is returned when the decrypted plaintext
	// is not valid UTF-8.
	ErrDecodedSecretNotString = errors.New("decoded secret is not valid UTF-8 text")

	// ErrNonceLength is returned when a stored nonce is not 24 bytes.
	ErrNonceLength = errors.New("nonce must be exactly 24 bytes")
)
