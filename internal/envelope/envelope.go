// Package envelope implements the passphrase-based encryption layer: a
// title-derived salt, scrypt key derivation, and XSalsa20-Poly1305
// authenticated encryption of the secret.
package envelope

import (
	"crypto/sha512"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"github.com/mrz1836/bananasplit/internal/secure"
)

// NonceSize is the XSalsa20-Poly1305 nonce length in bytes.
const NonceSize = 24

// KeySize is the scrypt output length and secretbox key size in bytes.
// Pinned to a literal rather than a library constant (e.g. scrypt's
// RECOMMENDED_LEN) on both the encrypt and recover paths, so a future
// library default change can never desynchronize the two.
const KeySize = 32

// defaultLogN is log2(N) for the scrypt work factor mandated by the
// protocol: N=2^15, r=8, p=1.
const defaultLogN = 15

//nolint:gochecknoglobals // package-level work-factor override, tests only
var logNOverride atomic.Int32

// SetWorkFactorForTests overrides log2(N) for scrypt. Using anything but
// the protocol default of 15 makes the resulting envelope wire-incompatible
// with the reference implementation and with shares produced elsewhere —
// call this only in tests that don't need cross-implementation vectors,
// and never in the CLI's split/combine paths.
func SetWorkFactorForTests(logN int) {
	logNOverride.Store(int32(logN))
}

// ResetWorkFactor restores the protocol-mandated scrypt work factor.
func ResetWorkFactor() {
	logNOverride.Store(defaultLogN)
}

func currentLogN() int {
	if v := logNOverride.Load(); v != 0 {
		return int(v)
	}
	return defaultLogN
}

// Salt hashes a title (used verbatim, never JSON-escaped) into the
// 64-byte scrypt salt.
func Salt(title string) []byte {
	sum := sha512.Sum512([]byte(title))
	return sum[:]
}

// deriveKey runs scrypt over passphrase and salt, returning the 32-byte
// key in locked, zero-on-release memory.
func deriveKey(passphrase string, salt []byte) (*secure.Bytes, error) {
	n := 1 << currentLogN()
	raw, err := scrypt.Key([]byte(passphrase), salt, n, 8, 1, KeySize)
	if err != nil {
		return nil, ErrScryptFailed
	}
	key := secure.FromSlice(raw)
	secure.Zero(raw)
	return key, nil
}

// Encrypt derives a key from (passphrase, title) and seals secret under a
// fresh random nonce. Returns the ciphertext (with appended Poly1305 tag)
// and the nonce.
func Encrypt(secret, title, passphrase string) (ciphertext, nonce []byte, err error) {
	key, err := deriveKey(passphrase, Salt(title))
	if err != nil {
		return nil, nil, err
	}
	defer key.Destroy()

	nonce, err = secure.RandomBytes(NonceSize)
	if err != nil {
		return nil, nil, ErrEncryptionFailed
	}

	var keyArr [KeySize]byte
	copy(keyArr[:], key.Bytes())
	defer secure.Zero(keyArr[:])

	var nonceArr [NonceSize]byte
	copy(nonceArr[:], nonce)

	sealed := secretbox.Seal(nil, []byte(secret), &nonceArr, &keyArr)
	return sealed, nonce, nil
}

// Decrypt derives the key from (passphrase, title) and opens ciphertext
// under nonce, returning the recovered secret as a string. On success the
// decrypted bytes must decode as UTF-8, or ErrDecodedSecretNotString is
// returned and the failed plaintext is zeroed before release.
func Decrypt(ciphertext, nonce []byte, title, passphrase string) (string, error) {
	if len(nonce) != NonceSize {
		return "", ErrNonceLength
	}

	key, err := deriveKey(passphrase, Salt(title))
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	var keyArr [KeySize]byte
	copy(keyArr[:], key.Bytes())
	defer secure.Zero(keyArr[:])

	var nonceArr [NonceSize]byte
	copy(nonceArr[:], nonce)

	plaintext, ok := secretbox.Open(nil, ciphertext, &nonceArr, &keyArr)
	if !ok {
		return "", ErrDecodingFailed
	}

	if !utf8.Valid(plaintext) {
		secure.Zero(plaintext)
		return "", ErrDecodedSecretNotString
	}

	secret := string(plaintext)
	secure.Zero(plaintext)
	return secret, nil
}
