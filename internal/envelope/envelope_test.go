package envelope

import (
	"bytes"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/nacl/secretbox"
)

func TestSalt_isSHA512OfTitleVerbatim(t *testing.T) {
	t.Parallel()

	title := `a "quoted" title`
	want := sha512.Sum512([]byte(title))
	assert.Equal(t, want[:], Salt(title))
}

func TestEncryptDecrypt_roundTrip(t *testing.T) {
	SetWorkFactorForTests(10)
	t.Cleanup(ResetWorkFactor)

	ciphertext, nonce, err := Encrypt("a very secret message", "My Title", "correct horse battery staple")
	require.NoError(t, err)
	require.Len(t, nonce, NonceSize)

	got, err := Decrypt(ciphertext, nonce, "My Title", "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, "a very secret message", got)
}

func TestEncrypt_noncesAreUnique(t *testing.T) {
	SetWorkFactorForTests(10)
	t.Cleanup(ResetWorkFactor)

	_, nonce1, err := Encrypt("secret", "title", "passphrase")
	require.NoError(t, err)
	_, nonce2, err := Encrypt("secret", "title", "passphrase")
	require.NoError(t, err)

	assert.False(t, bytes.Equal(nonce1, nonce2))
}

func TestDecrypt_wrongPassphraseFails(t *testing.T) {
	SetWorkFactorForTests(10)
	t.Cleanup(ResetWorkFactor)

	ciphertext, nonce, err := Encrypt("secret", "title", "right-passphrase")
	require.NoError(t, err)

	_, err = Decrypt(ciphertext, nonce, "title", "wrong-passphrase")
	assert.ErrorIs(t, err, ErrDecodingFailed)
}

func TestDecrypt_wrongTitleFails(t *testing.T) {
	SetWorkFactorForTests(10)
	t.Cleanup(ResetWorkFactor)

	ciphertext, nonce, err := Encrypt("secret", "title-a", "passphrase")
	require.NoError(t, err)

	_, err = Decrypt(ciphertext, nonce, "title-b", "passphrase")
	assert.ErrorIs(t, err, ErrDecodingFailed)
}

func TestDecrypt_tamperedCiphertextFails(t *testing.T) {
	SetWorkFactorForTests(10)
	t.Cleanup(ResetWorkFactor)

	ciphertext, nonce, err := Encrypt("secret", "title", "passphrase")
	require.NoError(t, err)

	tampered := make([]byte, len(ciphertext))
	copy(tampered, ciphertext)
	tampered[0] ^= 0xFF

	_, err = Decrypt(tampered, nonce, "title", "passphrase")
	assert.ErrorIs(t, err, ErrDecodingFailed)
}

func TestDecrypt_invalidNonceLength(t *testing.T) {
	t.Parallel()

	_, err := Decrypt([]byte("whatever"), []byte("tooshort"), "title", "passphrase")
	assert.ErrorIs(t, err, ErrNonceLength)
}

func TestDecrypt_nonUTF8PlaintextRejected(t *testing.T) {
	SetWorkFactorForTests(10)
	t.Cleanup(ResetWorkFactor)

	key, err := deriveKey("passphrase", Salt("title"))
	require.NoError(t, err)
	defer key.Destroy()

	var keyArr [KeySize]byte
	copy(keyArr[:], key.Bytes())

	nonce := make([]byte, NonceSize)
	var nonceArr [NonceSize]byte
	copy(nonceArr[:], nonce)

	invalidUTF8 := []byte{0xff, 0xfe, 0xfd}
	sealed := secretbox.Seal(nil, invalidUTF8, &nonceArr, &keyArr)

	_, err = Decrypt(sealed, nonce, "title", "passphrase")
	assert.ErrorIs(t, err, ErrDecodedSecretNotString)
}

func TestEncrypt_defaultWorkFactorMatchesProtocol(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping real N=2^15 scrypt derivation in short mode")
	}

	require.Equal(t, 15, currentLogN())

	ciphertext, nonce, err := Encrypt("secret", "title", "passphrase")
	require.NoError(t, err)

	got, err := Decrypt(ciphertext, nonce, "title", "passphrase")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}
