package mnemonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const validTwelve = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

func TestLooksLikeMnemonic(t *testing.T) {
	t.Parallel()

	assert.True(t, LooksLikeMnemonic(validTwelve))
	assert.False(t, LooksLikeMnemonic("it was the butler!"))
	assert.False(t, LooksLikeMnemonic(""))
}

func TestCheck_validMnemonic(t *testing.T) {
	t.Parallel()

	checked, ok, detail := Check(validTwelve)
	assert.True(t, checked)
	assert.True(t, ok)
	assert.Empty(t, detail)
}

func TestCheck_notAMnemonic(t *testing.T) {
	t.Parallel()

	checked, ok, detail := Check("it was the butler!")
	assert.False(t, checked)
	assert.False(t, ok)
	assert.Empty(t, detail)
}

func TestCheck_unknownWord(t *testing.T) {
	t.Parallel()

	words := "bottom drive obey lake curtain smoke basket hold race lonely fit zzzzznotaword"
	checked, ok, detail := Check(words)
	assert.True(t, checked)
	assert.False(t, ok)
	assert.Contains(t, detail, "not in the BIP39 wordlist")
}

func TestCheck_badChecksum(t *testing.T) {
	t.Parallel()

	// Same twelve valid words, reordered: still a mnemonic-shaped phrase
	// but the checksum word no longer matches its entropy.
	words := "walk fit lonely race hold basket smoke curtain lake obey drive bottom"
	checked, ok, detail := Check(words)
	assert.True(t, checked)
	assert.False(t, ok)
	assert.Contains(t, detail, "checksum")
}

func TestCheck_caseAndWhitespaceInsensitive(t *testing.T) {
	t.Parallel()

	checked, ok, _ := Check("  BOTTOM Drive obey LAKE curtain smoke basket hold race lonely fit walk  ")
	assert.True(t, checked)
	assert.True(t, ok)
}
