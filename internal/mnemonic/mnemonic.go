// Package mnemonic offers a best-effort BIP39 checksum check for secrets
// that look like seed phrases. It never blocks a split: a failed or
// inconclusive check is surfaced to the caller as advice, not an error.
package mnemonic

import (
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// wordCounts lists the BIP39 mnemonic lengths this check recognizes.
var wordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

// LooksLikeMnemonic reports whether secret has the shape of a BIP39
// mnemonic: the right number of whitespace-separated words. It does not
// validate the words or the checksum.
func LooksLikeMnemonic(secret string) bool {
	words := strings.Fields(secret)
	return wordCounts[len(words)]
}

// Check validates secret as a BIP39 mnemonic phrase. ok is true only when
// the phrase has a valid length, every word is in the wordlist, and the
// checksum verifies. detail explains a failure in terms a user splitting
// a secret can act on; it is empty when ok is true or when secret doesn't
// look like a mnemonic at all (Check is then a no-op: checked is false).
func Check(secret string) (checked, ok bool, detail string) {
	if !LooksLikeMnemonic(secret) {
		return false, false, ""
	}

	normalized := strings.ToLower(strings.TrimSpace(secret))
	words := strings.Fields(normalized)

	for _, w := range words {
		if !isKnownWord(w) {
			return true, false, "word \"" + w + "\" is not in the BIP39 wordlist"
		}
	}

	if !bip39.IsMnemonicValid(normalized) {
		return true, false, "the words are valid but the checksum does not match; double-check the word order"
	}

	return true, true, ""
}

func isKnownWord(word string) bool {
	for _, w := range bip39.GetWordList() {
		if w == word {
			return true
		}
	}
	return false
}
