package cli

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/mrz1836/bananasplit/internal/secure"
	bananaerr "github.com/mrz1836/bananasplit/pkg/errors"
)

// out is a helper for CLI output that ignores write errors (standard pattern for CLI tools).
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}

// promptHidden prompts for input with hidden (non-echoed) terminal entry.
func promptHidden(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	input, err := term.ReadPassword(syscall.Stdin)
	outln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return input, nil
}

// promptSecret prompts for the secret to split. Input is hidden since the
// secret is exactly the thing bananasplit exists to protect.
func promptSecret() (string, error) {
	secret, err := promptHidden("Enter the secret to split: ")
	if err != nil {
		return "", err
	}
	defer secure.Zero(secret)

	if len(secret) == 0 {
		return "", bananaerr.WithSuggestion(
			bananaerr.ErrInvalidInput,
			"the secret cannot be empty",
		)
	}

	return string(secret), nil
}

// promptNewPassphrase prompts for a new share passphrase with confirmation.
func promptNewPassphrase() (string, error) {
	passphrase, err := promptHidden("Enter a passphrase to protect the shares: ")
	if err != nil {
		return "", err
	}

	if len(passphrase) < 8 {
		secure.Zero(passphrase)
		return "", bananaerr.WithSuggestion(
			bananaerr.ErrInvalidInput,
			"passphrase must be at least 8 characters",
		)
	}

	confirm, err := promptHidden("Confirm passphrase: ")
	if err != nil {
		secure.Zero(passphrase)
		return "", err
	}
	defer secure.Zero(confirm)

	if string(passphrase) != string(confirm) {
		secure.Zero(passphrase)
		return "", bananaerr.WithSuggestion(
			bananaerr.ErrInvalidInput,
			"passphrases do not match",
		)
	}

	result := string(passphrase)
	secure.Zero(passphrase)
	return result, nil
}

// promptExistingPassphrase prompts for the passphrase used to recover a share set.
func promptExistingPassphrase() (string, error) {
	passphrase, err := promptHidden("Enter the passphrase protecting these shares: ")
	if err != nil {
		return "", err
	}
	defer secure.Zero(passphrase)

	return string(passphrase), nil
}

// Indirections over the prompt functions above, so commands can be tested
// without a real terminal.
//
//nolint:gochecknoglobals // swappable for tests, same pattern as the rest of this package
var (
	promptSecretFn             = promptSecret
	promptNewPassphraseFn      = promptNewPassphrase
	promptExistingPassphraseFn = promptExistingPassphrase
)
