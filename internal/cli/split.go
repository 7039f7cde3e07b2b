package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/bananasplit/internal/mnemonic"
	"github.com/mrz1836/bananasplit/internal/output"
	"github.com/mrz1836/bananasplit/internal/shareset"
	bananaerr "github.com/mrz1836/bananasplit/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	splitTotal     int
	splitThreshold int
	splitTitle     string
	splitSecret    string
)

// splitResult is the JSON shape emitted by `split --output json`.
type splitResult struct {
	Title     string   `json:"title"`
	Total     int      `json:"total"`
	Threshold int      `json:"threshold"`
	Shares    []string `json:"shares"`
}

// splitCmd splits a secret into encrypted Shamir shares.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a secret into encrypted shares",
	Long: `Split encrypts a secret with a passphrase and divides the encrypted
payload into a number of shares using Shamir's Secret Sharing. Any
"threshold" of the "total" shares, plus the passphrase, are enough to
recover the original secret. Fewer shares reveal nothing.`,
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, _ []string) error {
	if splitThreshold < 2 {
		return bananaerr.WithSuggestion(
			bananaerr.ErrInvalidInput,
			"threshold must be at least 2",
		)
	}
	if splitTotal < splitThreshold {
		return bananaerr.WithSuggestion(
			bananaerr.ErrInvalidInput,
			"total shares must be greater than or equal to threshold",
		)
	}

	title := strings.TrimSpace(splitTitle)
	if title == "" {
		title = "bananasplit"
	}

	secret := splitSecret
	if secret == "" {
		var err error
		secret, err = promptSecretFn()
		if err != nil {
			return err
		}
	}

	warnIfNotMnemonic(cmd, secret)

	passphrase, err := promptNewPassphraseFn()
	if err != nil {
		return err
	}

	shares, err := shareset.Encrypt(secret, title, passphrase, splitTotal, splitThreshold)
	logSplitOutcome(cmd, title, err)
	if err != nil {
		return err
	}

	return displayShares(cmd, title, shares, splitThreshold)
}

// logSplitOutcome records that a split was attempted, never the secret or
// passphrase involved.
func logSplitOutcome(cmd *cobra.Command, title string, err error) {
	ctx := GetCmdContext(cmd)
	if ctx == nil || ctx.Log == nil {
		return
	}
	ctx.Log.ShareSplit(title, splitTotal, splitThreshold, err)
}

// warnIfNotMnemonic surfaces a non-blocking BIP39 checksum warning. It never
// stops the split - a failed check might just mean the secret isn't a
// mnemonic at all.
func warnIfNotMnemonic(cmd *cobra.Command, secret string) {
	checked, ok, detail := mnemonic.Check(secret)
	if !checked || ok {
		return
	}

	output.Warn(cmd.OutOrStderr(), "this looks like a BIP39 seed phrase, but it failed validation:")
	out(cmd.OutOrStderr(), "  %s\n\n", detail)
}

// displayShares renders the generated shares, as JSON if the active output
// format calls for it, or as a share-by-share table otherwise.
func displayShares(cmd *cobra.Command, title string, shares []string, threshold int) error {
	ctx := GetCmdContext(cmd)
	if ctx != nil && ctx.Fmt != nil && ctx.Fmt.Format() == output.FormatJSON {
		return output.WriteJSON(cmd.OutOrStdout(), splitResult{
			Title:     title,
			Total:     len(shares),
			Threshold: threshold,
			Shares:    shares,
		})
	}

	w := cmd.OutOrStdout()
	output.Successf(w, "%d shares generated, %d needed to recover", len(shares), threshold)
	outln(w, "Store each share somewhere different. Losing more than")
	outln(w, fmt.Sprintf("%d shares makes the secret unrecoverable.", len(shares)-threshold))
	outln(w)

	return output.NewShareTable(shares).Render(w)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().IntVar(&splitTotal, "total", 5, "total number of shares to generate")
	splitCmd.Flags().IntVar(&splitThreshold, "threshold", 3, "number of shares required to recover the secret")
	splitCmd.Flags().StringVar(&splitTitle, "title", "", "a label embedded in every share, shown during recovery")
	splitCmd.Flags().StringVar(&splitSecret, "secret", "", "secret to split (prompted for if omitted)")
}
