package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/bananasplit/internal/output"
	"github.com/mrz1836/bananasplit/internal/shareset"
)

// ErrMinSharesRequired is returned when fewer than two shares are entered.
var ErrMinSharesRequired = errors.New("at least 2 shares are required")

// recoverTimeout bounds the passphrase-guess throttle wait inside
// RecoverWithPassphrase, never the scrypt/AEAD work itself.
const recoverTimeout = 30 * time.Second

// combineResult is the JSON shape emitted by `combine --output json`.
type combineResult struct {
	Title  string `json:"title"`
	Secret string `json:"secret"`
}

// combineCmd collects shares interactively and recovers the original secret.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Recover a secret from its shares",
	Long: `Combine reads shares one per line from stdin until enough have been
collected to reach the threshold embedded in the shares themselves, then
prompts for the passphrase and recovers the original secret.`,
	RunE: runCombine,
}

func runCombine(cmd *cobra.Command, _ []string) error {
	set, err := collectShares(cmd)
	if err != nil {
		return err
	}

	passphrase, err := promptExistingPassphraseFn()
	if err != nil {
		return err
	}

	ctx, cancel := recoverContext(cmd, recoverTimeout)
	defer cancel()

	secret, err := set.RecoverWithPassphrase(ctx, passphrase)
	logRecoverOutcome(cmd, set.Title(), err)
	if err != nil {
		return err
	}

	return displaySecret(cmd, set.Title(), secret)
}

// logRecoverOutcome records that a recovery was attempted, never the
// passphrase or recovered secret.
func logRecoverOutcome(cmd *cobra.Command, title string, err error) {
	cmdCtx := GetCmdContext(cmd)
	if cmdCtx == nil || cmdCtx.Log == nil {
		return
	}
	cmdCtx.Log.Recovery(title, err)
}

// recoverContext returns a timeout context rooted in cmd's command context,
// bounding the RecoverWithPassphrase call, never the scrypt/AEAD work itself.
func recoverContext(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	return context.WithTimeout(base, d)
}

// collectShares reads shares from stdin one per line until the set reports
// it is ready to decode, or the user enters a blank line to stop early.
func collectShares(cmd *cobra.Command) (*shareset.ShareSet, error) {
	w := cmd.OutOrStdout()
	outln(w, "Enter your shares one by one.")
	outln(w, "Press Enter on an empty line when finished.")
	outln(w)

	cmdCtx := GetCmdContext(cmd)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	var set *shareset.ShareSet
	collected := 0

	for i := 1; ; i++ {
		out(w, "Share %d: ", i)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		share, parseErr := shareset.ParseShare([]byte(line))
		if parseErr != nil {
			if cmdCtx != nil && cmdCtx.Log != nil {
				cmdCtx.Log.ShareRejected("", parseErr.Error())
			}
			out(w, "  could not parse that share: %v\n", parseErr)
			i--
			continue
		}

		if set == nil {
			set = shareset.Init(share)
		} else if addErr := set.TryAdd(share); addErr != nil {
			if cmdCtx != nil && cmdCtx.Log != nil {
				cmdCtx.Log.ShareRejected(share.Title(), addErr.Error())
			}
			out(w, "  %v\n", addErr)
			i--
			continue
		}
		collected++

		next := set.NextAction()
		if next.Have >= next.Need {
			break
		}
		out(w, "  have %d of %d needed\n", next.Have, next.Need)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if collected < 2 || set == nil {
		return nil, ErrMinSharesRequired
	}

	return set, nil
}

// displaySecret renders the recovered secret, as JSON if the active output
// format calls for it, or as a plain banner otherwise.
func displaySecret(cmd *cobra.Command, title, secret string) error {
	ctx := GetCmdContext(cmd)
	if ctx != nil && ctx.Fmt != nil && ctx.Fmt.Format() == output.FormatJSON {
		return output.WriteJSON(cmd.OutOrStdout(), combineResult{Title: title, Secret: secret})
	}

	w := cmd.OutOrStdout()
	outln(w)
	outln(w, "===================================================================")
	outln(w, "                       RECOVERED SECRET")
	outln(w, "===================================================================")
	outln(w)
	outln(w, secret)
	outln(w)
	outln(w, "===================================================================")
	return nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(combineCmd)
}
