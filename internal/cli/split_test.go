package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/bananasplit/internal/envelope"
	"github.com/mrz1836/bananasplit/internal/output"
)

// withFastScrypt lowers the scrypt work factor for the duration of a test so
// split/combine round trips don't pay the protocol-mandated cost.
func withFastScrypt(t *testing.T) {
	t.Helper()
	envelope.SetWorkFactorForTests(4)
	t.Cleanup(envelope.ResetWorkFactor)
}

// newSplitTestCmd builds a *cobra.Command wired the way splitCmd's RunE
// expects, with flags reset to sane defaults and prompts stubbed so the
// test never touches a real terminal.
func newSplitTestCmd(t *testing.T, secret, passphrase string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	splitTotal = 5
	splitThreshold = 3
	splitTitle = "Test Vault"
	splitSecret = secret

	origPrompt := promptNewPassphraseFn
	promptNewPassphraseFn = func() (string, error) { return passphrase, nil }
	t.Cleanup(func() { promptNewPassphraseFn = origPrompt })

	cmd := &cobra.Command{Use: "split", RunE: runSplit}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	return cmd, buf
}

func TestRunSplit_TextOutput(t *testing.T) {
	withFastScrypt(t)

	cmd, buf := newSplitTestCmd(t, "correct horse battery staple", "a very strong passphrase")
	require.NoError(t, runSplit(cmd, nil))

	output := buf.String()
	assert.Contains(t, output, "5 shares generated, 3 needed to recover")
	assert.Contains(t, output, "Share #")
}

func TestRunSplit_RejectsLowThreshold(t *testing.T) {
	cmd, _ := newSplitTestCmd(t, "secret", "passphrase1234")
	splitThreshold = 1

	err := runSplit(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threshold must be at least 2")
}

func TestRunSplit_RejectsTotalBelowThreshold(t *testing.T) {
	cmd, _ := newSplitTestCmd(t, "secret", "passphrase1234")
	splitTotal = 2
	splitThreshold = 3

	err := runSplit(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total shares must be greater than or equal to threshold")
}

func TestRunSplit_DefaultsTitleWhenBlank(t *testing.T) {
	withFastScrypt(t)

	cmd, _ := newSplitTestCmd(t, "secret value", "passphrase1234")
	splitTitle = "   "

	require.NoError(t, runSplit(cmd, nil))
}

func TestDisplayShares_JSONFormat(t *testing.T) {
	cmd := &cobra.Command{Use: "split"}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	jsonFmt := output.NewFormatter(output.FormatJSON, buf)
	ctx := context.WithValue(context.Background(), cmdCtxKey, &CommandContext{Fmt: jsonFmt})
	cmd.SetContext(ctx)

	shares := []string{"share-one", "share-two", "share-three"}
	require.NoError(t, displayShares(cmd, "My Title", shares, 2))

	var decoded splitResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "My Title", decoded.Title)
	assert.Equal(t, 3, decoded.Total)
	assert.Equal(t, 2, decoded.Threshold)
	assert.Equal(t, shares, decoded.Shares)
}
