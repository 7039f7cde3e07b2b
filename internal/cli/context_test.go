package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/bananasplit/internal/config"
	"github.com/mrz1836/bananasplit/internal/output"
)

func TestNewCommandContext(t *testing.T) {
	cfg := config.Defaults()
	logger := config.NullLogger()
	formatter := output.NewFormatter(output.FormatText, nil)

	ctx := NewCommandContext(cfg, logger, formatter)

	assert.Same(t, cfg, ctx.Cfg)
	assert.Same(t, logger, ctx.Log)
	assert.Same(t, formatter, ctx.Fmt)
}

func TestSetAndGetCmdContext(t *testing.T) {
	cmd := &cobra.Command{}
	ctx := &CommandContext{}

	SetCmdContext(cmd, ctx)

	got := GetCmdContext(cmd)
	require.NotNil(t, got)
	assert.Same(t, ctx, got)
}

func TestGetCmdContext_NilContext(t *testing.T) {
	cmd := &cobra.Command{}
	assert.Nil(t, GetCmdContext(cmd))
}

func TestGetCmdContext_WrongType(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.WithValue(context.Background(), cmdCtxKey, "not a context"))

	assert.Nil(t, GetCmdContext(cmd))
}
