package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// shellGenerators maps a completion subcommand argument to the cobra
// generator that produces that shell's script.
//
//nolint:gochecknoglobals // fixed dispatch table, mirrors the Use/ValidArgs list below
var shellGenerators = map[string]func(*cobra.Command, io.Writer) error{
	"bash": (*cobra.Command).GenBashCompletion,
	"zsh":  (*cobra.Command).GenZshCompletion,
	"fish": func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) },
	"powershell": func(c *cobra.Command, w io.Writer) error {
		return c.GenPowerShellCompletionWithDesc(w)
	},
}

// completionCmd generates shell completion scripts for bananasplit.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for bananasplit.

To load completions:

Bash:
  $ source <(bananasplit completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ bananasplit completion bash > /etc/bash_completion.d/bananasplit
  # macOS:
  $ bananasplit completion bash > $(brew --prefix)/etc/bash_completion.d/bananasplit

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ bananasplit completion zsh > "${fpath[1]}/_bananasplit"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ bananasplit completion fish | source

  # To load completions for each session, execute once:
  $ bananasplit completion fish > ~/.config/fish/completions/bananasplit.fish

PowerShell:
  PS> bananasplit completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> bananasplit completion powershell > bananasplit.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, ok := shellGenerators[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell %q", args[0])
		}
		return gen(cmd.Root(), cmd.OutOrStdout())
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(completionCmd)
}
