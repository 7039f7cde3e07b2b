// Package cli implements the bananasplit command-line interface.
//
// This package provides two ways to access CLI state:
//  1. Global variables (legacy) - for backwards compatibility
//  2. Context-based access (recommended) - via GetCmdContext(cmd)
//
// The globals are initialized in PersistentPreRunE and cleaned up in
// PersistentPostRun. New code should prefer GetCmdContext(cmd) for better
// testability and explicit dependency passing.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/bananasplit/internal/config"
	"github.com/mrz1836/bananasplit/internal/output"
	bananaerr "github.com/mrz1836/bananasplit/pkg/errors"
)

var (
	// Global flags
	homeDir      string
	outputFormat string
	verbose      bool

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter

	// Command context for dependency injection
	cmdCtx *CommandContext
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bananasplit",
	Short: "Split and recover secrets with Shamir's Secret Sharing",
	Long: `bananasplit splits a secret - a passphrase, a seed phrase, a private key,
anything that fits in a string - into encrypted shares using Shamir's Secret
Sharing, and recovers it once enough shares come back together.

Each share is independently useless: a threshold number of them must be
combined, and the correct passphrase supplied, before the original secret
is revealed.

Example:
  bananasplit split --total 5 --threshold 3 --title "Family Vault"
  bananasplit combine`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initGlobals(cmd)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command. Every subcommand has registered itself via
// its own init(), so the subcommand list is complete by the time Execute is
// called; that's when the root's Long description gets its generated list.
func Execute() error {
	enrichParentLong(rootCmd)

	err := rootCmd.Execute()
	if err != nil {
		formatErr(err)
		return err
	}
	return nil
}

// walkCommands visits every command in the tree depth-first.
func walkCommands(cmd *cobra.Command, fn func(*cobra.Command)) {
	fn(cmd)
	for _, sub := range cmd.Commands() {
		walkCommands(sub, fn)
	}
}

// enrichParentLong appends a dynamically generated subcommand list to a
// parent command's Long description, so help stays current as split/combine/
// completion/version are added or removed.
func enrichParentLong(cmd *cobra.Command) {
	if !cmd.HasSubCommands() {
		return
	}

	var sb strings.Builder
	sb.WriteString(cmd.Long)
	sb.WriteString("\n\nSubcommands:\n")

	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			sb.WriteString(fmt.Sprintf("  %-16s %s\n", sub.Name(), sub.Short))
		}
	}

	cmd.Long = sb.String()
}

// formatErr prints the error with proper formatting.
func formatErr(err error) {
	format := output.FormatText
	if formatter != nil {
		format = formatter.Format()
	}
	if fmtErr := output.FormatError(os.Stderr, err, format); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (formatting failed: %v)\n", err, fmtErr)
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return bananaerr.ExitCode(err)
}

// initGlobals resolves the home directory, loads config, and builds the
// logger/formatter pair every split/combine invocation shares, then stashes
// the result on cmd's context for GetCmdContext(cmd) to retrieve.
func initGlobals(cmd *cobra.Command) error {
	home := resolveHome()
	cfg = loadConfigWithOverrides(home)

	logLevel := config.ParseLogLevel(cfg.Logging.Level)
	var err error
	logger, err = config.NewLogger(logLevel, cfg.Logging.File)
	if err != nil {
		logger = config.NullLogger()
	}

	explicitFormat := output.ParseFormat(cfg.Output.DefaultFormat)
	detectedFormat := output.DetectFormat(os.Stdout, explicitFormat)
	formatter = output.NewFormatter(detectedFormat, os.Stdout)

	cmdCtx = NewCommandContext(cfg, logger, formatter)
	SetCmdContext(cmd, cmdCtx)

	return nil
}

// resolveHome picks the data directory a run should use: the --home flag,
// then BANANASPLIT_HOME, then the platform default (~/.bananasplit).
func resolveHome() string {
	if homeDir != "" {
		return homeDir
	}
	if envHome := os.Getenv(config.EnvHome); envHome != "" {
		return envHome
	}
	return config.DefaultHome()
}

// loadConfigWithOverrides loads home's config file (falling back to defaults
// when it doesn't exist yet, or logging a warning and falling back when it
// exists but can't be read), then layers env vars and command-line flags on
// top in that order, and expands a leading "~/" in the resolved Home path.
func loadConfigWithOverrides(home string) *config.Config {
	c, err := config.Load(config.Path(home))
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		}
		c = config.Defaults()
		c.Home = home
	}

	config.ApplyEnvironment(c)

	if homeDir != "" {
		c.Home = homeDir
	}
	if verbose {
		c.Output.Verbose = true
		c.Logging.Level = "debug"
	}
	if outputFormat != "" && outputFormat != "auto" {
		c.Output.DefaultFormat = outputFormat
	}

	if strings.HasPrefix(c.Home, "~/") {
		if userHome, homeErr := os.UserHomeDir(); homeErr == nil {
			c.Home = filepath.Join(userHome, c.Home[2:])
		}
	}

	return c
}

// cleanup releases resources.
func cleanup() {
	if logger != nil {
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close logger: %v\n", closeErr)
		}
	}
}

// Config returns the global configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the global logger.
func Logger() *config.Logger {
	return logger
}

// Formatter returns the global output formatter.
func Formatter() *output.Formatter {
	return formatter
}

// Context returns the global command context.
func Context() *CommandContext {
	return cmdCtx
}

// Version information, set at build time.
//
//nolint:gochecknoglobals // Version info set at build time via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// versionCmd shows version information.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version, build commit, and build date.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if formatter != nil && formatter.Format() == output.FormatJSON {
			cmd.Println("{")
			cmd.Printf(`  "version": "%s",`+"\n", Version)
			cmd.Printf(`  "commit": "%s",`+"\n", GitCommit)
			cmd.Printf(`  "date": "%s"`+"\n", BuildDate)
			cmd.Println("}")
		} else {
			cmd.Printf("bananasplit version %s\n", Version)
			cmd.Printf("  commit: %s\n", GitCommit)
			cmd.Printf("  built:  %s\n", BuildDate)
		}
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "bananasplit data directory (default: ~/.bananasplit)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
