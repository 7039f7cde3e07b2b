package cli

import (
	"github.com/mrz1836/bananasplit/internal/config"
	"github.com/mrz1836/bananasplit/internal/output"
)

// Compile-time interface checks.
var (
	_ ConfigProvider = (*config.Config)(nil)
	_ LogWriter      = (*config.Logger)(nil)
	_ FormatProvider = (*output.Formatter)(nil)
)

// ConfigProvider provides read access to configuration values.
// This interface enables mocking configuration in tests.
type ConfigProvider interface {
	// GetHome returns the bananasplit home directory path.
	GetHome() string

	// GetLoggingLevel returns the configured logging level.
	GetLoggingLevel() string

	// GetLoggingFile returns the configured log file path.
	GetLoggingFile() string

	// GetOutputFormat returns the default output format.
	GetOutputFormat() string

	// IsVerbose returns true if verbose output is enabled.
	IsVerbose() bool

	// GetSecurity returns the security configuration.
	GetSecurity() config.SecurityConfig
}

// LogWriter provides logging of share-split and recovery outcomes.
// This interface enables mocking logging in tests.
type LogWriter interface {
	// ShareSplit records that title was split into total shares (threshold
	// needed to recover), and whether it succeeded.
	ShareSplit(title string, total, threshold int, err error)

	// ShareRejected records that a share offered during combine was
	// rejected, and why.
	ShareRejected(title, reason string)

	// Recovery records that recovering title was attempted, and whether
	// it succeeded.
	Recovery(title string, err error)

	// Close closes the logger and releases resources.
	Close() error
}

// FormatProvider provides output format information.
// This interface enables mocking output formatting in tests.
type FormatProvider interface {
	// Format returns the current output format.
	Format() output.Format
}
