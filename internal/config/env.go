package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome             = "BANANASPLIT_HOME"
	EnvOutputFormat     = "BANANASPLIT_OUTPUT_FORMAT"
	EnvVerbose          = "BANANASPLIT_VERBOSE"
	EnvLogLevel         = "BANANASPLIT_LOG_LEVEL"
	EnvNoColor          = "NO_COLOR"
	EnvDefaultTotal     = "BANANASPLIT_DEFAULT_TOTAL"
	EnvDefaultThreshold = "BANANASPLIT_DEFAULT_THRESHOLD"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	// NO_COLOR disables colored output.
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.Output.Color = "never"
	}

	if v := os.Getenv(EnvDefaultTotal); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Split.DefaultTotal = n
		}
	}

	if v := os.Getenv(EnvDefaultThreshold); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Split.DefaultThreshold = n
		}
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
