package config

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.bananasplit",
		Split: SplitConfig{
			DefaultTotal:     5,
			DefaultThreshold: 3,
		},
		Security: SecurityConfig{
			MemoryLock:           true,
			RecoverBurst:         5,
			RecoverIntervalMilli: 500,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.bananasplit/bananasplit.log",
		},
	}
}
