package config

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.sigil",
		Slip39: Slip39Config{
			DefaultIterationExponent: 0,
			DefaultGroupThreshold:    1,
			DefaultMemberThreshold:   2,
			DefaultMemberCount:       3,
		},
		Security: SecurityConfig{
			MemoryLock: true,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.sigil/sigil.log",
		},
	}
}
