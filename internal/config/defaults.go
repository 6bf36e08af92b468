package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Sound: SoundConfig{
			Enabled:      true,
			BellFallback: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
