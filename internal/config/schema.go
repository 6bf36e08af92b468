package config

// Config is the on-disk configuration of pomo. Timer durations, tasks and
// the theme are not here: they live in the database with the rest of the
// widget state.
type Config struct {
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Sound    SoundConfig    `yaml:"sound" mapstructure:"sound"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	// Path is empty for the default under the user config dir
	Path string `yaml:"path" mapstructure:"path"`
}

// SoundConfig controls the notification chime
type SoundConfig struct {
	Enabled      bool    `yaml:"enabled" mapstructure:"enabled"`
	BellFallback bool    `yaml:"bell_fallback" mapstructure:"bell_fallback"`
	Volume       float64 `yaml:"volume" mapstructure:"volume"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	File  string `yaml:"file" mapstructure:"file"`
	Level string `yaml:"level" mapstructure:"level"`
}
