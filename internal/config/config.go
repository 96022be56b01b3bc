// Package config handles rigtool configuration loading and management.
package config

// Config holds all rigtool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Rig     RigConfig     `yaml:"rig"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// RigConfig holds skeleton processing settings.
type RigConfig struct {
	// Scale is a uniform factor applied to a skeleton after loading.
	Scale float64 `yaml:"scale"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Rig: RigConfig{
			Scale: 1,
		},
	}
}
