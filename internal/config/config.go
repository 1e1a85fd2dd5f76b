package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. OOPBASICS_LOGGING_LEVEL.
	EnvPrefix = "OOPBASICS"

	DefaultDemo       = "composition"
	DefaultPersonName = "Alice"
	DefaultPersonAge  = 30
)

// Config holds all configuration for the oopbasics CLI.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Demo    DemoConfig    `mapstructure:"demo"`
	Person  PersonConfig  `mapstructure:"person"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DemoConfig selects what `run` executes when no demo is named.
type DemoConfig struct {
	Default string `mapstructure:"default"`
}

// PersonConfig seeds the encapsulation walkthrough. Age is not validated
// here: a negative value is a legitimate input to show the setter ignoring it.
type PersonConfig struct {
	Name string `mapstructure:"name"`
	Age  int    `mapstructure:"age"`
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// Load reads configuration from defaults, an optional yaml file and
// environment variables, in increasing precedence.
//
// An empty path searches for oopbasics.yaml in the working directory and in
// ~/.oopbasics; a missing file there is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("demo.default", DefaultDemo)
	v.SetDefault("person.name", DefaultPersonName)
	v.SetDefault("person.age", DefaultPersonAge)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("oopbasics")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(homeDir(), ".oopbasics"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %s, got %q", strings.Join(validLevels, "|"), c.Logging.Level)
	}
	if !slices.Contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format must be one of %s, got %q", strings.Join(validFormats, "|"), c.Logging.Format)
	}
	if strings.TrimSpace(c.Demo.Default) == "" {
		return fmt.Errorf("demo.default must not be empty")
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
