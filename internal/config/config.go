// Package config loads relocation settings from a YAML file, ARCHIVER_*
// environment variables and command line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/folder-archiver/internal/logger"
	"github.com/taigrr/folder-archiver/internal/types"
)

const (
	appName   = "folder-archiver"
	envPrefix = "ARCHIVER_"
)

type Config struct {
	Source                   string        `mapstructure:"source" yaml:"source" env:"SOURCE"`
	Destination              string        `mapstructure:"destination" yaml:"destination" env:"DESTINATION"`
	Year                     int           `mapstructure:"year" yaml:"year" env:"YEAR"`
	Limit                    int           `mapstructure:"limit" yaml:"limit" env:"LIMIT"`
	UseModifiedDate          bool          `mapstructure:"use_modified_date" yaml:"use_modified_date" env:"USE_MODIFIED_DATE"`
	Exclude                  []string      `mapstructure:"exclude" yaml:"exclude" env:"EXCLUDE" envSeparator:","`
	ExcludePatterns          []string      `mapstructure:"exclude_patterns" yaml:"exclude_patterns" env:"EXCLUDE_PATTERNS" envSeparator:","`
	DryRun                   bool          `mapstructure:"dry_run" yaml:"dry_run" env:"DRY_RUN"`
	FailIfDestinationMissing bool          `mapstructure:"fail_if_destination_missing" yaml:"fail_if_destination_missing" env:"FAIL_IF_DESTINATION_MISSING"`
	Log                      logger.Config `mapstructure:"log" yaml:"log" envPrefix:"LOG_"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	logFile := appName + ".log"
	if dir, err := Dir(); err == nil {
		logFile = filepath.Join(dir, appName+".log")
	}
	return &Config{
		Exclude:         []string{},
		ExcludePatterns: []string{},
		Log: logger.Config{
			File:  logFile,
			Level: "info",
		},
	}
}

// Dir returns the per-user configuration directory for the tool.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to get config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path, then applies environment overrides.
// An empty path means DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("unable to unmarshal config: %w", err)
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Exclude = types.TrimNames(cfg.Exclude)
	cfg.ExcludePatterns = types.TrimNames(cfg.ExcludePatterns)
	return cfg, nil
}

// Request builds the MoveRequest for a pass.
func (c *Config) Request() types.MoveRequest {
	return types.MoveRequest{
		Source:                   c.Source,
		Destination:              c.Destination,
		Year:                     c.Year,
		Limit:                    c.Limit,
		UseModifiedDate:          c.UseModifiedDate,
		Exclude:                  types.TrimNames(c.Exclude),
		ExcludePatterns:          types.TrimNames(c.ExcludePatterns),
		DryRun:                   c.DryRun,
		FailIfDestinationMissing: c.FailIfDestinationMissing,
	}
}

// ToYAML renders the configuration as a commented YAML document.
func (c *Config) ToYAML() ([]byte, error) {
	body, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal config: %w", err)
	}
	header := "# folder-archiver configuration\n" +
		"# Generated by: folder-archiver config init\n" +
		"# Every key may be overridden with an ARCHIVER_<KEY> environment variable\n" +
		"# (nested keys: ARCHIVER_LOG_FILE) or a command line flag.\n\n"
	return append([]byte(header), body...), nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	content, err := c.ToYAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}
	return os.WriteFile(path, content, 0o644)
}
