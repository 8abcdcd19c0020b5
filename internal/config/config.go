// Package config handles reading and writing .leadtrack/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .leadtrack/config.yaml.
type Config struct {
	Version  int            `yaml:"version"`
	Data     DataConfig     `yaml:"data"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Followup FollowupConfig `yaml:"followup"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig locates the pipeline output files.
type DataConfig struct {
	Dir          string `yaml:"dir"`
	ContactsFile string `yaml:"contacts_file"`
}

// OpenAIConfig selects the completion model. The API key is taken from
// the OPENAI_API_KEY environment variable, never from the config file.
type OpenAIConfig struct {
	Model string `yaml:"model"`
}

// FollowupConfig holds the scheduling intervals in days.
type FollowupConfig struct {
	IntervalDays int `yaml:"interval_days"`
	SnoozeDays   int `yaml:"snooze_days"`
}

// LoggingConfig controls the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

const configDir = ".leadtrack"
const configFile = "config.yaml"

// ContactsPath returns the full path of the tracked contact table.
func (c *Config) ContactsPath() string {
	return filepath.Join(c.Data.Dir, c.Data.ContactsFile)
}

// Load reads the config for the given project directory, falling back to
// defaults when no config file exists. A .env file is loaded first if
// present so OPENAI_API_KEY can live next to the data. Environment
// variables override file values.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load() // optional

	cfg, err := ReadConfig(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cfg = DefaultConfig()
	}
	applyEnvOverrides(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadConfig reads .leadtrack/config.yaml from the given directory.
// Returns an error satisfying os.IsNotExist if the file is absent.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// WriteConfig writes cfg to .leadtrack/config.yaml in the given directory.
// Creates the .leadtrack/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with the stock intervals and
// data layout.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Data: DataConfig{
			Dir:          "data",
			ContactsFile: "contacts_with_messages.csv",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4",
		},
		Followup: FollowupConfig{
			IntervalDays: 7,
			SnoozeDays:   3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// APIKey returns the OpenAI API key from the environment, or empty.
func APIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LEADTRACK_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("LEADTRACK_OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("LEADTRACK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func validate(cfg *Config) error {
	if cfg.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if cfg.Data.ContactsFile == "" {
		return fmt.Errorf("data.contacts_file is required")
	}
	if cfg.Followup.IntervalDays <= 0 {
		return fmt.Errorf("followup.interval_days must be > 0")
	}
	if cfg.Followup.SnoozeDays <= 0 {
		return fmt.Errorf("followup.snooze_days must be > 0")
	}
	return nil
}
