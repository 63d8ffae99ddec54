package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yml"
	logFileName    = "gridcal.log"
	envPrefix      = "GRIDCAL_"
)

type Config struct {
	FirstWeekday string `yaml:"first_weekday" koanf:"first_weekday"` // sunday or monday
	YearRange    int    `yaml:"year_range" koanf:"year_range"`       // years either side in the year dropdown
	Theme        string `yaml:"theme" koanf:"theme"`
	Language     string `yaml:"language,omitempty" koanf:"language"` // empty means auto-detect

	LogFile  string `yaml:"log_file,omitempty" koanf:"log_file"`
	LogLevel string `yaml:"log_level" koanf:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		FirstWeekday: "sunday",
		YearRange:    10,
		Theme:        "default",
		LogLevel:     "info",
	}
}

// Load layers defaults, the config file and GRIDCAL_* environment variables
func Load() (Config, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFile(filepath.Join(configDir, configFileName))
}

func LoadFile(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return DefaultConfig(), fmt.Errorf("loading defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), fmt.Errorf("loading %s: %w", path, err)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(k, envPrefix)), v
		},
	}), nil)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return DefaultConfig(), err
	}

	// Apply defaults for zero values
	if cfg.FirstWeekday == "" {
		cfg.FirstWeekday = "sunday"
	}
	if cfg.YearRange <= 0 {
		cfg.YearRange = 10
	}
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if _, err := cfg.Weekday(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Weekday returns the configured first day of the week
func (c Config) Weekday() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.FirstWeekday)) {
	case "", "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("first_weekday must be sunday or monday, got %q", c.FirstWeekday)
	}
}

// LogPath returns the log file, defaulting to the config directory
func (c Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, logFileName), nil
}

func (c Config) Marshal() ([]byte, error) {
	return yamlv3.Marshal(c)
}

func (c Config) Save() error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, configFileName), data, 0600)
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "gridcal"), nil
}

func GetConfigPath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}
