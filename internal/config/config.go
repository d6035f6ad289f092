package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "tally_config.yaml"

	// EmbeddedSource is the Source of a config built from the bundled defaults
	EmbeddedSource = "embedded"
)

//go:embed default_config.yaml
var defaultConfigYAML []byte

// Config represents the contest configuration
type Config struct {
	// Countries is the eligibility set, in display order
	Countries []string `yaml:"countries" validate:"required,min=1,unique,dive,required"`

	// PointScale holds the points per ballot position, most preferred first
	PointScale []int `yaml:"pointScale" validate:"required,min=1,dive,min=0"`

	// TopN limits how many standings are shown (0 shows all)
	TopN int `yaml:"topN,omitempty" validate:"min=0"`

	// RankMode controls rank labels for equal totals
	RankMode string `yaml:"rankMode,omitempty" validate:"omitempty,oneof=sequential competition dense"`

	// Source is the file the config was read from, or EmbeddedSource
	Source string `yaml:"-"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads the configuration from tally_config.yaml, falling back to the
// bundled defaults when no file is found
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for an environment.
// It looks for <env>_tally_config.yaml, then tally_config.yaml, each in the
// current directory first and then the user's home directory. If neither
// exists the bundled defaults are used.
func LoadWithEnv(env string) (*Config, error) {
	names := []string{configFileName}
	if env != "" {
		names = []string{fmt.Sprintf("%s_%s", env, configFileName), configFileName}
	}

	for _, name := range names {
		path, err := findConfigFile(name)
		if err != nil {
			return nil, err
		}
		if path != "" {
			return LoadFromPath(path)
		}
	}

	return Default()
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}
	cfg.Source = path
	return cfg, nil
}

// Default returns the bundled configuration: the contest's country list and
// the 12-10-8-...-1 point scale
func Default() (*Config, error) {
	cfg, err := parse(defaultConfigYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded default config: %w", err)
	}
	cfg.Source = EmbeddedSource
	return cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findConfigFile searches for name in the current directory and the home
// directory. It returns an empty path when the file is in neither.
func findConfigFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", nil
}
