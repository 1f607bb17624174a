// Package config loads client configuration from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "5s"; yaml.v3 has no native duration support.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	td, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(td)
	return nil
}

// Config holds the settings the CLI and engine wiring need.
type Config struct {
	API struct {
		BaseURL string   `yaml:"base_url"`
		Token   string   `yaml:"token"`
		Timeout Duration `yaml:"timeout"`
	} `yaml:"api"`
	Subject    string `yaml:"subject"`
	DBPath     string `yaml:"db_path"`
	CatalogDir string `yaml:"catalog_dir"`
}

// DefaultPath resolves the config file location:
// $BRAINCELL_CONFIG, then $XDG_CONFIG_HOME/braincell/config.yaml,
// then ~/.config/braincell/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("BRAINCELL_CONFIG"); p != "" {
		return p, nil
	}
	confHome := os.Getenv("XDG_CONFIG_HOME")
	if confHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		confHome = filepath.Join(home, ".config")
	}
	return filepath.Join(confHome, "braincell", "config.yaml"), nil
}

// Load reads the config at path, tolerating a missing file, then applies
// environment overrides (BRAINCELL_API_URL, BRAINCELL_API_TOKEN,
// BRAINCELL_SUBJECT).
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults plus env only.
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if v := os.Getenv("BRAINCELL_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("BRAINCELL_API_TOKEN"); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv("BRAINCELL_SUBJECT"); v != "" {
		cfg.Subject = v
	}
	return cfg, nil
}
