package aoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls where inputs come from and how the runner behaves.
// Every field is optional in the YAML file.
type Config struct {
	Year        int    `yaml:"year"`
	InputDir    string `yaml:"input_dir"`
	SessionFile string `yaml:"session_file"`
	Fetch       bool   `yaml:"fetch"`
	Parallel    int    `yaml:"parallel"`
	SkipSamples bool   `yaml:"skip_samples"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Year:        2021,
		InputDir:    "inputs",
		SessionFile: filepath.Join("~", "keys", "aoc.session"),
		Parallel:    4,
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Year < 2015 {
		return cfg, fmt.Errorf("config %s: bogus year %d", path, cfg.Year)
	}
	cfg.Parallel = max(cfg.Parallel, 1)
	cfg.InputDir = Or(cfg.InputDir, DefaultConfig().InputDir)
	return cfg, nil
}

// sessionPath expands a leading ~ in the session file path.
func (c Config) sessionPath() (string, error) {
	p := c.SessionFile
	if rest, ok := strings.CutPrefix(p, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not find the user's home directory: %w", err)
		}
		p = filepath.Join(home, rest)
	}
	return p, nil
}
