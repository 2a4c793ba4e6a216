package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Target is the cumulative quantity every valuation is sized to.
	Target int64 `yaml:"target"`
	// Input is the feed file path, or "-" for stdin.
	Input   string `yaml:"input"`
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
}

func Default() Config {
	var cfg Config
	cfg.Target = 200
	cfg.Input = "-"
	cfg.Logging.Level = "info"
	return cfg
}

// Load reads the yaml config at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
