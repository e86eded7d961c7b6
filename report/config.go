package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "config.json"

// MatcherConfig configures the ingredient matcher and its hazard database files.
type MatcherConfig struct {
	Threshold      float64 `json:"threshold" yaml:"threshold"`
	AliasIndexPath string  `json:"aliasIndexPath" yaml:"aliasIndexPath"`
	HazardsPath    string  `json:"hazardsPath" yaml:"hazardsPath"`
}

// Config aggregates runtime settings persisted to config.json or config.yaml.
type Config struct {
	OnlyHazardous bool          `json:"onlyHazardous" yaml:"onlyHazardous"`
	Query         string        `json:"query" yaml:"query"`
	Bands         BandConfig    `json:"bands" yaml:"bands"`
	Matcher       MatcherConfig `json:"matcher" yaml:"matcher"`
	OutputDir     string        `json:"outputDir" yaml:"outputDir"`
}

// Clone creates a deep copy of the configuration so callers can mutate safely.
func (c Config) Clone() Config {
	buf, _ := json.Marshal(c)
	var out Config
	_ = json.Unmarshal(buf, &out)
	return out
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	c.Query = NormalizeText(c.Query)
	c.Bands.applyDefaults()
	if c.Matcher.Threshold <= 0 || c.Matcher.Threshold > 1 {
		c.Matcher.Threshold = 0.86
	}
	if c.OutputDir == "" {
		c.OutputDir = "csv"
	}
}

// Filter returns the filter options encoded in the configuration.
func (c Config) Filter() FilterOptions {
	return FilterOptions{OnlyHazardous: c.OnlyHazardous, Query: c.Query}
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	cfg := Config{OnlyHazardous: true}
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig loads configuration from the given path or the default config.json.
// Files ending in .yaml or .yml are decoded as YAML.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigFile
	}
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var hasOnlyHazardous bool
	if isYAML(path) {
		var probe map[string]any
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return cfg, fmt.Errorf("decode config: %w", err)
		}
		_, hasOnlyHazardous = probe["onlyHazardous"]
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config: %w", err)
		}
	} else {
		hasOnlyHazardous = bytes.Contains(data, []byte("\"onlyHazardous\""))
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config: %w", err)
		}
	}
	if !hasOnlyHazardous {
		cfg.OnlyHazardous = true
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// SaveConfig persists configuration to disk.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		path = defaultConfigFile
	}
	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	cfg.ApplyDefaults()
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
