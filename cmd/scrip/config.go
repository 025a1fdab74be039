package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config supplies defaults for the flatten command. Flags override
// config values, except exclude patterns, which accumulate.
type Config struct {
	Exclude  []string `yaml:"exclude"`
	Text     bool     `yaml:"text"`
	MaxFiles int      `yaml:"maxFiles"`
}

// loadConfig reads a YAML config file. An empty path yields a zero
// config so callers never branch on whether -config was given.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	path, err := expandUserPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// expandUserPath resolves a leading ~ against the home directory.
func expandUserPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(trimmed, "~")), nil
	}
	return path, nil
}

// splitPatterns splits a comma-separated pattern list, dropping empty
// elements. A list with nothing to keep yields nil.
func splitPatterns(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// mergeConfig resolves flag values against cfg. A set flag wins over
// the config value, except exclude patterns, which accumulate config
// patterns before flag patterns.
func mergeConfig(cfg *Config, excludeCSV string, text bool, maxFiles int) *Config {
	merged := &Config{
		Text:     text || cfg.Text,
		MaxFiles: maxFiles,
	}
	if merged.MaxFiles == 0 {
		merged.MaxFiles = cfg.MaxFiles
	}
	merged.Exclude = append(merged.Exclude, cfg.Exclude...)
	merged.Exclude = append(merged.Exclude, splitPatterns(excludeCSV)...)
	return merged
}
