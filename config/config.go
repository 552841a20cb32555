// Package config loads report generation settings from a JSON file,
// merged over built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Filters  FilterConfig   `json:"filters"`
	Report   ReportConfig   `json:"report"`
	Timezone TimezoneConfig `json:"timezone"`
}

// FilterConfig holds commit and path selection options.
type FilterConfig struct {
	Author  string   `json:"author"`  // identity pattern; empty = all authors
	Limit   int      `json:"limit"`   // 0 = unlimited
	Include []string `json:"include"` // path globs to include
	Exclude []string `json:"exclude"` // path globs to exclude
}

// ReportConfig holds output document options.
type ReportConfig struct {
	Output string `json:"output"` // default report filename
	Title  string `json:"title"`
}

// TimezoneConfig pins the fixed display offset. The offset is a
// constant, not a tz-database zone: no daylight-saving rules apply.
type TimezoneConfig struct {
	Label         string `json:"label"`
	OffsetMinutes int    `json:"offsetMinutes"` // east of UTC
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Report: ReportConfig{
			Output: "history.md",
			Title:  "Change Notes",
		},
		Timezone: TimezoneConfig{
			Label:         "ET",
			OffsetMinutes: -5 * 60,
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// With an empty path it searches .changenotes.json in the working
// directory and then the home directory; a missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".changenotes.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".changenotes.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
