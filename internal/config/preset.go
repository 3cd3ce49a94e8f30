// Package config loads YAML preset files and merges them with CLI flags
// for torrent creation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Options is one named preset's settings. Pointer fields distinguish
// "unset" from the zero value so merging can tell whether a preset or
// the CLI actually specified something.
type Options struct {
	Private     *bool    `yaml:"private"`
	NoDate      *bool    `yaml:"no_date"`
	NoCreator   *bool    `yaml:"no_creator"`
	Entropy     *bool    `yaml:"entropy"`
	Comment     string   `yaml:"comment"`
	Source      string   `yaml:"source"`
	Trackers    []string `yaml:"trackers"`
	WebSeeds    []string `yaml:"webseeds"`
	Include     []string `yaml:"include_patterns"`
	Exclude     []string `yaml:"exclude_patterns"`
	PieceLength string   `yaml:"piece_length"`
}

// Config is the top-level presets.yaml document.
type Config struct {
	Version int                `yaml:"version"`
	Default *Options           `yaml:"default"`
	Presets map[string]Options `yaml:"presets"`
}

// FindFile searches known locations for a presets file, preferring an
// explicitly supplied path.
func FindFile(explicit string) (string, error) {
	locations := []string{explicit, "presets.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(home, ".config", "torrentsmith", "presets.yaml"),
			filepath.Join(home, ".torrentsmith", "presets.yaml"),
		)
	}
	for _, loc := range locations {
		if loc == "" {
			continue
		}
		if _, err := os.Stat(loc); err == nil {
			return loc, nil
		}
	}
	return "", fmt.Errorf("could not find a preset file in known locations")
}

// Load reads and parses a presets file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read preset file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse preset file: %w", err)
	}
	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported preset file version: %d", cfg.Version)
	}
	return &cfg, nil
}

// Get returns the named preset merged with the file's `default` section,
// the default section filling in anything the preset leaves unset.
func (c *Config) Get(name string) (Options, error) {
	preset, ok := c.Presets[name]
	if !ok {
		return Options{}, fmt.Errorf("preset %q not found", name)
	}

	merged := Options{}
	if c.Default != nil {
		merged = *c.Default
	}

	if preset.Private != nil {
		merged.Private = preset.Private
	}
	if preset.NoDate != nil {
		merged.NoDate = preset.NoDate
	}
	if preset.NoCreator != nil {
		merged.NoCreator = preset.NoCreator
	}
	if preset.Entropy != nil {
		merged.Entropy = preset.Entropy
	}
	if preset.Comment != "" {
		merged.Comment = preset.Comment
	}
	if preset.Source != "" {
		merged.Source = preset.Source
	}
	if len(preset.Trackers) > 0 {
		merged.Trackers = preset.Trackers
	}
	if len(preset.WebSeeds) > 0 {
		merged.WebSeeds = preset.WebSeeds
	}
	if len(preset.Include) > 0 {
		merged.Include = preset.Include
	}
	if len(preset.Exclude) > 0 {
		merged.Exclude = preset.Exclude
	}
	if preset.PieceLength != "" {
		merged.PieceLength = preset.PieceLength
	}

	return merged, nil
}
