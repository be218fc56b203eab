// Package models defines shared configuration and record schema types.
package models

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds pipeline configuration loaded from config.yaml.
// CLI flags may override individual values after loading.
type Config struct {
	// DataDir is the root directory for raw scraped CSV files,
	// organized as DataDir/<timestamp>/<filename>.
	DataDir string `yaml:"data_dir"`

	// MungedDir is the root directory for cleaned output CSV files,
	// organized as MungedDir/<timestamp>/<filename>.
	MungedDir string `yaml:"munged_dir"`

	// ManifestFile is the path of the raw-data manifest CSV.
	ManifestFile string `yaml:"manifest_file"`

	// MungedManifestFile is the path of the cleaned-data manifest CSV.
	MungedManifestFile string `yaml:"munged_manifest_file"`

	// DatabasePath is the sqlite database file used by the loader.
	DatabasePath string `yaml:"database_path"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.applyDefaults()

	return &config, nil
}

// DefaultConfig returns a config with all defaults applied, rooted at baseDir.
func DefaultConfig(baseDir string) *Config {
	config := &Config{
		DataDir:   filepath.Join(baseDir, "data"),
		MungedDir: filepath.Join(baseDir, "munged_data"),
	}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.MungedDir == "" {
		c.MungedDir = "munged_data"
	}
	if c.ManifestFile == "" {
		c.ManifestFile = filepath.Join(c.DataDir, "manifest.csv")
	}
	if c.MungedManifestFile == "" {
		c.MungedManifestFile = filepath.Join(c.MungedDir, "munged_manifest.csv")
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "bike-price-predictor.db"
	}
}
