// Package snapshot loads road system snapshots and engine configuration from
// YAML files.
package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Shaloh69/UCRoadWays-sub000/pkg/engine"
	"github.com/Shaloh69/UCRoadWays-sub000/pkg/model"
	"gopkg.in/yaml.v3"
)

// Project file names.
const (
	SnapshotFile = "campus.yaml"
	ConfigFile   = "engine.yaml"
)

// Load reads a road system snapshot from a YAML file. Landmarks are
// normalized once here so the engine sees typed attributes.
func Load(path string) (*model.RoadSystem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	var s model.RoadSystem
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing snapshot YAML: %w", err)
	}

	s = s.Normalize()
	return &s, nil
}

// LoadProject loads a snapshot from a project directory.
// It looks for campus.yaml in the given directory.
func LoadProject(projectDir string) (*model.RoadSystem, error) {
	return Load(filepath.Join(projectDir, SnapshotFile))
}

// LoadConfig reads engine configuration from a YAML file. Omitted fields
// take their defaults.
func LoadConfig(path string) (engine.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg engine.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return engine.Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg.WithDefaults(), nil
}

// LoadProjectConfig loads engine.yaml from a project directory, falling back
// to engine.DefaultConfig when the file does not exist.
func LoadProjectConfig(projectDir string) (engine.Config, error) {
	cfg, err := LoadConfig(filepath.Join(projectDir, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return engine.DefaultConfig(), nil
	}
	return cfg, err
}
