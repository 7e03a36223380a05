// Package parser provides utilities for parsing and transforming input data.
// It reads campus definitions and turns them into routable graphs.
package parser

import (
	"fmt"
	"os"

	"github.com/campusnav/core/internal/models"
	"gopkg.in/yaml.v3"
)

// ParseCampus decodes a campus definition. YAML is accepted, and since JSON
// is a subset of YAML so is JSON.
func ParseCampus(data []byte) (*models.CampusDefinition, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty campus data")
	}

	var def models.CampusDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campus: %w", err)
	}

	if len(def.Edges) == 0 {
		return nil, fmt.Errorf("invalid campus: missing edges field")
	}

	return &def, nil
}

func LoadCampusFile(path string) (*models.CampusDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campus file: %w", err)
	}

	def, err := ParseCampus(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}
