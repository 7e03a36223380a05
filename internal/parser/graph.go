// Package parser provides utilities for parsing and transforming input data.
// It reads campus definitions and turns them into routable graphs.
package parser

import (
	"fmt"

	"github.com/campusnav/core/internal/graph"
	"github.com/campusnav/core/internal/models"
)

// BuildGraph validates def and builds its graph. Coordinates may only be
// given for locations that take part in some edge.
func BuildGraph(def *models.CampusDefinition) (*graph.Graph, error) {
	if def == nil {
		return nil, fmt.Errorf("nil campus definition")
	}

	g, err := graph.New(def.Edges)
	if err != nil {
		return nil, fmt.Errorf("invalid campus: %w", err)
	}

	for loc := range def.Coordinates {
		if !g.HasLocation(loc) {
			return nil, fmt.Errorf("invalid campus: coordinates for unknown location %q", loc)
		}
	}

	return g, nil
}

// LoadCampus reads the campus at path, or returns the built-in campus when
// path is empty.
func LoadCampus(path string) (*models.CampusDefinition, *graph.Graph, error) {
	if path == "" {
		def := graph.DefaultDefinition()
		g, err := BuildGraph(def)
		return def, g, err
	}

	def, err := LoadCampusFile(path)
	if err != nil {
		return nil, nil, err
	}

	g, err := BuildGraph(def)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, g, nil
}
