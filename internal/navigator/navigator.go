// Package navigator validates route requests against the campus graph and
// hands valid ones to the shortest-path finder.
package navigator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/campusnav/core/internal/graph"
	"github.com/campusnav/core/internal/models"
	"github.com/campusnav/core/internal/pathfinder"
)

var (
	ErrUnknownLocation   = errors.New("unknown location")
	ErrInvalidValidation = errors.New("invalid validation mode")
)

// Validation selects which names count as known when checking a request.
type Validation int

const (
	// ValidateAny accepts any location in the graph, including locations
	// that only appear as an edge destination.
	ValidateAny Validation = iota
	// ValidateDeclared accepts only locations with their own outgoing edges.
	ValidateDeclared
)

func ParseValidation(s string) (Validation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return ValidateAny, nil
	case "declared":
		return ValidateDeclared, nil
	default:
		return ValidateAny, fmt.Errorf("%w: %q", ErrInvalidValidation, s)
	}
}

func (v Validation) String() string {
	if v == ValidateDeclared {
		return "declared"
	}
	return "any"
}

type Option func(*Navigator)

func WithValidation(v Validation) Option {
	return func(n *Navigator) {
		n.validation = v
	}
}

type Navigator struct {
	graph      *graph.Graph
	finder     *pathfinder.Finder
	validation Validation
}

func New(g *graph.Graph, opts ...Option) *Navigator {
	n := &Navigator{
		graph:  g,
		finder: pathfinder.New(g),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Navigator) Graph() *graph.Graph {
	return n.graph
}

func (n *Navigator) Validation() Validation {
	return n.validation
}

// Known reports whether loc passes the navigator's validation mode.
func (n *Navigator) Known(loc models.Location) bool {
	if n.validation == ValidateDeclared {
		return n.graph.Contains(loc)
	}
	return n.graph.HasLocation(loc)
}

// Route checks both names and returns the shortest path between them. An
// unreachable target is not an error; it comes back as an unreachable result.
func (n *Navigator) Route(start, target models.Location) (models.PathResult, error) {
	for _, loc := range []models.Location{start, target} {
		if !n.Known(loc) {
			return models.PathResult{}, fmt.Errorf("%w: %q", ErrUnknownLocation, loc)
		}
	}

	return n.finder.Find(start, target), nil
}
