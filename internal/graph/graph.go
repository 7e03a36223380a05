// Package graph holds the static, directed, weighted campus graph. A Graph is
// built once and never mutated, so it can be shared freely between goroutines.
package graph

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/campusnav/core/internal/models"
)

var (
	ErrEmptyLocation  = errors.New("graph: edge endpoint is empty")
	ErrNegativeWeight = errors.New("graph: negative edge weight")
	ErrInvalidWeight  = errors.New("graph: edge weight is not a finite number")
	ErrDuplicateEdge  = errors.New("graph: duplicate edge")
)

type Graph struct {
	adjacency map[models.Location]map[models.Location]float64
	nodes     []models.Location
	edgeCount int
}

// New builds a graph from directed edges. Every edge source becomes a declared
// location; destinations that never appear as a source are kept as sinks.
func New(edges []models.Edge) (*Graph, error) {
	g := &Graph{
		adjacency: make(map[models.Location]map[models.Location]float64),
	}
	seen := make(map[models.Location]bool)

	for _, e := range edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: %q -> %q", ErrEmptyLocation, e.From, e.To)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidWeight, e.From, e.To)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: %s -> %s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}

		out, ok := g.adjacency[e.From]
		if !ok {
			out = make(map[models.Location]float64)
			g.adjacency[e.From] = out
		}
		if _, dup := out[e.To]; dup {
			return nil, fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, e.From, e.To)
		}
		out[e.To] = e.Weight
		g.edgeCount++

		for _, loc := range []models.Location{e.From, e.To} {
			if !seen[loc] {
				seen[loc] = true
				g.nodes = append(g.nodes, loc)
			}
		}
	}

	sort.Slice(g.nodes, func(i, j int) bool { return g.nodes[i] < g.nodes[j] })

	return g, nil
}

// Neighbors returns a copy of the outgoing edges of loc keyed by destination.
// The map is empty when loc has no outgoing edges.
func (g *Graph) Neighbors(loc models.Location) map[models.Location]float64 {
	out := g.adjacency[loc]
	neighbors := make(map[models.Location]float64, len(out))
	for to, w := range out {
		neighbors[to] = w
	}
	return neighbors
}

// Contains reports whether loc is declared with its own outgoing edges.
// A location that only ever appears as a destination is not contained.
func (g *Graph) Contains(loc models.Location) bool {
	_, ok := g.adjacency[loc]
	return ok
}

// HasLocation reports whether loc appears anywhere in the graph, either as a
// declared location or as the destination of some edge.
func (g *Graph) HasLocation(loc models.Location) bool {
	if g.Contains(loc) {
		return true
	}
	i := sort.Search(len(g.nodes), func(i int) bool { return g.nodes[i] >= loc })
	return i < len(g.nodes) && g.nodes[i] == loc
}

// Locations returns every node in lexicographic order.
func (g *Graph) Locations() []models.Location {
	out := make([]models.Location, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Sources returns the declared locations in lexicographic order.
func (g *Graph) Sources() []models.Location {
	out := make([]models.Location, 0, len(g.adjacency))
	for _, loc := range g.nodes {
		if g.Contains(loc) {
			out = append(out, loc)
		}
	}
	return out
}

// Edges returns all edges ordered by source, then destination.
func (g *Graph) Edges() []models.Edge {
	edges := make([]models.Edge, 0, g.edgeCount)
	for _, from := range g.Sources() {
		out := g.adjacency[from]
		targets := make([]models.Location, 0, len(out))
		for to := range out {
			targets = append(targets, to)
		}
		sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
		for _, to := range targets {
			edges = append(edges, models.Edge{From: from, To: to, Weight: out[to]})
		}
	}
	return edges
}

func (g *Graph) Stats() models.Stats {
	sources := len(g.adjacency)
	return models.Stats{
		TotalLocations: len(g.nodes),
		TotalEdges:     g.edgeCount,
		Sources:        sources,
		Sinks:          len(g.nodes) - sources,
	}
}
