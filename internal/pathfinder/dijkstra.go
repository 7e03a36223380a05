// Package pathfinder computes shortest paths over a campus graph with
// Dijkstra's algorithm.
//
// The minimum-distance node is found by scanning every unvisited node, which
// is O(V²) overall. Campus graphs have a handful of locations, so no priority
// queue is used. Ties between equal tentative distances are broken by
// location name, so results are reproducible.
package pathfinder

import (
	"math"
	"slices"

	"github.com/campusnav/core/internal/graph"
	"github.com/campusnav/core/internal/models"
)

type Finder struct {
	graph *graph.Graph
	nodes []models.Location
}

// New returns a Finder over g. The graph is only read, so one Finder may
// serve any number of goroutines.
func New(g *graph.Graph) *Finder {
	return &Finder{
		graph: g,
		nodes: g.Locations(),
	}
}

// Find returns the minimum-weight path from start to target. When target
// cannot be reached the result has an empty path and an infinite distance.
func (f *Finder) Find(start, target models.Location) models.PathResult {
	if start == target {
		return models.PathResult{Path: []models.Location{start}, Distance: 0}
	}

	dist := make(map[models.Location]float64, len(f.nodes))
	prev := make(map[models.Location]models.Location, len(f.nodes))
	visited := make(map[models.Location]bool, len(f.nodes))

	for _, n := range f.nodes {
		dist[n] = math.Inf(1)
	}
	if _, ok := dist[start]; !ok {
		return models.Unreachable()
	}
	dist[start] = 0

	for range f.nodes {
		current, ok := f.closest(dist, visited)
		if !ok {
			break
		}
		visited[current] = true

		if current == target {
			return models.PathResult{
				Path:     reconstruct(prev, start, target),
				Distance: dist[current],
			}
		}

		for neighbor, weight := range f.graph.Neighbors(current) {
			if alt := dist[current] + weight; alt < dist[neighbor] {
				dist[neighbor] = alt
				prev[neighbor] = current
			}
		}
	}

	return models.Unreachable()
}

// closest picks the unvisited node with the smallest finite tentative
// distance. f.nodes is sorted, so the first minimum found wins ties.
func (f *Finder) closest(dist map[models.Location]float64, visited map[models.Location]bool) (models.Location, bool) {
	var (
		best   models.Location
		found  bool
		lowest = math.Inf(1)
	)
	for _, n := range f.nodes {
		if visited[n] {
			continue
		}
		if d := dist[n]; d < lowest {
			best, lowest, found = n, d, true
		}
	}
	return best, found
}

func reconstruct(prev map[models.Location]models.Location, start, target models.Location) []models.Location {
	path := []models.Location{target}
	for at := target; at != start; {
		at = prev[at]
		path = append(path, at)
	}
	slices.Reverse(path)
	return path
}
