// Package models defines the core data structures shared by the campus graph,
// the shortest-path finder and the HTTP API.
package models

import (
	"encoding/json"
	"math"
)

// PathResult is the outcome of a shortest-path query. Distance is +Inf and
// Path is empty when the target cannot be reached.
type PathResult struct {
	Path     []Location
	Distance float64
}

func Unreachable() PathResult {
	return PathResult{Path: []Location{}, Distance: math.Inf(1)}
}

func (p PathResult) Reachable() bool {
	return !math.IsInf(p.Distance, 1)
}

type pathResultJSON struct {
	Path      []Location `json:"path"`
	Distance  *float64   `json:"distance"`
	Reachable bool       `json:"reachable"`
}

// MarshalJSON writes an unreachable distance as null, since JSON has no
// representation for infinity.
func (p PathResult) MarshalJSON() ([]byte, error) {
	out := pathResultJSON{
		Path:      p.Path,
		Reachable: p.Reachable(),
	}
	if out.Path == nil {
		out.Path = []Location{}
	}
	if out.Reachable {
		d := p.Distance
		out.Distance = &d
	}
	return json.Marshal(out)
}

func (p *PathResult) UnmarshalJSON(data []byte) error {
	var in pathResultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	p.Path = in.Path
	if p.Path == nil {
		p.Path = []Location{}
	}
	if in.Distance == nil {
		p.Distance = math.Inf(1)
	} else {
		p.Distance = *in.Distance
	}
	return nil
}
