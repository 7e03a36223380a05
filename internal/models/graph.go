// Package models defines the core data structures shared by the campus graph,
// the shortest-path finder and the HTTP API.
package models

type Location string

type Edge struct {
	From   Location `json:"from" yaml:"from"`
	To     Location `json:"to" yaml:"to"`
	Weight float64  `json:"weight" yaml:"weight"`
}

type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// CampusDefinition is the serialisable form of a campus: its directed edges
// and, optionally, where each location sits on the map.
type CampusDefinition struct {
	Name        string                  `json:"name" yaml:"name"`
	Edges       []Edge                  `json:"edges" yaml:"edges"`
	Coordinates map[Location]Coordinate `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
}

type Stats struct {
	TotalLocations int `json:"total_locations"`
	TotalEdges     int `json:"total_edges"`
	Sources        int `json:"sources"`
	Sinks          int `json:"sinks"`
}
