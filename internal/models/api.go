// Package models defines the core data structures shared by the campus graph,
// the shortest-path finder and the HTTP API.
package models

type RouteRequest struct {
	Start       Location `json:"start"`
	Destination Location `json:"destination"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type LocationInfo struct {
	Name       Location    `json:"name"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	Source     bool        `json:"source"`
}

type LocationsResponse struct {
	Campus    string         `json:"campus,omitempty"`
	Locations []LocationInfo `json:"locations"`
	Stats     *Stats         `json:"stats,omitempty"`
}

type NearestResponse struct {
	Location Location   `json:"location"`
	Query    Coordinate `json:"query"`
	Meters   float64    `json:"meters"`
}
