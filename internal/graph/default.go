package graph

import "github.com/campusnav/core/internal/models"

const DefaultCampusName = "Main Campus"

// DefaultDefinition is the built-in campus. Weights are walking distances in
// meters and every edge is one-directional.
func DefaultDefinition() *models.CampusDefinition {
	return &models.CampusDefinition{
		Name: DefaultCampusName,
		Edges: []models.Edge{
			{From: "Main Gate", To: "Library", Weight: 100},
			{From: "Main Gate", To: "Admin Block", Weight: 150},
			{From: "Library", To: "Computer Science", Weight: 200},
			{From: "Library", To: "Admin Block", Weight: 180},
			{From: "Computer Science", To: "Mechanical", Weight: 100},
			{From: "Computer Science", To: "Admin Block", Weight: 250},
			{From: "Mechanical", To: "Cafeteria", Weight: 120},
			{From: "Cafeteria", To: "Electronics", Weight: 200},
			{From: "Admin Block", To: "Electronics", Weight: 220},
		},
		Coordinates: map[models.Location]models.Coordinate{
			"Main Gate":        {Lat: 11.269650, Lon: 77.604120},
			"Library":          {Lat: 11.270985, Lon: 77.605334},
			"Admin Block":      {Lat: 11.271420, Lon: 77.603910},
			"Computer Science": {Lat: 11.273584, Lon: 77.607018},
			"Mechanical":       {Lat: 11.274454, Lon: 77.606944},
			"Cafeteria":        {Lat: 11.272886, Lon: 77.606740},
			"Electronics":      {Lat: 11.272673, Lon: 77.605436},
		},
	}
}

// Default builds the graph of the built-in campus.
func Default() *Graph {
	g, err := New(DefaultDefinition().Edges)
	if err != nil {
		panic("graph: invalid default campus: " + err.Error())
	}
	return g
}
