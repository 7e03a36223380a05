// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/campusnav/core/internal/locator"
	"github.com/campusnav/core/internal/models"
	"github.com/campusnav/core/internal/navigator"
	"github.com/gorilla/mux"
)

const (
	maxBodyBytes = 1 << 20

	msgInvalidLocations = "Invalid locations"
	msgInvalidBody      = "Invalid request body"
)

type RouteHandler struct {
	navigator *navigator.Navigator
	locator   *locator.Locator
	campus    *models.CampusDefinition
}

// NewRouteHandler serves routes over nav. campus supplies the display name
// and coordinates; loc may be nil when no coordinates are known.
func NewRouteHandler(nav *navigator.Navigator, loc *locator.Locator, campus *models.CampusDefinition) *RouteHandler {
	return &RouteHandler{
		navigator: nav,
		locator:   loc,
		campus:    campus,
	}
}

func (h *RouteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/shortest-path", h.ShortestPath).Methods(http.MethodPost)
	router.HandleFunc("/locations", h.Locations).Methods(http.MethodGet)
	router.HandleFunc("/nearest", h.Nearest).Methods(http.MethodGet)
}

func (h *RouteHandler) ShortestPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RouteRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	result, err := h.navigator.Route(req.Start, req.Destination)
	if err != nil {
		if errors.Is(err, navigator.ErrUnknownLocation) {
			log.Printf("Rejected route %q -> %q: %v", req.Start, req.Destination, err)
			writeError(w, http.StatusBadRequest, msgInvalidLocations)
			return
		}
		log.Printf("Error computing route: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *RouteHandler) Locations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	g := h.navigator.Graph()
	stats := g.Stats()
	response := models.LocationsResponse{
		Locations: []models.LocationInfo{},
		Stats:     &stats,
	}
	if h.campus != nil {
		response.Campus = h.campus.Name
	}

	for _, loc := range g.Locations() {
		info := models.LocationInfo{
			Name:   loc,
			Source: g.Contains(loc),
		}
		if h.campus != nil {
			if c, ok := h.campus.Coordinates[loc]; ok {
				info.Coordinate = &c
			}
		}
		response.Locations = append(response.Locations, info)
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *RouteHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query, err := parseCoordinate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid coordinate: "+err.Error())
		return
	}

	if h.locator == nil {
		writeError(w, http.StatusNotFound, "No coordinates available")
		return
	}

	match, err := h.locator.Nearest(query)
	switch {
	case errors.Is(err, locator.ErrInvalidCoordinate):
		writeError(w, http.StatusBadRequest, "Invalid coordinate")
		return
	case errors.Is(err, locator.ErrEmptyIndex):
		writeError(w, http.StatusNotFound, "No coordinates available")
		return
	case err != nil:
		log.Printf("Error locating %+v: %v", query, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, models.NearestResponse{
		Location: match.Location,
		Query:    query,
		Meters:   match.Meters,
	})
}

func parseCoordinate(r *http.Request) (models.Coordinate, error) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return models.Coordinate{}, errors.New("invalid or missing lat")
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		return models.Coordinate{}, errors.New("invalid or missing lon")
	}

	return models.Coordinate{Lat: lat, Lon: lon}, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
