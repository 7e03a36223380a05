// Package locator snaps geographic coordinates to the nearest named campus
// location using an R-tree index.
package locator

import (
	"errors"
	"math"
	"sort"

	"github.com/campusnav/core/internal/models"
	"github.com/dhconnelly/rtreego"
)

const (
	dimensions  = 2
	minChildren = 2
	maxChildren = 8
	tolerance   = 1e-9
	candidates  = 8

	earthRadius = 6371000.0 // meters
	// roughly one degree of latitude, used to size search boxes
	metersPerDegree = 111320.0
)

var (
	ErrEmptyIndex        = errors.New("locator: no locations indexed")
	ErrInvalidCoordinate = errors.New("locator: coordinate out of range")
)

type place struct {
	name  models.Location
	coord models.Coordinate
	rect  *rtreego.Rect
}

func (p *place) Bounds() *rtreego.Rect {
	return p.rect
}

// Match is a location found by a query together with its distance from the
// query point in meters.
type Match struct {
	Location models.Location
	Meters   float64
}

// Locator is read-only once built and safe for concurrent queries.
type Locator struct {
	tree  *rtreego.Rtree
	count int
}

func New(coords map[models.Location]models.Coordinate) (*Locator, error) {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)

	names := make([]models.Location, 0, len(coords))
	for name := range coords {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for _, name := range names {
		c := coords[name]
		if err := Validate(c); err != nil {
			return nil, err
		}
		p := rtreego.Point{c.Lat, c.Lon}
		tree.Insert(&place{name: name, coord: c, rect: p.ToRect(tolerance)})
	}

	return &Locator{tree: tree, count: len(names)}, nil
}

func (l *Locator) Len() int {
	return l.count
}

// Nearest returns the indexed location closest to c by great-circle distance.
func (l *Locator) Nearest(c models.Coordinate) (Match, error) {
	if err := Validate(c); err != nil {
		return Match{}, err
	}
	if l.count == 0 {
		return Match{}, ErrEmptyIndex
	}

	// The tree orders by planar distance in degrees, so take a few candidates
	// and pick the best by haversine.
	results := l.tree.NearestNeighbors(min(candidates, l.count), rtreego.Point{c.Lat, c.Lon})

	var best Match
	found := false
	for _, r := range results {
		p, ok := r.(*place)
		if !ok || p == nil {
			continue
		}
		m := Match{Location: p.name, Meters: Haversine(c, p.coord)}
		if !found || m.Meters < best.Meters || (m.Meters == best.Meters && m.Location < best.Location) {
			best, found = m, true
		}
	}
	if !found {
		return Match{}, ErrEmptyIndex
	}
	return best, nil
}

// Within returns every location within radius meters of c, closest first.
func (l *Locator) Within(c models.Coordinate, radius float64) ([]Match, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	if radius <= 0 || l.count == 0 {
		return []Match{}, nil
	}

	dLat := radius / metersPerDegree
	cosLat := math.Max(math.Cos(c.Lat*math.Pi/180), 1e-6)
	dLon := radius / (metersPerDegree * cosLat)

	bounds, err := rtreego.NewRect(
		rtreego.Point{c.Lat - dLat, c.Lon - dLon},
		[]float64{2 * dLat, 2 * dLon},
	)
	if err != nil {
		return nil, err
	}

	matches := []Match{}
	for _, r := range l.tree.SearchIntersect(bounds) {
		p, ok := r.(*place)
		if !ok {
			continue
		}
		if d := Haversine(c, p.coord); d <= radius {
			matches = append(matches, Match{Location: p.name, Meters: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Meters == matches[j].Meters {
			return matches[i].Location < matches[j].Location
		}
		return matches[i].Meters < matches[j].Meters
	})
	return matches, nil
}

func Validate(c models.Coordinate) error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// Haversine returns the great-circle distance between a and b in meters.
func Haversine(a, b models.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadius * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
