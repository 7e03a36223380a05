package locator

import (
	"math"
	"sync"
	"testing"

	"github.com/campusnav/core/internal/graph"
	"github.com/campusnav/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campusLocator(t *testing.T) *Locator {
	t.Helper()
	l, err := New(graph.DefaultDefinition().Coordinates)
	require.NoError(t, err)
	return l
}

func TestNew(t *testing.T) {
	t.Run("indexes every coordinate", func(t *testing.T) {
		assert.Equal(t, 7, campusLocator(t).Len())
	})

	t.Run("empty map builds empty index", func(t *testing.T) {
		l, err := New(nil)

		require.NoError(t, err)
		assert.Equal(t, 0, l.Len())
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		_, err := New(map[models.Location]models.Coordinate{
			"Nowhere": {Lat: 91, Lon: 0},
		})

		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}

func TestNearest(t *testing.T) {
	l := campusLocator(t)

	t.Run("exact coordinate matches with zero distance", func(t *testing.T) {
		m, err := l.Nearest(models.Coordinate{Lat: 11.270985, Lon: 77.605334})

		require.NoError(t, err)
		assert.Equal(t, models.Location("Library"), m.Location)
		assert.InDelta(t, 0, m.Meters, 1e-6)
	})

	t.Run("nearby point snaps to closest location", func(t *testing.T) {
		m, err := l.Nearest(models.Coordinate{Lat: 11.269600, Lon: 77.604100})

		require.NoError(t, err)
		assert.Equal(t, models.Location("Main Gate"), m.Location)
		assert.Less(t, m.Meters, 10.0)
	})

	t.Run("far point still returns a location", func(t *testing.T) {
		m, err := l.Nearest(models.Coordinate{Lat: 0, Lon: 0})

		require.NoError(t, err)
		assert.NotEmpty(t, m.Location)
		assert.Greater(t, m.Meters, 1000000.0)
	})

	t.Run("empty index", func(t *testing.T) {
		empty, err := New(nil)
		require.NoError(t, err)

		_, err = empty.Nearest(models.Coordinate{Lat: 1, Lon: 1})
		assert.ErrorIs(t, err, ErrEmptyIndex)
	})

	t.Run("invalid coordinate", func(t *testing.T) {
		_, err := l.Nearest(models.Coordinate{Lat: math.NaN(), Lon: 0})
		assert.ErrorIs(t, err, ErrInvalidCoordinate)

		_, err = l.Nearest(models.Coordinate{Lat: 0, Lon: 181})
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})

	t.Run("concurrent queries", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m, err := l.Nearest(models.Coordinate{Lat: 11.270985, Lon: 77.605334})
				assert.NoError(t, err)
				assert.Equal(t, models.Location("Library"), m.Location)
			}()
		}
		wg.Wait()
	})
}

func TestWithin(t *testing.T) {
	l := campusLocator(t)
	library := models.Coordinate{Lat: 11.270985, Lon: 77.605334}

	t.Run("small radius returns only the location itself", func(t *testing.T) {
		matches, err := l.Within(library, 1)

		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, models.Location("Library"), matches[0].Location)
	})

	t.Run("large radius returns everything closest first", func(t *testing.T) {
		matches, err := l.Within(library, 5000)

		require.NoError(t, err)
		require.Len(t, matches, 7)
		assert.Equal(t, models.Location("Library"), matches[0].Location)
		for i := 1; i < len(matches); i++ {
			assert.LessOrEqual(t, matches[i-1].Meters, matches[i].Meters)
		}
	})

	t.Run("non-positive radius returns nothing", func(t *testing.T) {
		matches, err := l.Within(library, 0)

		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestHaversine(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		c := models.Coordinate{Lat: 11.27, Lon: 77.6}
		assert.Equal(t, 0.0, Haversine(c, c))
	})

	t.Run("one degree of latitude is about 111km", func(t *testing.T) {
		d := Haversine(models.Coordinate{Lat: 0, Lon: 0}, models.Coordinate{Lat: 1, Lon: 0})
		assert.InDelta(t, 111195, d, 50)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := models.Coordinate{Lat: 11.2701, Lon: 77.6035}
		b := models.Coordinate{Lat: 11.2745, Lon: 77.6069}
		assert.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-9)
	})
}
