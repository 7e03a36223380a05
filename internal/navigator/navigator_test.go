package navigator

import (
	"math"
	"testing"

	"github.com/campusnav/core/internal/graph"
	"github.com/campusnav/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidation(t *testing.T) {
	tests := []struct {
		in      string
		want    Validation
		wantErr bool
	}{
		{in: "", want: ValidateAny},
		{in: "any", want: ValidateAny},
		{in: "ANY", want: ValidateAny},
		{in: " declared ", want: ValidateDeclared},
		{in: "strict", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValidation(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNavigator_Route(t *testing.T) {
	nav := New(graph.Default())

	t.Run("default validation is any", func(t *testing.T) {
		assert.Equal(t, ValidateAny, nav.Validation())
		assert.Equal(t, "any", nav.Validation().String())
	})

	t.Run("returns shortest path", func(t *testing.T) {
		result, err := nav.Route("Main Gate", "Electronics")

		require.NoError(t, err)
		assert.Equal(t, []models.Location{"Main Gate", "Admin Block", "Electronics"}, result.Path)
		assert.Equal(t, 370.0, result.Distance)
	})

	t.Run("unreachable is not an error", func(t *testing.T) {
		result, err := nav.Route("Electronics", "Main Gate")

		require.NoError(t, err)
		assert.Empty(t, result.Path)
		assert.True(t, math.IsInf(result.Distance, 1))
	})

	t.Run("unknown start is rejected", func(t *testing.T) {
		_, err := nav.Route("Gym", "Library")

		assert.ErrorIs(t, err, ErrUnknownLocation)
		assert.Contains(t, err.Error(), `"Gym"`)
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		_, err := nav.Route("Library", "Gym")

		assert.ErrorIs(t, err, ErrUnknownLocation)
		assert.Contains(t, err.Error(), `"Gym"`)
	})

	t.Run("empty names are rejected", func(t *testing.T) {
		_, err := nav.Route("", "")

		assert.ErrorIs(t, err, ErrUnknownLocation)
	})
}

func TestNavigator_DeclaredValidation(t *testing.T) {
	nav := New(graph.Default(), WithValidation(ValidateDeclared))

	t.Run("sink destination is rejected", func(t *testing.T) {
		_, err := nav.Route("Main Gate", "Electronics")

		assert.ErrorIs(t, err, ErrUnknownLocation)
		assert.False(t, nav.Known("Electronics"))
	})

	t.Run("declared locations are routed", func(t *testing.T) {
		result, err := nav.Route("Main Gate", "Cafeteria")

		require.NoError(t, err)
		assert.Equal(t, 520.0, result.Distance)
	})

	t.Run("self route on declared location", func(t *testing.T) {
		result, err := nav.Route("Main Gate", "Main Gate")

		require.NoError(t, err)
		assert.Equal(t, []models.Location{"Main Gate"}, result.Path)
		assert.Equal(t, 0.0, result.Distance)
	})
}
