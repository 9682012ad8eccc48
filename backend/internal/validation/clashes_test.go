package validation

import (
	"math"
	"testing"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/neighbourlist"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
	"github.com/stretchr/testify/assert"
)

func TestDetectClashesFindsOverlappingAtoms(t *testing.T) {
	positions := []boundaries.Position{
		{X: 0, Y: 0, Z: 0},
		{X: 0.05 * units.NM, Y: 0, Z: 0}, // well within combined C radii
	}
	elements := []string{"C", "C"}

	report := DetectClashes(positions, elements, boundaries.Unbounded{}, 0.8)
	assert.Len(t, report.Clashes, 1)
	assert.Equal(t, 0, report.Clashes[0].I)
	assert.Equal(t, 1, report.Clashes[0].J)
}

func TestDetectClashesIgnoresDistantAtoms(t *testing.T) {
	positions := []boundaries.Position{
		{X: 0, Y: 0, Z: 0},
		{X: 5 * units.NM, Y: 0, Z: 0},
	}
	elements := []string{"C", "C"}

	report := DetectClashes(positions, elements, boundaries.Unbounded{}, 0.8)
	assert.Empty(t, report.Clashes)
}

func TestValidatePositionsRejectsNaN(t *testing.T) {
	positions := []boundaries.Position{
		{X: units.Length(math.NaN()), Y: 0, Z: 0},
	}
	assert.False(t, ValidatePositions(positions))
}

func TestValidatePositionsAcceptsFiniteValues(t *testing.T) {
	positions := []boundaries.Position{
		{X: 1, Y: 2, Z: 3},
	}
	assert.True(t, ValidatePositions(positions))
}

func TestEstimateVirialPressureZeroForZeroForce(t *testing.T) {
	pairs := []neighbourlist.AtomPair{{I: 0, J: 1, R2: 1}, {I: 1, J: 2, R2: 4}}
	zeroForce := func(i, j int, r2 units.Area) units.Force { return 0 }
	p := EstimateVirialPressure(pairs, zeroForce, 1.0)
	assert.Equal(t, units.Pressure(0), p)
}

func TestEstimateVirialPressureMatchesHandComputation(t *testing.T) {
	pairs := []neighbourlist.AtomPair{{I: 0, J: 1, R2: 4}} // r = 2
	constForce := func(i, j int, r2 units.Area) units.Force { return 3 }
	volume := 10.0

	got := EstimateVirialPressure(pairs, constForce, volume)
	want := units.Pressure((2.0 * 3.0) / (3 * volume))
	assert.InDelta(t, float64(want), float64(got), 1e-12)
}
