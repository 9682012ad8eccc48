package boundaries

import (
	"errors"
	"testing"

	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnboundedDist2(t *testing.T) {
	a := Position{X: 0, Y: 0, Z: 0}
	b := Position{X: 3 * units.NM, Y: 4 * units.NM, Z: 0}

	got := Unbounded{}.Dist2(a, b)
	assert.InDelta(t, 25.0, float64(got), 1e-9)
}

func TestTriclinicMinimumImageWrapsAcrossBoundary(t *testing.T) {
	box := Cubic(2 * units.NM)

	a := Position{X: 0.1 * units.NM, Y: 0, Z: 0}
	b := Position{X: 1.9 * units.NM, Y: 0, Z: 0}

	got := box.Dist2(a, b)
	// Without minimum-image wrap, dist would be 1.8nm; with wrap it's 0.2nm.
	assert.InDelta(t, 0.04, float64(got), 1e-9)
}

func TestTriclinicRejectsCoplanarVectors(t *testing.T) {
	zero := units.Length(0)
	v1 := vecOf(1, 0, 0)
	v2 := vecOf(2, 0, 0)
	v3 := vecOf(0, 1, 0)
	_ = zero

	_, err := NewTriclinic(v1, v2, v3)
	require.Error(t, err)
}

func vecOf(x, y, z float64) Position {
	return Position{X: units.Length(x), Y: units.Length(y), Z: units.Length(z)}
}

func TestPairlistConsistencyCheckAcceptsSmallCutoff(t *testing.T) {
	box := Cubic(2 * units.NM)
	cutoff := units.Length(0.9)

	err := PairlistConsistencyCheck(box, &cutoff)
	assert.NoError(t, err)
}

func TestPairlistConsistencyCheckRejectsLargeCutoff(t *testing.T) {
	box := Cubic(2 * units.NM)
	cutoff := units.Length(2.5)

	err := PairlistConsistencyCheck(box, &cutoff)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mderr.ErrMinimumImageConventionNotJustified))
}

func TestPairlistConsistencyCheckUnboundedAlwaysPasses(t *testing.T) {
	cutoff := units.Length(1000)
	err := PairlistConsistencyCheck(Unbounded{}, &cutoff)
	assert.NoError(t, err)
}

func TestPairlistConsistencyCheckNoCutoffAlwaysPasses(t *testing.T) {
	box := Cubic(2 * units.NM)
	err := PairlistConsistencyCheck(box, nil)
	assert.NoError(t, err)
}
