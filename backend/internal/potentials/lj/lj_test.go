package lj

import (
	"testing"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
	"github.com/sarat-asymmetrica/noether/backend/internal/neighbourlist"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLJFluidRejectsZeroCutoff(t *testing.T) {
	_, err := NewLJFluid(2, 0.34*units.NM, 1.0*units.KJPERMOL, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, mderr.ErrCutoffRequired)
}

func TestPairTermAtSigmaIsNegatedShift(t *testing.T) {
	sigma := 0.3 * units.NM
	epsilon := units.Energy(1.0)
	pot, err := NewLJFluid(2, sigma, epsilon, 2*units.NM)
	require.NoError(t, err)

	r2 := sigma.Mul(sigma)
	// At r == sigma the unshifted LJ value is exactly zero; the shift
	// term (nonzero, evaluated at cutoff) is what remains.
	got := pot.PairTerm(0, 1, r2)
	assert.InDelta(t, -float64(pot.pairTable[0].shift), float64(got), 1e-9)
}

func TestPairTermIsRepulsiveInsideSigma(t *testing.T) {
	sigma := 0.3 * units.NM
	pot, err := NewLJFluid(2, sigma, 1.0, 2*units.NM)
	require.NoError(t, err)

	r2 := (sigma.Scale(0.9)).Mul(sigma.Scale(0.9))
	got := pot.PairTerm(0, 1, r2)
	assert.Greater(t, float64(got), 0.0)
}

func TestEvaluateRejectsIncompatibleNeighbourlist(t *testing.T) {
	pot, err := NewLJFluid(2, 0.3*units.NM, 1.0, 1.0*units.NM)
	require.NoError(t, err)

	otherCutoff := units.Length(2.0)
	list := neighbourlist.NewSimple(neighbourlist.Params{Cutoff: &otherCutoff})

	_, err = pot.Evaluate(list)
	require.Error(t, err)
	assert.ErrorIs(t, err, mderr.ErrNeighbourlistNotCompatible)
}

func TestEvaluateEndToEndTwoAtoms(t *testing.T) {
	sigma := 0.3405 * units.NM
	epsilon := units.Energy(0.9977)
	cutoff := units.Length(1.5)

	pot, err := NewLJFluid(2, sigma, epsilon, cutoff)
	require.NoError(t, err)

	positions := []boundaries.Position{
		{X: 0, Y: 0, Z: 0},
		{X: sigma, Y: 0, Z: 0},
	}

	list := neighbourlist.NewSimple(pot.NeighbourlistParams())
	require.NoError(t, list.Regenerate(positions, boundaries.Unbounded{}))

	energy, err := pot.Evaluate(list)
	require.NoError(t, err)
	assert.True(t, energy.IsFinite())
}
