package driver

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
	"github.com/sarat-asymmetrica/noether/backend/internal/neighbourlist"
	"github.com/sarat-asymmetrica/noether/backend/internal/potentials/lj"
	"github.com/sarat-asymmetrica/noether/backend/internal/topology"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

func silentLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func twoAtomLJDriver(t *testing.T, cutoff units.Length) (*Driver, *topology.Topology) {
	t.Helper()
	pot, err := lj.NewLJFluid(2, 0.3405*units.NM, 0.9977, cutoff)
	require.NoError(t, err)

	top, err := topology.New(2, pot)
	require.NoError(t, err)

	list := neighbourlist.NewSimple(pot.NeighbourlistParams())
	d, err := New(top, boundaries.Unbounded{}, []neighbourlist.List{list}, silentLogger())
	require.NoError(t, err)
	return d, top
}

func TestRunTwoAtomScanEnergyDecreasesThenIncreases(t *testing.T) {
	d, _ := twoAtomLJDriver(t, 2*units.NM)

	separations := []units.Length{0.3, 0.3405, 0.5, 1.0}
	var frames [][]boundaries.Position
	for _, r := range separations {
		frames = append(frames, []boundaries.Position{
			{X: 0, Y: 0, Z: 0},
			{X: r, Y: 0, Z: 0},
		})
	}

	energies, err := d.Run(frames)
	require.NoError(t, err)
	require.Len(t, energies, len(separations))
	for _, e := range energies {
		assert.True(t, e.IsFinite())
	}
	// Strongly repulsive at 0.3nm, about zero at sigma, inside the well at
	// 0.5nm, then back up toward zero at 1.0nm.
	assert.Greater(t, float64(energies[0]), float64(energies[1]))
	assert.Greater(t, float64(energies[1]), float64(energies[2]))
	assert.Less(t, float64(energies[2]), float64(energies[3]))
}

func TestRunRejectsFrameWithWrongAtomCount(t *testing.T) {
	d, _ := twoAtomLJDriver(t, 2*units.NM)

	frames := [][]boundaries.Position{
		{{X: 0, Y: 0, Z: 0}},
	}

	_, err := d.Run(frames)
	require.Error(t, err)
	assert.ErrorIs(t, err, mderr.ErrPositionTopologyMismatch)
}

func TestRunRejectsInconsistentCutoffUnderPeriodicBoundary(t *testing.T) {
	pot, err := lj.NewLJFluid(2, 0.3405*units.NM, 0.9977, 5*units.NM)
	require.NoError(t, err)
	top, err := topology.New(2, pot)
	require.NoError(t, err)

	list := neighbourlist.NewSimple(pot.NeighbourlistParams())
	box := boundaries.Cubic(2 * units.NM) // cutoff 5nm >= box height 2nm
	d, err := New(top, box, []neighbourlist.List{list}, silentLogger())
	require.NoError(t, err)

	frames := [][]boundaries.Position{
		{{X: 0, Y: 0, Z: 0}, {X: 0.5 * units.NM, Y: 0, Z: 0}},
	}

	_, err = d.Run(frames)
	require.Error(t, err)
	assert.ErrorIs(t, err, mderr.ErrMinimumImageConventionNotJustified)
}

func TestRunDeterministicAcrossRepeatedCalls(t *testing.T) {
	d1, _ := twoAtomLJDriver(t, 2*units.NM)
	d2, _ := twoAtomLJDriver(t, 2*units.NM)

	frames := [][]boundaries.Position{
		{{X: 0, Y: 0, Z: 0}, {X: 0.4 * units.NM, Y: 0, Z: 0}},
	}

	e1, err := d1.Run(frames)
	require.NoError(t, err)
	e2, err := d2.Run(frames)
	require.NoError(t, err)

	assert.Equal(t, e1, e2)
}
