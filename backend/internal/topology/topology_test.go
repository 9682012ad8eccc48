package topology

import (
	"testing"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
	"github.com/sarat-asymmetrica/noether/backend/internal/neighbourlist"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPotential is a minimal Potential used only to exercise Topology's
// construction-time validation and Evaluate orchestration, independent
// of any real pair-potential math.
type stubPotential struct {
	numAtoms int
	cutoff   *units.Length
	perPair  units.Energy
}

func (s stubPotential) NumAtoms() int { return s.numAtoms }
func (s stubPotential) NeighbourlistParams() neighbourlist.Params {
	return neighbourlist.Params{Cutoff: s.cutoff}
}
func (s stubPotential) PairTerm(i, j int, r2 units.Area) units.Energy { return s.perPair }
func (s stubPotential) Evaluate(list neighbourlist.List) (units.Energy, error) {
	if !list.Params().Equal(s.NeighbourlistParams()) {
		return 0, mderr.ErrNeighbourlistNotCompatible
	}
	var total units.Energy
	for range list.Pairs() {
		total = total.Add(s.perPair)
	}
	return total, nil
}

func TestNewRejectsAtomCountMismatch(t *testing.T) {
	_, err := New(10, stubPotential{numAtoms: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, mderr.ErrIllegalTopology)
}

func TestNewGeneratesDefaultAtomNames(t *testing.T) {
	top, err := New(3, stubPotential{numAtoms: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"atom0", "atom1", "atom2"}, top.AtomNames())
}

func TestNewNamedRejectsNameCountMismatch(t *testing.T) {
	_, err := NewNamed(3, []string{"a", "b"}, stubPotential{numAtoms: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, mderr.ErrIllegalTopology)
}

func TestLJFluidNamesAtomsByPrefix(t *testing.T) {
	top, err := LJFluid("Ar", 4, 0.34*units.NM, 1.0*units.KJPERMOL, 1.0*units.NM)
	require.NoError(t, err)
	assert.Equal(t, 4, top.NumAtoms())
	assert.Equal(t, []string{"Ar0", "Ar1", "Ar2", "Ar3"}, top.AtomNames())
	assert.Len(t, top.Potentials(), 1)
}

func TestNewRejectsDisagreeingCutoffs(t *testing.T) {
	a := units.Length(1.0)
	b := units.Length(2.0)
	_, err := New(3, stubPotential{numAtoms: 3, cutoff: &a}, stubPotential{numAtoms: 3, cutoff: &b})
	require.Error(t, err)
	assert.ErrorIs(t, err, mderr.ErrIllegalTopology)
}

func TestEvaluateSumsAcrossPotentials(t *testing.T) {
	cutoff := units.Length(1.0)
	top, err := New(3,
		stubPotential{numAtoms: 3, cutoff: &cutoff, perPair: 2},
		stubPotential{numAtoms: 3, cutoff: &cutoff, perPair: 3},
	)
	require.NoError(t, err)

	pairs := []neighbourlist.AtomPair{{I: 0, J: 1}, {I: 1, J: 2}}
	list := &fixedList{params: neighbourlist.Params{Cutoff: &cutoff}, pairs: pairs}

	energy, err := top.Evaluate([]neighbourlist.List{list, list})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, float64(energy), 1e-9) // 2 pairs * (2+3)
}

type fixedList struct {
	params neighbourlist.Params
	pairs  []neighbourlist.AtomPair
}

func (f *fixedList) Params() neighbourlist.Params    { return f.params }
func (f *fixedList) Pairs() []neighbourlist.AtomPair { return f.pairs }
func (f *fixedList) Regenerate(positions []boundaries.Position, boundary boundaries.Boundary) error {
	return nil
}
func (f *fixedList) Update(positions []boundaries.Position, boundary boundaries.Boundary) error {
	return nil
}
