// Package coulomb implements an unscreened Coulomb pair potential as a
// topology.Potential, supplementing the Lennard-Jones term with the
// electrostatic interaction every production force field pairs it with.
package coulomb

import (
	"math"

	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
	"github.com/sarat-asymmetrica/noether/backend/internal/neighbourlist"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

// Potential is a fixed-charge Coulomb term over numAtoms atoms. Unlike
// lj.Potential, a cutoff is optional here: an uncut Coulomb evaluation
// is physically dubious (the interaction is long-ranged) but not
// illegal in this kernel's narrow scope, which doesn't implement
// Ewald summation or any other long-range correction.
type Potential struct {
	numAtoms int
	charges  []units.Charge
	cutoff   *units.Length
}

// New constructs a Coulomb potential over the given per-atom charges.
// cutoff may be nil for an uncut evaluation.
func New(charges []units.Charge, cutoff *units.Length) (*Potential, error) {
	if len(charges) == 0 {
		return nil, mderr.ErrIllegalTopology
	}
	return &Potential{numAtoms: len(charges), charges: charges, cutoff: cutoff}, nil
}

func (p *Potential) NumAtoms() int { return p.numAtoms }

func (p *Potential) NeighbourlistParams() neighbourlist.Params {
	return neighbourlist.Params{Cutoff: p.cutoff}
}

// PairTerm evaluates the unscreened Coulomb energy q_i*q_j*k_e/r for a
// pair already known to be within cutoff.
func (p *Potential) PairTerm(i, j int, r2 units.Area) units.Energy {
	r := units.Length(math.Sqrt(float64(r2)))
	return units.CoulombEnergy(p.charges[i], p.charges[j], r)
}

// Evaluate sums PairTerm over every pair in list, after checking list's
// cutoff agrees with this potential's own.
func (p *Potential) Evaluate(list neighbourlist.List) (units.Energy, error) {
	if !list.Params().Equal(p.NeighbourlistParams()) {
		return 0, mderr.ErrNeighbourlistNotCompatible
	}

	var total units.Energy
	for _, pair := range list.Pairs() {
		total = total.Add(p.PairTerm(pair.I, pair.J, pair.R2))
	}
	return total, nil
}
