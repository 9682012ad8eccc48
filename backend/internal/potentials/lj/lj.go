// Package lj implements the Lennard-Jones pair potential as a
// topology.Potential: a precomputed dense pair-parameter table indexed
// by each atom's small parameter-type index, the columnar-topology
// design spec.md calls for in place of storing full LJ parameters
// inline per atom.
package lj

import (
	"math"

	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
	"github.com/sarat-asymmetrica/noether/backend/internal/neighbourlist"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

// Params is one atom type's Lennard-Jones parameters: its own sigma
// (collision diameter) and epsilon (well depth).
type Params struct {
	Sigma   units.Length
	Epsilon units.Energy
}

// pairParams is the precomputed per-type-pair mixing result: sigma_ij^2 is
// the geometric mean sigma_i*sigma_j (cached squared directly, since
// that's all PairTerm ever needs), epsilon uses the same geometric mean,
// and shift is the potential evaluated at the cutoff so Evaluate can
// subtract it and produce an energy that's continuous at the cutoff.
type pairParams struct {
	sigma2  units.Dimensionless // sigma_i*sigma_j in nm^2, kept dimensionless to multiply directly against r2's nm^2 storage
	epsilon units.Energy
	shift   units.Energy
}

// Potential is a Lennard-Jones fluid: a fixed number of atoms, each
// assigned a small parameter-type index into typeParams, plus a
// required cutoff (LJ has no analytic long-range correction in this
// kernel, so an unbounded LJ evaluation is rejected at construction).
type Potential struct {
	numAtoms   int
	atomType   []int
	typeParams []Params
	pairTable  []pairParams // flattened len(typeParams) x len(typeParams)
	cutoff     units.Length
	numTypes   int
}

// NewLJFluid constructs a homogeneous Lennard-Jones fluid: every atom
// shares the same sigma/epsilon, and cutoff is mandatory (mirrors the
// "LJFluid" convenience constructor of the source this generalises).
func NewLJFluid(numAtoms int, sigma units.Length, epsilon units.Energy, cutoff units.Length) (*Potential, error) {
	atomType := make([]int, numAtoms)
	return New(numAtoms, atomType, []Params{{Sigma: sigma, Epsilon: epsilon}}, cutoff)
}

// New constructs a Lennard-Jones potential over numAtoms atoms, each
// indexed into typeParams by atomType. cutoff must be positive;
// atomType entries must be valid indices into typeParams, or
// mderr.ErrIllegalTopology is returned.
func New(numAtoms int, atomType []int, typeParams []Params, cutoff units.Length) (*Potential, error) {
	if len(atomType) != numAtoms {
		return nil, mderr.ErrIllegalTopology
	}
	if cutoff <= 0 {
		return nil, mderr.ErrCutoffRequired
	}
	for _, idx := range atomType {
		if idx < 0 || idx >= len(typeParams) {
			return nil, mderr.ErrIllegalTopology
		}
	}

	numTypes := len(typeParams)
	pairTable := make([]pairParams, numTypes*numTypes)
	rcut2 := float64(cutoff) * float64(cutoff)
	for a := 0; a < numTypes; a++ {
		for b := 0; b < numTypes; b++ {
			sigma2 := float64(typeParams[a].Sigma) * float64(typeParams[b].Sigma)
			epsilon := units.Energy(math.Sqrt(float64(typeParams[a].Epsilon) * float64(typeParams[b].Epsilon)))
			shift := ljValue(sigma2, epsilon, rcut2)
			pairTable[a*numTypes+b] = pairParams{sigma2: sigma2, epsilon: epsilon, shift: shift}
		}
	}

	return &Potential{
		numAtoms:   numAtoms,
		atomType:   atomType,
		typeParams: typeParams,
		pairTable:  pairTable,
		cutoff:     cutoff,
		numTypes:   numTypes,
	}, nil
}

// ljValue evaluates 4*epsilon*((sigma^2/r2)^6 - (sigma^2/r2)^3) from
// squared quantities directly, avoiding a sqrt on the hot path.
func ljValue(sigma2 units.Dimensionless, epsilon units.Energy, r2 float64) units.Energy {
	sr2 := sigma2 / r2
	sr6 := sr2 * sr2 * sr2
	sr12 := sr6 * sr6
	return units.Energy(4 * float64(epsilon) * (sr12 - sr6))
}

func (p *Potential) NumAtoms() int { return p.numAtoms }

func (p *Potential) NeighbourlistParams() neighbourlist.Params {
	c := p.cutoff
	return neighbourlist.Params{Cutoff: &c}
}

// PairTerm evaluates the shifted Lennard-Jones energy of atoms i, j
// already known to be within cutoff at squared distance r2.
func (p *Potential) PairTerm(i, j int, r2 units.Area) units.Energy {
	pp := p.pairTable[p.atomType[i]*p.numTypes+p.atomType[j]]
	return ljValue(pp.sigma2, pp.epsilon, float64(r2)).Sub(pp.shift)
}

// Evaluate sums PairTerm over every pair in list, first checking list's
// cutoff matches this potential's own.
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
