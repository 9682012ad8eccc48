// Package topology implements the columnar, parameters-as-columns atom
// topology and the pluggable Potential contract that lets the driver
// evaluate an arbitrary set of potentials over the same atom set without
// knowing their concrete types.
package topology

import (
	"fmt"

	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
	"github.com/sarat-asymmetrica/noether/backend/internal/neighbourlist"
	"github.com/sarat-asymmetrica/noether/backend/internal/potentials/lj"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

// Potential is the contract every pairwise energy term satisfies. A
// potential owns its own parameter tables and neighbourlist
// requirements; the topology only orchestrates which potentials apply
// to which atom count and checks they agree on atom count and cutoff.
type Potential interface {
	// NumAtoms reports how many atoms this potential is parameterised
	// for. Topology construction rejects a potential whose count
	// disagrees with the topology's.
	NumAtoms() int

	// NeighbourlistParams reports the cutoff this potential needs its
	// neighbour list built with.
	NeighbourlistParams() neighbourlist.Params

	// PairTerm evaluates this potential's contribution for a single
	// pair already known to be within cutoff, given the squared
	// distance between them.
	PairTerm(i, j int, r2 units.Area) units.Energy

	// Evaluate sums PairTerm over every pair in list, after checking
	// list's params agree with this potential's own — returning
	// mderr.ErrNeighbourlistNotCompatible if they don't.
	Evaluate(list neighbourlist.List) (units.Energy, error)
}

// Topology is an atom set shared by every potential registered against
// it. It is deliberately columnar in spirit: the atom count and the
// per-atom diagnostic names are the only things the topology itself
// stores about "atoms" — everything else
// (parameter-type indices, per-atom charges, per-atom LJ parameter
// indices) lives in the potentials themselves, the way the columnar
// design keeps cache-unfriendly per-atom structs out of the hot path.
type Topology struct {
	numAtoms   int
	atomNames  []string
	potentials []Potential
}

// New constructs a Topology over numAtoms atoms with the given
// potentials, validating that every potential's atom count matches and
// that potentials sharing a cutoff requirement actually agree on it.
// Atoms are given diagnostic-only default names atom0, atom1, ...; use
// NewNamed directly to supply real names.
func New(numAtoms int, potentials ...Potential) (*Topology, error) {
	names := make([]string, numAtoms)
	for i := range names {
		names[i] = fmt.Sprintf("atom%d", i)
	}
	return NewNamed(numAtoms, names, potentials...)
}

// NewNamed is New with caller-supplied atom names. len(atomNames) must
// equal numAtoms; names are purely diagnostic and never affect energy
// evaluation.
func NewNamed(numAtoms int, atomNames []string, potentials ...Potential) (*Topology, error) {
	if len(atomNames) != numAtoms {
		return nil, mderr.ErrIllegalTopology
	}
	for _, p := range potentials {
		if p.NumAtoms() != numAtoms {
			return nil, mderr.ErrIllegalTopology
		}
	}

	var declared *units.Length
	for _, p := range potentials {
		c := p.NeighbourlistParams().Cutoff
		if c == nil {
			continue
		}
		if declared == nil {
			declared = c
			continue
		}
		if *declared != *c {
			return nil, mderr.ErrIllegalTopology
		}
	}

	return &Topology{numAtoms: numAtoms, atomNames: atomNames, potentials: potentials}, nil
}

// LJFluid builds a Topology over a single homogeneous Lennard-Jones
// fluid of n atoms sharing sigma, epsilon and rcut, with atoms named
// name0, name1, ... for diagnostics.
func LJFluid(name string, n int, sigma units.Length, epsilon units.Energy, rcut units.Length) (*Topology, error) {
	pot, err := lj.NewLJFluid(n, sigma, epsilon, rcut)
	if err != nil {
		return nil, err
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", name, i)
	}
	return NewNamed(n, names, pot)
}

// NumAtoms reports the topology's atom count.
func (t *Topology) NumAtoms() int { return t.numAtoms }

// AtomNames returns the topology's per-atom diagnostic names, in atom
// index order.
func (t *Topology) AtomNames() []string { return t.atomNames }

// Potentials returns the registered potentials in registration order.
func (t *Topology) Potentials() []Potential { return t.potentials }

// Evaluate sums every registered potential's energy over the supplied
// per-potential neighbour lists, keyed by registration order. len(lists)
// must equal len(t.Potentials()); PositionTopologyMismatch-style
// validation of the frame itself is the driver's job, not the
// topology's.
func (t *Topology) Evaluate(lists []neighbourlist.List) (units.Energy, error) {
	if len(lists) != len(t.potentials) {
		return 0, mderr.ErrIllegalTopology
	}

	var total units.Energy
	for i, p := range t.potentials {
		e, err := p.Evaluate(lists[i])
		if err != nil {
			return 0, err
		}
		total = total.Add(e)
	}
	return total, nil
}
