// Package neighbourlist implements the pairlist abstraction that amortises
// the O(N^2) cost of finding interacting pairs across frames: a dense
// Simple variant usable whenever N is small, and a cell-list Verlet
// variant that buckets atoms into boxes sized to the cutoff.
package neighbourlist

import (
	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

// AtomPair is an unordered pair of atom indices with i < j, plus the
// squared distance between them at the time the list was built or last
// updated.
type AtomPair struct {
	I, J int
	R2   units.Area
}

// Params describes the cutoff a neighbour list was built to honour. A
// nil Cutoff means "every pair, no cutoff"; boundaries.PairlistConsistencyCheck
// accepts it under every boundary.
type Params struct {
	Cutoff *units.Length
}

// Equal reports whether two Params describe the same cutoff, used by
// each potential's Evaluate to check that the neighbour list it's
// handed was built with the potential's own params.
func (p Params) Equal(o Params) bool {
	if (p.Cutoff == nil) != (o.Cutoff == nil) {
		return false
	}
	if p.Cutoff == nil {
		return true
	}
	return *p.Cutoff == *o.Cutoff
}

// List is the shared contract of every neighbour-list variant.
type List interface {
	// Params reports the cutoff this list was constructed with.
	Params() Params

	// Pairs returns the current set of candidate pairs.
	Pairs() []AtomPair

	// Regenerate rebuilds the list from scratch against the given
	// positions and boundary, an O(N^2) or O(N) operation depending on
	// the variant. Callers must regenerate before the first Update and
	// whenever atoms may have moved enough to change which pairs are
	// within the cutoff.
	Regenerate(positions []boundaries.Position, boundary boundaries.Boundary) error

	// Update recomputes pair distances assuming membership is
	// unchanged since the last Regenerate — cheaper, but only valid
	// when no atom has moved enough to change who's within cutoff.
	Update(positions []boundaries.Position, boundary boundaries.Boundary) error
}

func cutoff2(p Params) (units.Area, bool) {
	if p.Cutoff == nil {
		return 0, false
	}
	c := *p.Cutoff
	return c.Mul(c), true
}
