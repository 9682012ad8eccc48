package neighbourlist

import "github.com/sarat-asymmetrica/noether/backend/internal/boundaries"

// Simple is the dense O(N^2) neighbour list: every pair is tested
// against the cutoff on every regeneration. It has no skin and no
// cell structure, so Update is exactly as expensive as Regenerate; it
// exists as the baseline variant for small systems and as the variant
// the Verlet cell list is checked against.
//
// Iterating the tail of the position slice with `positions[i+1:]`
// re-bases the inner loop's index to 0, so the pair being recorded
// needs i+1+k, not k, as its second member. Recording the bare
// relative index there would silently produce wrong pairs for every
// i > 0.
type Simple struct {
	params Params
	pairs  []AtomPair
}

// NewSimple constructs an empty Simple list honouring params.
func NewSimple(params Params) *Simple {
	return &Simple{params: params}
}

func (s *Simple) Params() Params      { return s.params }
func (s *Simple) Pairs() []AtomPair   { return s.pairs }

// Regenerate tests every pair (i, j) with i < j against the cutoff and
// rebuilds the pair list from scratch.
func (s *Simple) Regenerate(positions []boundaries.Position, boundary boundaries.Boundary) error {
	r2cut, hasCutoff := cutoff2(s.params)

	pairs := s.pairs[:0]
	for i := 0; i < len(positions); i++ {
		for k, posJ := range positions[i+1:] {
			j := i + 1 + k
			r2 := boundary.Dist2(positions[i], posJ)
			if hasCutoff && r2 > r2cut {
				continue
			}
			pairs = append(pairs, AtomPair{I: i, J: j, R2: r2})
		}
	}
	s.pairs = pairs
	return nil
}

// Update recomputes each existing pair's distance without changing
// membership — for Simple this means every stored pair, whether or not
// it's still within cutoff, since there is no cheaper incremental test
// available without the cell structure the Verlet variant provides.
func (s *Simple) Update(positions []boundaries.Position, boundary boundaries.Boundary) error {
	for idx := range s.pairs {
		p := &s.pairs[idx]
		p.R2 = boundary.Dist2(positions[p.I], positions[p.J])
	}
	return nil
}
