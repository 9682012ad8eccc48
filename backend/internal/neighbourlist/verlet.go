package neighbourlist

import (
	"math"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

// Verlet is a cell-list neighbour list: atoms are bucketed into cells
// sized to (at least) the cutoff, so only atoms in the same or
// adjacent cells are ever tested against each other. Cell membership
// is stored as an intrusive singly-linked list over head/next arrays —
// head[c] is the first atom index in cell c, next[a] chains to the
// next atom sharing a's cell, both terminated by -1 — avoiding a
// per-cell slice allocation on every rebuild.
type Verlet struct {
	params Params
	pairs  []AtomPair

	dims   [3]int
	head   []int
	next   []int
}

// NewVerlet constructs an empty Verlet list honouring params. With no
// cutoff there is nothing to size cells by, so Regenerate falls back
// to the dense all-pairs scan.
func NewVerlet(params Params) *Verlet {
	return &Verlet{params: params}
}

func (v *Verlet) Params() Params    { return v.params }
func (v *Verlet) Pairs() []AtomPair { return v.pairs }

// cellIndex flattens a 3D cell coordinate into a single index. The
// flattening order is z + dims[2]*y + dims[2]*dims[1]*x; unflattenCell
// below must invert exactly this order, or the divide/mod chain
// silently scrambles which atoms are considered neighbours.
func cellIndex(dims [3]int, x, y, z int) int {
	return z + dims[2]*y + dims[2]*dims[1]*x
}

func unflattenCell(dims [3]int, idx int) (x, y, z int) {
	z = idx % dims[2]
	rest := idx / dims[2]
	y = rest % dims[1]
	x = rest / dims[1]
	return
}

// wrap reduces a cell coordinate into [0, n) by true modular wraparound,
// not clamping. Clamping edge cells into the boundary cell would merge
// two physically distinct cells and drop legitimate neighbour pairs
// that straddle the periodic boundary; wrapping keeps every cell
// distinct and lets pairs across the boundary be found via the same
// 27-offset search the boundary layer uses for minimum-image distances.
func wrap(c, n int) int {
	return ((c % n) + n) % n
}

// Regenerate buckets every atom into a cell sized to at least the
// cutoff, then tests each atom only against atoms in its own and the 26
// neighbouring cells (wrapping at the box edges), falling back to the
// dense all-pairs test when the boundary has no finite extent to bucket
// against.
func (v *Verlet) Regenerate(positions []boundaries.Position, boundary boundaries.Boundary) error {
	r2cut, hasCutoff := cutoff2(v.params)

	height, finite := boundary.SmallestBoxHeight()
	if !finite || !hasCutoff {
		return v.regenerateDense(positions, boundary, r2cut, hasCutoff)
	}

	cutoffLen := float64(*v.params.Cutoff)
	cellsPerSide := int(math.Floor(float64(height) / cutoffLen))
	if cellsPerSide < 3 {
		// Box too small relative to cutoff for cell partitioning to pay
		// off over the dense scan; fall back rather than build a
		// degenerate 1- or 2-cell grid.
		return v.regenerateDense(positions, boundary, r2cut, hasCutoff)
	}

	dims := [3]int{cellsPerSide, cellsPerSide, cellsPerSide}
	v.dims = dims

	ncells := dims[0] * dims[1] * dims[2]
	head := make([]int, ncells)
	for i := range head {
		head[i] = -1
	}
	next := make([]int, len(positions))

	cellSide := float64(height) / float64(cellsPerSide)
	atomCell := make([]int, len(positions))
	for a, p := range positions {
		cx := wrap(int(math.Floor(float64(p.X)/cellSide)), dims[0])
		cy := wrap(int(math.Floor(float64(p.Y)/cellSide)), dims[1])
		cz := wrap(int(math.Floor(float64(p.Z)/cellSide)), dims[2])
		c := cellIndex(dims, cx, cy, cz)
		atomCell[a] = c
		next[a] = head[c]
		head[c] = a
	}
	v.head = head
	v.next = next

	pairs := v.pairs[:0]
	for a := range positions {
		cx, cy, cz := unflattenCell(dims, atomCell[a])
		for _, dx := range offsets3 {
			for _, dy := range offsets3 {
				for _, dz := range offsets3 {
					nc := cellIndex(dims, wrap(cx+dx, dims[0]), wrap(cy+dy, dims[1]), wrap(cz+dz, dims[2]))
					for b := head[nc]; b != -1; b = next[b] {
						if b <= a {
							continue
						}
						r2 := boundary.Dist2(positions[a], positions[b])
						if hasCutoff && r2 > r2cut {
							continue
						}
						pairs = append(pairs, AtomPair{I: a, J: b, R2: r2})
					}
				}
			}
		}
	}
	v.pairs = pairs
	return nil
}

var offsets3 = []int{-1, 0, 1}

func (v *Verlet) regenerateDense(positions []boundaries.Position, boundary boundaries.Boundary, r2cut units.Area, hasCutoff bool) error {
	pairs := v.pairs[:0]
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
	v.pairs = pairs
	return nil
}

// Update recomputes each stored pair's distance assuming cell membership
// is unchanged since the last Regenerate.
func (v *Verlet) Update(positions []boundaries.Position, boundary boundaries.Boundary) error {
	for idx := range v.pairs {
		p := &v.pairs[idx]
		p.R2 = boundary.Dist2(positions[p.I], positions[p.J])
	}
	return nil
}
