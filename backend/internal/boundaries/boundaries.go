// Package boundaries implements distance computation under either open
// space or general triclinic periodic boundary conditions, and the
// consistency check that pins neighbour-list correctness under the
// minimum-image convention.
package boundaries

import (
	"math"

	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
	"github.com/sarat-asymmetrica/noether/backend/internal/vec3"
)

// Position is a length-dimensioned 3-vector — the common element type
// this package's operations work over.
type Position = vec3.Vec3[units.Length]

// Boundary is the shared contract of every boundary-condition variant:
// squared distance between two points, and a gate that neighbour-list
// construction must pass before trusting minimum-image distances.
type Boundary interface {
	// Dist2 computes the squared distance between a and b honouring
	// this boundary's convention.
	Dist2(a, b Position) units.Area

	// SmallestBoxHeight returns the minimum over edges of the box's
	// extent in each axis, used by the cutoff consistency check. Open
	// boundaries have no finite box; see Unbounded's implementation.
	SmallestBoxHeight() (units.Length, bool)
}

// Dist is the non-squared distance, derived from Dist2. It requires the
// area's exponents to be even (they always are, being L^2), so Sqrt
// never fails.
func Dist(b Boundary, a, bb Position) units.Length {
	return b.Dist2(a, bb).Sqrt()
}

// PairlistConsistencyCheck gates neighbour-list construction under the
// minimum-image convention: it is satisfied unconditionally by
// boundaries with no finite box, by any cutoff of none, and otherwise
// only when rcut is strictly less than the boundary's smallest box
// height.
func PairlistConsistencyCheck(b Boundary, cutoff *units.Length) error {
	if cutoff == nil {
		return nil
	}
	height, finite := b.SmallestBoxHeight()
	if !finite {
		return nil
	}
	if *cutoff < height {
		return nil
	}
	return mderr.ErrMinimumImageConventionNotJustified
}

// Unbounded is the open-space boundary: distances are plain Euclidean
// distances with no periodic images.
type Unbounded struct{}

// Dist2 computes the ordinary squared Euclidean distance.
func (Unbounded) Dist2(a, b Position) units.Area {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return dx.Mul(dx).Add(dy.Mul(dy)).Add(dz.Mul(dz))
}

// SmallestBoxHeight reports no finite box, so the consistency check
// always succeeds for Unbounded.
func (Unbounded) SmallestBoxHeight() (units.Length, bool) {
	return 0, false
}

// Triclinic is a general periodic box described by three (not
// necessarily orthogonal) box vectors. Constructing one checks the box
// vectors are non-coplanar (a well-posed box has nonzero volume).
type Triclinic struct {
	V1, V2, V3 Position
}

// NewTriclinic validates that v1, v2, v3 are non-coplanar before
// returning a usable boundary.
func NewTriclinic(v1, v2, v3 Position) (Triclinic, error) {
	cross := v1.CrossValue(v2)
	volume := cross[0]*float64(v3.X) + cross[1]*float64(v3.Y) + cross[2]*float64(v3.Z)
	if math.Abs(volume) < 1e-12 {
		return Triclinic{}, mderr.ValueError("box vectors are coplanar")
	}
	return Triclinic{V1: v1, V2: v2, V3: v3}, nil
}

// Cubic builds a cubic box of side d.
func Cubic(d units.Length) Triclinic {
	zero := units.Length(0)
	return Triclinic{
		V1: vec3.New(d, zero, zero),
		V2: vec3.New(zero, d, zero),
		V3: vec3.New(zero, zero, d),
	}
}

// Rectangular builds an orthorhombic box with independent edge lengths.
func Rectangular(l, w, h units.Length) Triclinic {
	zero := units.Length(0)
	return Triclinic{
		V1: vec3.New(l, zero, zero),
		V2: vec3.New(zero, w, zero),
		V3: vec3.New(zero, zero, h),
	}
}

// offsets enumerates the 27 lattice translations (-1,0,1)^3 used by the
// minimum-image search. The (0,0,0) case is included — a pair can be
// its own nearest image.
var offsets = []float64{-1, 0, 1}

// Dist2 returns the minimum over all 27 lattice images of the squared
// separation. The +/-1 box-vector offset is essential because the raw
// separation may already exceed a box dimension; ties between equal
// minima are irrelevant since they yield equal distances.
func (t Triclinic) Dist2(a, b Position) units.Area {
	dx0 := b.X - a.X
	dy0 := b.Y - a.Y
	dz0 := b.Z - a.Z

	min := math.Inf(1)
	for _, i := range offsets {
		for _, j := range offsets {
			for _, k := range offsets {
				dx := float64(dx0) + i*float64(t.V1.X) + j*float64(t.V2.X) + k*float64(t.V3.X)
				dy := float64(dy0) + i*float64(t.V1.Y) + j*float64(t.V2.Y) + k*float64(t.V3.Y)
				dz := float64(dz0) + i*float64(t.V1.Z) + j*float64(t.V2.Z) + k*float64(t.V3.Z)
				d2 := dx*dx + dy*dy + dz*dz
				if d2 < min {
					min = d2
				}
			}
		}
	}
	return units.Area(min)
}

// SmallestBoxHeight approximates the smallest box dimension as the
// minimum of the three box vectors' magnitudes — sufficient for the
// minimum-image cutoff check.
func (t Triclinic) SmallestBoxHeight() (units.Length, bool) {
	h1 := t.V1.NormValue()
	h2 := t.V2.NormValue()
	h3 := t.V3.NormValue()
	return units.Length(math.Min(h1, math.Min(h2, h3))), true
}
