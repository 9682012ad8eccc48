// Package validation implements structural sanity checks over a set of
// positions: pairwise clash detection against van der Waals radii, and
// a virial pressure estimate built from the same pair list the
// neighbour-list package already produces.
package validation

import (
	"sort"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/neighbourlist"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

// vdwRadii holds van der Waals radii (nm) for common organic elements,
// looked up by element symbol in DetectClashes.
var vdwRadii = map[string]units.Length{
	"H": 0.120,
	"C": 0.170,
	"N": 0.155,
	"O": 0.152,
	"S": 0.180,
	"P": 0.180,
}

// DefaultRadius is used for elements not present in vdwRadii.
const DefaultRadius units.Length = 0.170

// Clash is one pair of atoms found closer together than the sum of
// their van der Waals radii times a tolerance factor.
type Clash struct {
	I, J     int
	Distance units.Length
	Overlap  units.Length // how far inside the combined radius the pair sits
}

// Report summarises the clashes found in one structure.
type Report struct {
	Clashes    []Clash
	NumAtoms   int
	WorstClash units.Length // largest Overlap, zero if no clashes
}

// DetectClashes finds every pair of atoms whose separation is less than
// `tolerance` times the sum of their van der Waals radii (tolerance
// 1.0 means exactly touching; the conventional clash tolerance is
// around 0.7-0.8 to allow for normal bonded and near-bonded contacts).
// elements[i] indexes radii by element symbol; an unrecognised symbol
// uses DefaultRadius. Bonded 1-2/1-3 neighbours are not excluded here —
// callers checking a real topology should skip index pairs already
// covered by bonded terms before calling this, since this kernel
// carries no bonded-term model of its own.
func DetectClashes(positions []boundaries.Position, elements []string, boundary boundaries.Boundary, tolerance float64) Report {
	report := Report{NumAtoms: len(positions)}

	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			ri := radiusFor(elements, i)
			rj := radiusFor(elements, j)
			threshold := units.Length(tolerance) * (ri + rj)

			d2 := boundary.Dist2(positions[i], positions[j])
			threshold2 := threshold.Mul(threshold)
			if d2 >= threshold2 {
				continue
			}

			d := d2.Sqrt()
			report.Clashes = append(report.Clashes, Clash{
				I:        i,
				J:        j,
				Distance: d,
				Overlap:  threshold - d,
			})
		}
	}

	sort.Slice(report.Clashes, func(a, b int) bool {
		return report.Clashes[a].Overlap > report.Clashes[b].Overlap
	})
	if len(report.Clashes) > 0 {
		report.WorstClash = report.Clashes[0].Overlap
	}
	return report
}

func radiusFor(elements []string, idx int) units.Length {
	if idx >= len(elements) {
		return DefaultRadius
	}
	if r, ok := vdwRadii[elements[idx]]; ok {
		return r
	}
	return DefaultRadius
}

// ValidatePositions reports whether every coordinate is finite —
// guards against a structure built from a divergent minimisation or a
// malformed trajectory frame before it's handed to the energy kernel.
func ValidatePositions(positions []boundaries.Position) bool {
	for _, p := range positions {
		if !finite(float64(p.X)) || !finite(float64(p.Y)) || !finite(float64(p.Z)) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return v == v && v > -1e300 && v < 1e300
}

// EstimateVirialPressure computes the configurational (virial) term of
// the pressure from a pair list and a pairwise-force callback:
//
//	P_virial = (1 / 3V) * sum_{pairs} r_ij . F_ij
//
// pairForce must return the magnitude of the force acting along the
// separation of atoms i, j at squared distance r2 (positive for
// repulsive, negative for attractive), matching the sign convention of
// the potential's own force evaluation. boxVolume is the box volume in
// nm^3; a plain float64 rather than a dimensioned units.Volume, since
// no other part of this kernel needs a standalone volume dimension.
//
// This omits the kinetic (ideal-gas) term N*k_B*T/V: that term needs
// the current velocities/temperature, which this package — given only
// positions and a pair list — never has. Callers that want the full
// pressure must add N*k_B*T/V themselves.
func EstimateVirialPressure(pairs []neighbourlist.AtomPair, pairForce func(i, j int, r2 units.Area) units.Force, boxVolume float64) units.Pressure {
	var virial float64
	for _, pair := range pairs {
		r := float64(pair.R2.Sqrt())
		f := float64(pairForce(pair.I, pair.J, pair.R2))
		virial += r * f
	}
	return units.Pressure(virial / (3 * boxVolume))
}
