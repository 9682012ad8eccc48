// Package vec3 implements 3-vector algebra over dimensioned scalars.
// It is generic over the element's dimension, so the same code backs
// position, velocity and force vectors (and, as Vec3[float64],
// dimensionless vectors). No operation here can fail: every method is
// total over its inputs.
package vec3

import "math"

// Scalar is any type whose underlying representation is float64 — every
// quantity type in package units satisfies this, which is what lets a
// single generic Vec3 back position, velocity and force vectors without
// duplicating the component-wise arithmetic for each.
type Scalar interface {
	~float64
}

// Vec3 is an ordered triple of dimensioned scalars sharing one
// dimension. Operations consume or copy their operands; nothing here
// aliases or mutates in place.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// New builds a vector from its three components.
func New[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the componentwise difference.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Neg returns the componentwise negation.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Scale multiplies every component by a dimensionless scalar, so the
// result shares the vector's dimension — the common case of a position
// update scaled by a unitless factor, or of building a unit-direction
// vector.
func (v Vec3[T]) Scale(s float64) Vec3[T] {
	return Vec3[T]{T(float64(v.X) * s), T(float64(v.Y) * s), T(float64(v.Z) * s)}
}

// SquaredNormValue returns the dimensionless sum of squared components. It's
// intentionally dimensionless rather than the dimension-squared of T:
// callers that need a dimensioned squared-length (e.g. the boundary
// layer's dist2) build it explicitly from the same components instead
// of calling this, since Go generics can't express "the square of
// whatever T is" as a distinct return type per instantiation.
func (v Vec3[T]) SquaredNormValue() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return x*x + y*y + z*z
}

// NormValue returns the dimensionless square root of SquaredNormValue.
func (v Vec3[T]) NormValue() float64 {
	return math.Sqrt(v.SquaredNormValue())
}

// Normalize returns a vector whose component values have magnitude one,
// without changing T: the result is a vector with numeric norm 1 *in
// the vector's own unit*, not a dimensionless direction. Callers that
// want a true dimensionless direction must divide by NormValue()
// themselves and carry the result as a Vec3[float64].
func (v Vec3[T]) Normalize() Vec3[T] {
	n := v.NormValue()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// DotValue returns the dimensionless componentwise dot product. As with
// SquaredNormValue, callers needing a dimensioned result build it from
// the components directly (as the boundary layer's Dist2 does for
// squared separations).
func (v Vec3[T]) DotValue(o Vec3[T]) float64 {
	return float64(v.X)*float64(o.X) + float64(v.Y)*float64(o.Y) + float64(v.Z)*float64(o.Z)
}

// CrossValue returns the dimensionless cross product components; used
// only by the boundary layer's box-volume sanity check (non-coplanar
// box vectors), which only cares about the sign/magnitude of the
// resulting pseudo-vector, not its physical dimension.
func (v Vec3[T]) CrossValue(o Vec3[T]) [3]float64 {
	ax, ay, az := float64(v.X), float64(v.Y), float64(v.Z)
	bx, by, bz := float64(o.X), float64(o.Y), float64(o.Z)
	return [3]float64{
		ay*bz - az*by,
		az*bx - ax*bz,
		ax*by - ay*bx,
	}
}
