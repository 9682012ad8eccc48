// Package units implements the compile-time-checked dimensional-quantity
// kernel the rest of the energy kernel is built on. Every physical
// quantity that flows through the pipeline (length, area, mass, time,
// charge, temperature, energy, force, velocity, pressure) is its own Go
// type with storage in the corresponding canonical unit (nanometre,
// dalton, picosecond, elementary charge, kelvin, and their
// compositions), so that numeric storage never needs a conversion to
// round-trip.
//
// Go has no type-level integers, so this package can't carry the
// five-tuple of dimension exponents as a single generic type the way a
// language with const generics or type-level naturals could. Instead
// it follows the newtype-per-dimension fallback:
// each quantity is a distinct named float64 type, and only the
// arithmetic combinations the rest of the kernel actually needs are
// implemented as methods. An illegal combination — adding a Length to
// an Energy, comparing an Area to a Length — simply has no method to
// call, so it is a compile error at the call site. There is no runtime
// unit-mismatch error anywhere in this package.
package units

import "math"

// Dimensionless is a plain scalar ratio — the result of dividing two
// quantities of the same dimension (e.g. sigma^2 / r^2 in the
// Lennard-Jones potential).
type Dimensionless = float64

// Length is stored in nanometres (nm).
type Length float64

// Mass is stored in daltons (Da).
type Mass float64

// Time is stored in picoseconds (ps).
type Time float64

// Charge is stored in elementary charges (e).
type Charge float64

// Temperature is stored in kelvin (K).
type Temperature float64

// Area is stored in square nanometres (nm^2). Area = Length^2.
type Area float64

// Energy is stored in kilojoules per mole (kJ/mol). Energy = Mass *
// Length^2 / Time^2.
type Energy float64

// Force is stored in kJ/(mol*nm). Force = Energy / Length.
type Force float64

// Velocity is stored in nm/ps. Velocity = Length / Time.
type Velocity float64

// Pressure is stored in kJ/(mol*nm^3). Pressure = Energy / Volume, i.e.
// L^-1 M T^-2 in base dimensions. Not exercised by the core LJ pipeline;
// carried for the validation package's virial pressure estimate.
type Pressure float64

// Unit constants. Each has value 1 in its own canonical unit, so a bare
// literal becomes a dimensioned quantity by multiplication, e.g.
// `0.3405 * units.NM`.
const (
	NM       Length      = 1
	DA       Mass        = 1
	PS       Time        = 1
	E        Charge      = 1
	K        Temperature = 1
	KJPERMOL Energy      = 1
)

// AVOGADRO is dimensionless: Avogadro's number, entities per mole.
const AVOGADRO Dimensionless = 6.02214076e23

// BOLTZMANN is the molar gas constant R = N_A * k_B, dimensioned as
// energy per temperature (kJ/(mol*K)), matching how it's actually used
// to convert a temperature into a thermal energy scale in the sampler.
const BOLTZMANN = 0.0083144621 // kJ/(mol*K), dimension Energy/Temperature

// Length

func (a Length) Add(b Length) Length { return a + b }
func (a Length) Sub(b Length) Length { return a - b }
func (a Length) Neg() Length         { return -a }
func (a Length) Scale(s float64) Length { return Length(float64(a) * s) }
func (a Length) Less(b Length) bool   { return a < b }
func (a Length) Mul(b Length) Area    { return Area(float64(a) * float64(b)) }
func (a Length) Div(b Length) Dimensionless { return float64(a) / float64(b) }

// DivTime divides a length by a time to produce a velocity,
// e.g. a displacement over an integration step.
func (a Length) DivTime(t Time) Velocity { return Velocity(float64(a) / float64(t)) }

// Area

func (a Area) Add(b Area) Area  { return a + b }
func (a Area) Sub(b Area) Area  { return a - b }
func (a Area) Scale(s float64) Area { return Area(float64(a) * s) }
func (a Area) Less(b Area) bool { return a < b }
func (a Area) Div(b Area) Dimensionless { return float64(a) / float64(b) }

// Sqrt requires the exponents of Area (L^2) to be even, which they are
// by construction; the result is a Length.
func (a Area) Sqrt() Length { return Length(math.Sqrt(float64(a))) }

// Mass

func (a Mass) Mul(b Mass) Dimensionless { return float64(a) * float64(b) }
func (a Mass) Scale(s float64) Mass     { return Mass(float64(a) * s) }

// Time

func (a Time) Scale(s float64) Time { return Time(float64(a) * s) }

// Temperature

func (a Temperature) Scale(s float64) Temperature { return Temperature(float64(a) * s) }

// ThermalEnergy converts a temperature into an energy scale via the
// molar gas constant, kT in molar units.
func (a Temperature) ThermalEnergy() Energy { return Energy(BOLTZMANN * float64(a)) }

// Charge

func (a Charge) Mul(b Charge) Dimensionless { return float64(a) * float64(b) }

// CoulombConstant is 1/(4*pi*epsilon_0) expressed in kJ*nm/(mol*e^2), so
// that (qi*qj*CoulombConstant)/r has dimension Energy.
const CoulombConstant = 138.935458 // kJ*nm/(mol*e^2)

// CoulombEnergy computes the (unscreened) Coulomb energy of a charge
// pair at separation r, q_i*q_j*k_e/r.
func CoulombEnergy(qi, qj Charge, r Length) Energy {
	return Energy(CoulombConstant * float64(qi) * float64(qj) / float64(r))
}

// Energy

func (e Energy) Add(o Energy) Energy    { return e + o }
func (e Energy) Sub(o Energy) Energy    { return e - o }
func (e Energy) Neg() Energy            { return -e }
func (e Energy) Scale(s float64) Energy { return Energy(float64(e) * s) }
func (e Energy) Less(o Energy) bool     { return e < o }
func (e Energy) IsFinite() bool {
	return !math.IsNaN(float64(e)) && !math.IsInf(float64(e), 0)
}

// Mul multiplies two energies into an EnergySquared intermediate, whose
// only use is taking a geometric-mean Sqrt immediately after (e.g.
// mixing two well depths).
func (e Energy) Mul(o Energy) EnergySquared { return EnergySquared(float64(e) * float64(o)) }

// EnergySquared is the intermediate product of two energies. Its only
// legal operation is Sqrt, recovering an Energy — this is the "square
// root requires all exponents to be even" rule applied to a dimension
// that otherwise has no reason to exist on its own.
type EnergySquared float64

func (e EnergySquared) Sqrt() Energy { return Energy(math.Sqrt(float64(e))) }

// Force

func (f Force) Add(o Force) Force    { return f + o }
func (f Force) Scale(s float64) Force { return Force(float64(f) * s) }

// Div divides an energy by a length, producing a force — the
// derivative of a pair potential with respect to separation.
func (e Energy) Div(l Length) Force { return Force(float64(e) / float64(l)) }

// Velocity

func (v Velocity) Add(o Velocity) Velocity { return v + o }
func (v Velocity) Scale(s float64) Velocity { return Velocity(float64(v) * s) }

// Mul multiplies a velocity by a time to recover a displacement.
func (v Velocity) Mul(t Time) Length { return Length(float64(v) * float64(t)) }

// Pressure

func (p Pressure) Scale(s float64) Pressure { return Pressure(float64(p) * s) }
