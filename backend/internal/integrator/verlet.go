// Package integrator implements velocity-Verlet time integration over
// the dimensioned position/velocity/force vectors from package units
// and vec3, using the explicit-velocity form of the scheme molecular
// dynamics needs (the driver's Run pipeline reports energies only;
// RunWithForces in package driver calls this to advance a trajectory).
package integrator

import (
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
	"github.com/sarat-asymmetrica/noether/backend/internal/vec3"
)

// State is one atom's position and velocity. Acceleration is not
// stored here: Step and FinishVelocities take the forces as arguments
// and the caller decides how to obtain them (RunWithForces in package
// driver reuses each step's post-update force as the next step's
// pre-update force).
type State struct {
	Position vec3.Vec3[units.Length]
	Velocity vec3.Vec3[units.Velocity]
}

// Step advances every atom's position by dt given the force on each
// atom and its mass, returning the new positions; velocities are
// completed separately by FinishVelocities. Together the two apply the
// standard velocity-Verlet update:
//
//	x(t+dt) = x(t) + v(t)*dt + 0.5*a(t)*dt^2   (Step)
//	v(t+dt) = v(t) + 0.5*(a(t)+a(t+dt))*dt     (FinishVelocities)
//
// forceBefore must be the force evaluated at the states passed in.
// The force at the positions Step returns, which the caller gets by
// re-evaluating the topology, is what FinishVelocities takes as
// forceAfter — Step itself only knows how to combine forces it's
// handed, not how to evaluate a potential.
func Step(states []State, masses []units.Mass, forceBefore []vec3.Vec3[units.Force], dt units.Time) []vec3.Vec3[units.Length] {
	half := 0.5 * float64(dt) * float64(dt)
	newPositions := make([]vec3.Vec3[units.Length], len(states))
	for i, s := range states {
		accelX := float64(forceBefore[i].X) / float64(masses[i])
		accelY := float64(forceBefore[i].Y) / float64(masses[i])
		accelZ := float64(forceBefore[i].Z) / float64(masses[i])

		newPositions[i] = vec3.Vec3[units.Length]{
			X: s.Position.X + units.Length(float64(s.Velocity.X)*float64(dt)) + units.Length(accelX*half),
			Y: s.Position.Y + units.Length(float64(s.Velocity.Y)*float64(dt)) + units.Length(accelY*half),
			Z: s.Position.Z + units.Length(float64(s.Velocity.Z)*float64(dt)) + units.Length(accelZ*half),
		}
	}
	return newPositions
}

// FinishVelocities completes the velocity half of a velocity-Verlet
// step once the force at the new positions (forceAfter) is known,
// averaging the before/after accelerations.
func FinishVelocities(states []State, masses []units.Mass, forceBefore, forceAfter []vec3.Vec3[units.Force], dt units.Time) []vec3.Vec3[units.Velocity] {
	out := make([]vec3.Vec3[units.Velocity], len(states))
	for i, s := range states {
		ax0 := float64(forceBefore[i].X) / float64(masses[i])
		ay0 := float64(forceBefore[i].Y) / float64(masses[i])
		az0 := float64(forceBefore[i].Z) / float64(masses[i])
		ax1 := float64(forceAfter[i].X) / float64(masses[i])
		ay1 := float64(forceAfter[i].Y) / float64(masses[i])
		az1 := float64(forceAfter[i].Z) / float64(masses[i])

		out[i] = vec3.Vec3[units.Velocity]{
			X: s.Velocity.X + units.Velocity(0.5*(ax0+ax1)*float64(dt)),
			Y: s.Velocity.Y + units.Velocity(0.5*(ay0+ay1)*float64(dt)),
			Z: s.Velocity.Z + units.Velocity(0.5*(az0+az1)*float64(dt)),
		}
	}
	return out
}

// KineticEnergy sums 0.5*m*v^2 over every atom, used to report a
// trajectory's total energy alongside the potential term.
func KineticEnergy(states []State, masses []units.Mass) units.Energy {
	var total units.Energy
	for i, s := range states {
		v2 := s.Velocity.SquaredNormValue()
		total = total.Add(units.Energy(0.5 * float64(masses[i]) * v2))
	}
	return total
}
