package driver

import (
	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/integrator"
	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
	"github.com/sarat-asymmetrica/noether/backend/internal/vec3"
)

// Frame is one reported step of a driven trajectory: the positions,
// the instantaneous potential and kinetic energy, and the step index.
type Frame struct {
	Step      int
	Positions []boundaries.Position
	Potential units.Energy
	Kinetic   units.Energy
}

// ForceFunc computes the per-atom force given the current positions,
// regenerating/updating whatever neighbour lists it needs internally.
// The driver package doesn't know how to turn a topology's energy into
// per-atom forces (that's a property of each potential's functional
// form, not of the orchestration layer), so callers supply one,
// typically a small closure built from a finite-difference or
// analytic-gradient evaluation of d.Topology.
type ForceFunc func(positions []boundaries.Position) ([]vec3.Vec3[units.Force], error)

// RunWithForces drives nSteps of velocity-Verlet time integration
// starting from initial, reporting one Frame per step. force is called
// once at the initial positions and then once per step at the updated
// positions; each step's post-update force is reused as the next
// step's pre-update force, so velocity-Verlet's two force values per
// step cost one evaluation each.
func (d *Driver) RunWithForces(initial []integrator.State, masses []units.Mass, force ForceFunc, dt units.Time, nSteps int) ([]Frame, error) {
	if len(initial) != d.Topology.NumAtoms() {
		return nil, mderr.ErrPositionTopologyMismatch
	}

	states := make([]integrator.State, len(initial))
	copy(states, initial)

	positions := make([]boundaries.Position, len(states))
	for i, s := range states {
		positions[i] = s.Position
	}

	forceBefore, err := force(positions)
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, 0, nSteps)
	for step := 0; step < nSteps; step++ {
		newPositions := integrator.Step(states, masses, forceBefore, dt)

		forceAfter, err := force(newPositions)
		if err != nil {
			return nil, err
		}

		newVelocities := integrator.FinishVelocities(states, masses, forceBefore, forceAfter, dt)
		for i := range states {
			states[i].Position = newPositions[i]
			states[i].Velocity = newVelocities[i]
		}

		if err := d.regenerateAll(newPositions); err != nil {
			return nil, err
		}
		if err := d.checkConsistency(); err != nil {
			return nil, err
		}
		potential, err := d.Topology.Evaluate(d.Lists)
		if err != nil {
			return nil, err
		}

		frames = append(frames, Frame{
			Step:      step,
			Positions: newPositions,
			Potential: potential,
			Kinetic:   integrator.KineticEnergy(states, masses),
		})

		forceBefore = forceAfter
	}

	return frames, nil
}
