// Package driver implements the frame-driving pipeline: for every frame
// of a trajectory, regenerate each topology potential's neighbour list,
// check each list against its boundary's consistency requirement, then
// evaluate the topology's total energy. Regeneration is parallelised
// across potentials with a deterministic summation order, so two runs
// over the same input always report bit-identical totals regardless of
// how goroutines happened to be scheduled.
package driver

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
	"github.com/sarat-asymmetrica/noether/backend/internal/neighbourlist"
	"github.com/sarat-asymmetrica/noether/backend/internal/topology"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

// Driver ties a topology to the neighbour lists its potentials need and
// the boundary those lists are built against.
type Driver struct {
	Topology  *topology.Topology
	Boundary  boundaries.Boundary
	Lists     []neighbourlist.List // one per topology.Potentials(), same order
	Log       zerolog.Logger
}

// New constructs a Driver. lists must have one entry per potential
// registered on top, in registration order; each list's params must
// already agree with its potential's (topology.New already checked
// cutoffs agree across potentials, but not against the lists
// themselves — that's checked per-frame in Run, mirroring how a
// genuinely wrong neighbourlist is only ever caught at evaluation
// time).
func New(top *topology.Topology, boundary boundaries.Boundary, lists []neighbourlist.List, log zerolog.Logger) (*Driver, error) {
	if len(lists) != len(top.Potentials()) {
		return nil, mderr.ErrIllegalTopology
	}
	return &Driver{Topology: top, Boundary: boundary, Lists: lists, Log: log}, nil
}

// Run drives the pipeline over every frame in positions, returning the
// total energy of each frame in order. Each frame must have exactly
// Topology.NumAtoms() positions, or mderr.ErrPositionTopologyMismatch is
// returned for that frame's index (embedded in the returned error via
// fmt.Errorf's %w, %d is the frame index).
func (d *Driver) Run(frames [][]boundaries.Position) ([]units.Energy, error) {
	energies := make([]units.Energy, len(frames))
	for frameIdx, positions := range frames {
		if len(positions) != d.Topology.NumAtoms() {
			return nil, fmt.Errorf("driver: frame %d: %w", frameIdx, mderr.ErrPositionTopologyMismatch)
		}

		if err := d.regenerateAll(positions); err != nil {
			return nil, err
		}
		if err := d.checkConsistency(); err != nil {
			return nil, err
		}

		energy, err := d.Topology.Evaluate(d.Lists)
		if err != nil {
			return nil, err
		}
		energies[frameIdx] = energy
		d.Log.Debug().Int("frame", frameIdx).Float64("energy", float64(energy)).Msg("frame evaluated")
	}
	return energies, nil
}

// regenerateAll rebuilds every potential's neighbour list against
// positions, one goroutine per list. The lists themselves are
// independent (each potential owns its own list), so the only shared
// state is the error slice each goroutine writes its own index into —
// there is no data race and no need for a mutex, and because each
// list's regeneration touches only that list's backing arrays, the
// result is identical to running them one at a time in order.
func (d *Driver) regenerateAll(positions []boundaries.Position) error {
	errs := make([]error, len(d.Lists))
	var wg sync.WaitGroup
	for i, list := range d.Lists {
		wg.Add(1)
		go func(i int, list neighbourlist.List) {
			defer wg.Done()
			errs[i] = list.Regenerate(positions, d.Boundary)
		}(i, list)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// checkConsistency verifies every list's cutoff still satisfies the
// minimum-image convention against the current boundary, in list
// order, stopping at the first failure so the returned error always
// reports the same offending list regardless of goroutine scheduling.
func (d *Driver) checkConsistency() error {
	for _, list := range d.Lists {
		if err := boundaries.PairlistConsistencyCheck(d.Boundary, list.Params().Cutoff); err != nil {
			return err
		}
	}
	return nil
}
