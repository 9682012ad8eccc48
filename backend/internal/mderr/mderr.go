// Package mderr defines the closed error taxonomy surfaced by the energy
// kernel. Every fallible operation in units, boundaries, neighbourlist,
// topology and driver returns one of these sentinel errors (optionally
// wrapped with additional context via fmt.Errorf's %w), never a bare
// string or a panic, except where the contract explicitly says a
// violation is unreachable and may panic.
package mderr

import (
	"errors"
	"fmt"
)

// Sentinel errors matching the six variants of the closed taxonomy.
// Callers compare with errors.Is, matching Go idiom rather than the
// match-on-enum-variant style of the original Rust source.
var (
	// ErrMinimumImageConventionNotJustified is returned when a
	// neighbour list's cutoff is not smaller than the box's smallest
	// height, so the minimum-image convention cannot guarantee a pair
	// appears at most once.
	ErrMinimumImageConventionNotJustified = errors.New("minimum image convention not justified: make the cutoff smaller or the box bigger")

	// ErrIllegalTopology is returned when a potential's atom count
	// disagrees with the topology's, a parameter-type index is out of
	// range, or declared cutoffs among potentials disagree.
	ErrIllegalTopology = errors.New("illegal topology")

	// ErrCutoffRequired is returned when a potential that requires a
	// cutoff was configured with none.
	ErrCutoffRequired = errors.New("cutoff required")

	// ErrNeighbourlistNotCompatible is returned when a potential is
	// evaluated against a neighbour list whose parameters differ from
	// the potential's own.
	ErrNeighbourlistNotCompatible = errors.New("neighbourlist not compatible with potential")

	// ErrPositionTopologyMismatch is returned when a frame's atom count
	// differs from the topology's atom count.
	ErrPositionTopologyMismatch = errors.New("frame position count does not match topology")
)

// ValueError constructs the residual illegal-argument bucket (variant 6
// of the taxonomy). It exists so call sites that don't yet have a
// narrower sentinel can still report a typed, explainable error; new
// call sites should prefer a specific sentinel above when one applies.
func ValueError(description string) error {
	return fmt.Errorf("illegal combination of arguments: %s", description)
}

// Explain renders a human-readable explanation of err, mirroring the
// original source's Error::explain. It's a thin formatting helper for
// the CLI, not part of the core contract (the core returns plain errors
// and leaves rendering to callers).
func Explain(err error) string {
	switch {
	case errors.Is(err, ErrMinimumImageConventionNotJustified):
		return "MinimumImageConventionNotJustified: " + err.Error()
	case errors.Is(err, ErrIllegalTopology):
		return "IllegalTopology: " + err.Error()
	case errors.Is(err, ErrCutoffRequired):
		return "CutoffRequired: " + err.Error()
	case errors.Is(err, ErrNeighbourlistNotCompatible):
		return "NeighbourlistNotCompatible: " + err.Error()
	case errors.Is(err, ErrPositionTopologyMismatch):
		return "PositionTopologyMismatch: " + err.Error()
	default:
		return "ValueError: " + err.Error()
	}
}
