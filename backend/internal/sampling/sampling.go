// Package sampling implements interface-level Monte Carlo trial-move
// machinery: a Mover contract, a weighted move-type selector, and the
// Metropolis acceptance test, without committing to any particular
// move set or thermostat.
package sampling

import (
	"math"
	"math/rand"

	wr "github.com/mroth/weightedrand"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

// Mover proposes a trial move from the current positions and reports
// what it changed; concrete move types (single-atom displacement,
// rigid-body rotation, volume change) are left to callers — this
// package only sequences move selection and acceptance.
type Mover interface {
	// Propose returns a new position slice representing the trial
	// move's result. It must not mutate positions in place.
	Propose(rng *rand.Rand, positions []boundaries.Position) []boundaries.Position
}

// WeightedChoice picks one Mover from movers according to its weight.
type WeightedChoice struct {
	chooser wr.Chooser
	movers  []Mover
}

// NewWeightedChoice builds a WeightedChoice over movers, each paired
// with its relative selection weight.
func NewWeightedChoice(movers []Mover, weights []uint) *WeightedChoice {
	choices := make([]wr.Choice, len(movers))
	for i := range movers {
		choices[i] = wr.Choice{Item: i, Weight: weights[i]}
	}
	return &WeightedChoice{chooser: wr.NewChooser(choices...), movers: movers}
}

// Pick selects one Mover according to its configured weight.
func (w *WeightedChoice) Pick() Mover {
	idx := w.chooser.Pick().(int)
	return w.movers[idx]
}

// AcceptanceProbability computes the Metropolis criterion
// min(1, exp(-(eNew-eOld)/kT)) for a proposed move's energy change at
// temperature temp.
func AcceptanceProbability(eOld, eNew units.Energy, temp units.Temperature) float64 {
	delta := float64(eNew) - float64(eOld)
	if delta <= 0 {
		return 1
	}
	kt := float64(temp.ThermalEnergy())
	if kt <= 0 {
		return 0
	}
	return math.Exp(-delta / kt)
}

// Accept applies the Metropolis test against a uniform random draw in
// [0, 1), returning whether the move should be accepted.
func Accept(rng *rand.Rand, eOld, eNew units.Energy, temp units.Temperature) bool {
	p := AcceptanceProbability(eOld, eNew, temp)
	return rng.Float64() < p
}
