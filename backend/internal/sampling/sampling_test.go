package sampling

import (
	"math/rand"
	"testing"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopMover struct{ id int }

func (m noopMover) Propose(rng *rand.Rand, positions []boundaries.Position) []boundaries.Position {
	out := make([]boundaries.Position, len(positions))
	copy(out, positions)
	return out
}

func TestWeightedChoiceAlwaysPicksSoleMover(t *testing.T) {
	wc := NewWeightedChoice([]Mover{noopMover{id: 0}}, []uint{1})
	for i := 0; i < 10; i++ {
		require.Equal(t, noopMover{id: 0}, wc.Pick())
	}
}

func TestAcceptanceProbabilityIsOneForDownhillMove(t *testing.T) {
	p := AcceptanceProbability(10, 5, 300*units.K)
	assert.Equal(t, 1.0, p)
}

func TestAcceptanceProbabilityDecaysForUphillMove(t *testing.T) {
	p := AcceptanceProbability(0, 1000, 300*units.K)
	assert.Less(t, p, 0.01)
}

func TestAcceptDeterministicForZeroTemperatureUphill(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	accepted := Accept(rng, 0, 5, 0)
	assert.False(t, accepted)
}
