package equity

import (
	"lukechampine.com/frand"

	"github.com/domino14/halma/board"
)

// BasePenalty is what Random takes off for each piece still at home.
const BasePenalty = 2.0

// Random scores uniformly at random, nudged to get pieces out of their
// base.
type Random struct {
	rng *frand.RNG
}

// NewRandom uses rng, or fresh entropy if rng is nil.
func NewRandom(rng *frand.RNG) *Random {
	if rng == nil {
		rng = frand.New()
	}
	return &Random{rng: rng}
}

func (r *Random) Evaluate(pos *board.Position, side board.Side, round int) float64 {
	score := r.rng.Float64()*2*MaxScore - MaxScore
	score -= BasePenalty * float64(pos.CountInBase(side))
	return clamp(score)
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) Stochastic() bool {
	return true
}
