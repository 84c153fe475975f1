package equity

import (
	"github.com/domino14/halma/board"
)

// MaxScore bounds every evaluation: scores fall in [-MaxScore, MaxScore].
const MaxScore = 100.0

// Evaluator scores a position from the point of view of one side. The
// round number is passed for evaluators that want to change their
// behaviour as the game drags on.
type Evaluator interface {
	Evaluate(pos *board.Position, side board.Side, round int) float64
	Name() string
}

// stochastic is implemented by evaluators that may score the same
// position differently on two calls.
type stochastic interface {
	Stochastic() bool
}

// Deterministic returns true if e always gives the same score for the
// same position, side and round. Only deterministic evaluators may be
// cached.
func Deterministic(e Evaluator) bool {
	s, ok := e.(stochastic)
	return !ok || !s.Stochastic()
}

func clamp(v float64) float64 {
	if v > MaxScore {
		return MaxScore
	}
	if v < -MaxScore {
		return -MaxScore
	}
	return v
}
