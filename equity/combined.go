package equity

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/halma/board"
)

// Weighted is one part of a Combined evaluator.
type Weighted struct {
	Evaluator Evaluator
	Weight    float64
}

// Combined is a weighted sum of other evaluators.
type Combined struct {
	Parts []Weighted
}

func NewCombined(parts ...Weighted) *Combined {
	return &Combined{Parts: parts}
}

func (c *Combined) Evaluate(pos *board.Position, side board.Side, round int) float64 {
	return clamp(lo.SumBy(c.Parts, func(w Weighted) float64 {
		return w.Weight * w.Evaluator.Evaluate(pos, side, round)
	}))
}

func (c *Combined) Name() string {
	parts := lo.Map(c.Parts, func(w Weighted, _ int) string {
		return fmt.Sprintf("%s*%g", w.Evaluator.Name(), w.Weight)
	})
	return "combined(" + strings.Join(parts, "+") + ")"
}

func (c *Combined) Stochastic() bool {
	return lo.SomeBy(c.Parts, func(w Weighted) bool {
		return !Deterministic(w.Evaluator)
	})
}
