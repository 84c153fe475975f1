package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}

// WinRate counts wins out of a number of games. A draw counts as half a
// win.
type WinRate struct {
	Wins  float64
	Games int
}

func (w *WinRate) Push(score float64) {
	w.Wins += score
	w.Games++
}

// Rate returns the fraction of games won.
func (w WinRate) Rate() float64 {
	if w.Games == 0 {
		return 0
	}
	return w.Wins / float64(w.Games)
}

// Interval returns the lower and upper bounds of the win rate at the given
// confidence (0 to 100 percent), using the normal approximation. The
// bounds are clipped to [0, 1].
func (w WinRate) Interval(confidence float64) (float64, float64) {
	if w.Games == 0 {
		return 0, 1
	}
	p := w.Rate()
	half := ZVal(confidence) * math.Sqrt(p*(1-p)/float64(w.Games))
	return math.Max(0, p-half), math.Min(1, p+half)
}
