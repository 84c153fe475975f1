package equity

import "github.com/domino14/halma/board"

// Proximity sums the positional table over a side's pieces.
type Proximity struct {
	Power  float64
	Tables *Tables
}

func NewProximity() *Proximity {
	return &Proximity{Power: 1.08}
}

func (p *Proximity) Evaluate(pos *board.Position, side board.Side, round int) float64 {
	ps := sumPieces(pos, side, p.Tables, 0)
	return clamp(ps.total * p.Power)
}

func (p *Proximity) Name() string {
	return "proximity"
}

// Leading is Proximity plus a bonus for the most advanced piece.
type Leading struct {
	MultiPower  float64
	SinglePower float64
	Tables      *Tables
}

func NewLeading() *Leading {
	return &Leading{MultiPower: 0.9, SinglePower: 2.5}
}

func (l *Leading) Evaluate(pos *board.Position, side board.Side, round int) float64 {
	ps := sumPieces(pos, side, l.Tables, 0)
	return clamp(ps.total*l.MultiPower + ps.best*l.SinglePower)
}

func (l *Leading) Name() string {
	return "leading"
}

// DiscourageStart is Proximity with a penalty for every piece that has
// not left its base.
type DiscourageStart struct {
	OtherPower      float64
	DiscouragePower float64
	Tables          *Tables
}

func NewDiscourageStart() *DiscourageStart {
	return &DiscourageStart{OtherPower: 1.1, DiscouragePower: 1.0}
}

func (d *DiscourageStart) Evaluate(pos *board.Position, side board.Side, round int) float64 {
	ps := sumPieces(pos, side, d.Tables, d.DiscouragePower)
	return clamp(ps.total * d.OtherPower)
}

func (d *DiscourageStart) Name() string {
	return "discourage"
}

// Complex is the leading piece evaluator with an optional base penalty.
// NewComplex leaves the penalty off, so by default it scores exactly like
// Leading. A DiscouragePower above zero also counts against the leading
// piece.
type Complex struct {
	SinglePower     float64
	MultiPower      float64
	DiscouragePower float64
	Tables          *Tables
}

func NewComplex() *Complex {
	return &Complex{SinglePower: 2.5, MultiPower: 0.9}
}

func (c *Complex) Evaluate(pos *board.Position, side board.Side, round int) float64 {
	ps := sumPieces(pos, side, c.Tables, c.DiscouragePower)
	return clamp(ps.total*c.MultiPower + ps.best*c.SinglePower)
}

func (c *Complex) Name() string {
	return "complex"
}
