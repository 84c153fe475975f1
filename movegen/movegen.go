// Package movegen generates every legal successor of a position: single
// steps into an adjacent empty square, and every square reachable by a
// chain of one or more jumps.
package movegen

import (
	"fmt"

	"github.com/domino14/halma/board"
	"github.com/domino14/halma/game"
)

// Move describes how a successor was reached.
type Move struct {
	From board.Coords
	To   board.Coords
	Jump bool
}

func (m Move) String() string {
	sep := "-"
	if m.Jump {
		sep = "x"
	}
	return fmt.Sprintf("%v%s%v", m.From, sep, m.To)
}

// Successor is a position one move away from its parent, together with
// the phase the game is in after the move.
type Successor struct {
	Move     Move
	Position *board.Position
	Phase    game.Phase
}

// MoveGenerator expands a position for the side to move. The order of the
// returned successors is significant: search ties keep the first one.
type MoveGenerator interface {
	Expand(pos *board.Position, mover board.Side) []Successor
}

// Generator is the standard MoveGenerator.
type Generator struct {
	// squares reached by the jump chain of the current seed
	landed  [board.Dim * board.Dim]bool
	landing []board.Coords
	// destinations already produced for the current piece
	emitted [board.Dim * board.Dim]bool
	dests   []board.Coords

	expansions int
	generated  int
}

// NewGenerator creates a generator. A Generator is not safe for
// concurrent use; give each goroutine its own.
func NewGenerator() *Generator {
	return &Generator{
		landing: make([]board.Coords, 0, 32),
		dests:   make([]board.Coords, 0, 32),
	}
}

// Expand returns every position the mover can reach in one move. Pieces
// are visited in row-major board order, and for each piece the directions
// in board.Directions order; a step is recorded when the adjacent square is
// empty, otherwise the jump chain seeded in that direction is recorded.
// A piece standing in its winning zone may not leave it. Each destination
// is produced at most once per piece.
func (gen *Generator) Expand(pos *board.Position, mover board.Side) []Successor {
	gen.expansions++
	children := make([]Successor, 0, 64)
	own := board.SquareFor(mover)
	for i := 0; i < board.Dim*board.Dim; i++ {
		from := board.CoordsAt(i)
		if pos.Occupant(from) != own {
			continue
		}
		gen.resetDests()
		fromInTarget := board.InTarget(mover, from)
		for _, d := range board.Directions {
			step := from.Add(d)
			if !step.InBoard() {
				continue
			}
			if pos.Empty(step) {
				if fromInTarget && !board.InTarget(mover, step) {
					continue
				}
				if !gen.dest(step) {
					continue
				}
				children = append(children, gen.play(pos, mover, Move{From: from, To: step}))
				continue
			}
			jump := step.Add(d)
			if !jump.InBoard() || !pos.Empty(jump) {
				continue
			}
			gen.resetLanding()
			gen.land(jump)
			gen.jumpChain(pos, jump, d)
			for _, to := range gen.landing {
				if fromInTarget && !board.InTarget(mover, to) {
					continue
				}
				if !gen.dest(to) {
					continue
				}
				children = append(children, gen.play(pos, mover, Move{From: from, To: to, Jump: true}))
			}
		}
	}
	return children
}

func (gen *Generator) play(pos *board.Position, mover board.Side, m Move) Successor {
	gen.generated++
	np := pos.WithMove(mover, m.From, m.To)
	ph := game.Moved(mover)
	if np.IsWon(mover) {
		ph = game.Won(mover)
	}
	return Successor{Move: m, Position: np, Phase: ph}
}

// Stats returns how many times Expand was called and how many successors
// it produced in total.
func (gen *Generator) Stats() (expansions, generated int) {
	return gen.expansions, gen.generated
}
