package movegen

import "github.com/domino14/halma/board"

func sq(c board.Coords) int {
	return int(c.Y)*board.Dim + int(c.X)
}

func (gen *Generator) resetLanding() {
	for _, c := range gen.landing {
		gen.landed[sq(c)] = false
	}
	gen.landing = gen.landing[:0]
}

func (gen *Generator) resetDests() {
	for _, c := range gen.dests {
		gen.emitted[sq(c)] = false
	}
	gen.dests = gen.dests[:0]
}

// land records c as reachable by the current jump chain. It returns false
// if c was already recorded.
func (gen *Generator) land(c board.Coords) bool {
	if gen.landed[sq(c)] {
		return false
	}
	gen.landed[sq(c)] = true
	gen.landing = append(gen.landing, c)
	return true
}

// dest claims c as a destination of the current piece.
func (gen *Generator) dest(c board.Coords) bool {
	if gen.emitted[sq(c)] {
		return false
	}
	gen.emitted[sq(c)] = true
	gen.dests = append(gen.dests, c)
	return true
}

// jumpChain records every square reachable from c by further jumps over
// a piece of either side into an empty square. The jump that follows
// must change direction: prev, the direction that landed on c, is never
// tried again from c. Each recursion lands on a square not recorded
// before, so the search ends.
func (gen *Generator) jumpChain(pos *board.Position, c, prev board.Coords) {
	for _, d := range board.Directions {
		if d == prev {
			continue
		}
		over := c.Add(d)
		if !over.InBoard() || pos.Empty(over) {
			continue
		}
		to := over.Add(d)
		if !to.InBoard() || !pos.Empty(to) {
			continue
		}
		if gen.land(to) {
			gen.jumpChain(pos, to, d)
		}
	}
}
