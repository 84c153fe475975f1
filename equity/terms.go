package equity

import "github.com/domino14/halma/board"

// dontBlock penalizes a piece for every neighbouring opponent piece that
// has not yet left the opponent's base.
func dontBlock(pos *board.Position, c board.Coords, s board.Side) float64 {
	opp := s.Opposite()
	oppSq := board.SquareFor(opp)
	score := 0.0
	for _, d := range board.Directions {
		n := c.Add(d)
		if n.InBoard() && pos.Occupant(n) == oppSq && board.InBase(opp, n) {
			score -= 1
		}
	}
	return score
}

// edge penalizes pieces on the first and last rows.
func edge(c board.Coords) float64 {
	if c.Y == 0 || c.Y == board.Dim-1 {
		return -0.1
	}
	return 0
}

type pieceSum struct {
	// sum of table value and terms over all pieces
	total float64
	// best single table value
	best float64
	// pieces still in their own base
	inBase int
}

// sumPieces adds up the positional value of every piece of side s. A
// piece still in its own base has its table value lowered by discourage.
func sumPieces(pos *board.Position, s board.Side, t *Tables, discourage float64) pieceSum {
	if t == nil {
		t = &DefaultTables
	}
	ps := pieceSum{best: -MaxScore}
	for _, c := range pos.Pieces(s) {
		v := t.At(s, c)
		if board.InBase(s, c) {
			ps.inBase++
			v -= discourage
		}
		if v > ps.best {
			ps.best = v
		}
		ps.total += v + dontBlock(pos, c, s) + edge(c)
	}
	return ps
}
