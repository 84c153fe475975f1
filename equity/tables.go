package equity

import "github.com/domino14/halma/board"

// Table holds a positional value for every square, indexed [y][x].
type Table [board.Dim][board.Dim]float64

// Tables holds one positional table per side.
type Tables [2]Table

// At returns the value of square c for side s.
func (t *Tables) At(s board.Side, c board.Coords) float64 {
	return t[s][c.Y][c.X]
}

// DefaultTables rise towards each side's winning zone.
var DefaultTables = Tables{
	board.Black: {
		{-4.8, -4.5, -4.2, -3.8, -3.5, -3.2, -2.8, -2.5, -2.2, -1.8, -1.5, -1.2, -0.8, -0.5, -0.2, -0.2},
		{-4.5, -4.2, -3.8, -3.5, -3.2, -2.8, -2.5, -2.2, -1.8, -1.5, -1.2, -0.8, -0.5, -0.2, 0.2, 0.2},
		{-4.2, -3.8, -3.5, -3.2, -2.8, -2.5, -2.2, -1.8, -1.5, -1.2, -0.8, -0.5, -0.2, 0.2, 0.5, 0.5},
		{-3.8, -3.5, -3.2, -2.8, -2.5, -2.2, -1.8, -1.5, -1.2, -0.8, -0.5, -0.2, 0.2, 0.5, 0.8, 0.8},
		{-3.5, -3.2, -2.8, -2.5, -2.2, -1.8, -1.5, -1.2, -0.8, -0.5, -0.2, 0.2, 0.5, 0.8, 1.2, 1.2},
		{-3.2, -2.8, -2.5, -2.2, -1.8, -1.5, -1.2, -0.8, -0.5, -0.2, 0.2, 0.5, 0.8, 1.2, 1.5, 1.5},
		{-2.8, -2.5, -2.2, -1.8, -1.5, -1.2, -0.8, -0.5, -0.2, 0.2, 0.5, 0.8, 1.2, 1.5, 1.8, 1.8},
		{-2.5, -2.2, -1.8, -1.5, -1.2, -0.8, -0.5, -0.2, 0.2, 0.5, 0.8, 1.2, 1.5, 1.8, 2.2, 2.2},
		{-2.2, -1.8, -1.5, -1.2, -0.8, -0.5, -0.2, 0.2, 0.5, 0.8, 1.2, 1.5, 1.8, 2.2, 2.5, 2.5},
		{-1.8, -1.5, -1.2, -0.8, -0.5, -0.2, 0.2, 0.5, 0.8, 1.2, 1.5, 1.8, 2.2, 2.5, 2.8, 2.8},
		{-1.5, -1.2, -0.8, -0.5, -0.2, 0.2, 0.5, 0.8, 1.2, 1.5, 1.8, 2.2, 2.5, 2.8, 3.2, 3.2},
		{-1.2, -0.8, -0.5, -0.2, 0.2, 0.5, 0.8, 1.2, 1.5, 1.8, 2.2, 2.5, 2.8, 3.2, 3.5, 3.5},
		{-0.8, -0.5, -0.2, 0.2, 0.5, 0.8, 1.2, 1.5, 1.8, 2.2, 2.5, 2.8, 3.2, 3.5, 3.8, 3.8},
		{-0.5, -0.2, 0.2, 0.5, 0.8, 1.2, 1.5, 1.8, 2.2, 2.5, 2.8, 3.2, 3.5, 3.8, 4.2, 4.2},
		{-0.2, 0.2, 0.5, 0.8, 1.2, 1.5, 1.8, 2.2, 2.5, 2.8, 3.2, 3.5, 3.8, 4.2, 4.5, 4.5},
		{0.2, 0.5, 0.8, 1.2, 1.5, 1.8, 2.2, 2.5, 2.8, 3.2, 3.5, 3.8, 4.2, 4.5, 4.8, 4.8},
	},
	board.White: {
		{4.8, 4.8, 4.5, 4.2, 3.8, 3.5, 3.2, 2.8, 2.5, 2.2, 1.8, 1.5, 1.2, 0.8, 0.5, 0.2},
		{4.5, 4.5, 4.2, 3.8, 3.5, 3.2, 2.8, 2.5, 2.2, 1.8, 1.5, 1.2, 0.8, 0.5, 0.2, -0.2},
		{4.2, 4.2, 3.8, 3.5, 3.2, 2.8, 2.5, 2.2, 1.8, 1.5, 1.2, 0.8, 0.5, 0.2, -0.2, -0.5},
		{3.8, 3.8, 3.5, 3.2, 2.8, 2.5, 2.2, 1.8, 1.5, 1.2, 0.8, 0.5, 0.2, -0.2, -0.5, -0.8},
		{3.5, 3.5, 3.2, 2.8, 2.5, 2.2, 1.8, 1.5, 1.2, 0.8, 0.5, 0.2, -0.2, -0.5, -0.8, -1.2},
		{3.2, 3.2, 2.8, 2.5, 2.2, 1.8, 1.5, 1.2, 0.8, 0.5, 0.2, -0.2, -0.5, -0.8, -1.2, -1.5},
		{2.8, 2.8, 2.5, 2.2, 1.8, 1.5, 1.2, 0.8, 0.5, 0.2, -0.2, -0.5, -0.8, -1.2, -1.5, -1.8},
		{2.5, 2.5, 2.2, 1.8, 1.5, 1.2, 0.8, 0.5, 0.2, -0.2, -0.5, -0.8, -1.2, -1.5, -1.8, -2.2},
		{2.2, 2.2, 1.8, 1.5, 1.2, 0.8, 0.5, 0.2, -0.2, -0.5, -0.8, -1.2, -1.5, -1.8, -2.2, -2.5},
		{1.8, 1.8, 1.5, 1.2, 0.8, 0.5, 0.2, -0.2, -0.5, -0.8, -1.2, -1.5, -1.8, -2.2, -2.5, -2.8},
		{1.5, 1.5, 1.2, 0.8, 0.5, 0.2, -0.2, -0.5, -0.8, -1.2, -1.5, -1.8, -2.2, -2.5, -2.8, -3.2},
		{1.2, 1.2, 0.8, 0.5, 0.2, -0.2, -0.5, -0.8, -1.2, -1.5, -1.8, -2.2, -2.5, -2.8, -3.2, -3.5},
		{0.8, 0.8, 0.5, 0.2, -0.2, -0.5, -0.8, -1.2, -1.5, -1.8, -2.2, -2.5, -2.8, -3.2, -3.5, -3.8},
		{0.5, 0.5, 0.2, -0.2, -0.5, -0.8, -1.2, -1.5, -1.8, -2.2, -2.5, -2.8, -3.2, -3.5, -3.8, -4.2},
		{0.2, 0.2, -0.2, -0.5, -0.8, -1.2, -1.5, -1.8, -2.2, -2.5, -2.8, -3.2, -3.5, -3.8, -4.2, -4.5},
		{-0.2, -0.2, -0.5, -0.8, -1.2, -1.5, -1.8, -2.2, -2.5, -2.8, -3.2, -3.5, -3.8, -4.2, -4.5, -4.8},
	},
}
