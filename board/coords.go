package board

import "fmt"

// Dim is the width and height of the board.
const Dim = 16

// NumPieces is how many pieces each side owns.
const NumPieces = 19

// Coords is a square on the board. X is the column, Y is the row.
type Coords struct {
	X int8
	Y int8
}

// Directions are the eight compass steps a piece may move or jump along.
// Every direction's opposite is also in the list.
var Directions = [8]Coords{
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
}

// InBoard returns true if both components are in [0, Dim).
func (c Coords) InBoard() bool {
	return c.X >= 0 && c.X < Dim && c.Y >= 0 && c.Y < Dim
}

// Add returns c moved by d.
func (c Coords) Add(d Coords) Coords {
	return Coords{X: c.X + d.X, Y: c.Y + d.Y}
}

// Neg returns the opposite direction.
func (c Coords) Neg() Coords {
	return Coords{X: -c.X, Y: -c.Y}
}

func (c Coords) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// idx is the row-major index of an in-board square.
func (c Coords) idx() int {
	return int(c.Y)*Dim + int(c.X)
}

// CoordsAt is the inverse of the row-major square index.
func CoordsAt(i int) Coords {
	return Coords{X: int8(i % Dim), Y: int8(i / Dim)}
}
