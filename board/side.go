package board

// Side is one of the two players.
type Side uint8

const (
	// Black is side A. It starts in the top-left corner and is written as
	// '1' in board text.
	Black Side = iota
	// White is side B. It starts in the bottom-right corner and is written
	// as '2' in board text.
	White
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// Square is the content of one cell of the occupancy grid.
type Square uint8

const (
	EmptySquare Square = iota
	BlackSquare
	WhiteSquare
)

// SquareFor returns the square value that holds a piece of side s.
func SquareFor(s Side) Square {
	return Square(s + 1)
}

// Side returns the owner of a non-empty square.
func (sq Square) Side() Side {
	return Side(sq - 1)
}
