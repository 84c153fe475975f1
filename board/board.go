package board

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

var (
	ErrBadPieceCount = errors.New("wrong number of pieces")
	ErrOverlap       = errors.New("two pieces on the same square")
	ErrOutOfBoard    = errors.New("piece outside of the board")
)

// A Position holds the coordinates of both sides' pieces and the
// occupancy grid derived from them. A Position is never modified once it
// has been handed out; making a move produces a new Position.
type Position struct {
	pieces [2][NumPieces]Coords
	grid   [Dim * Dim]Square
}

// NewPosition builds a position from the two sides' piece coordinates.
func NewPosition(black, white [NumPieces]Coords) (*Position, error) {
	p := &Position{}
	p.pieces[Black] = black
	p.pieces[White] = white
	for s := Black; s <= White; s++ {
		for _, c := range p.pieces[s] {
			if !c.InBoard() {
				return nil, fmt.Errorf("%w: %v %v", ErrOutOfBoard, s, c)
			}
			if p.grid[c.idx()] != EmptySquare {
				return nil, fmt.Errorf("%w: %v", ErrOverlap, c)
			}
			p.grid[c.idx()] = SquareFor(s)
		}
	}
	return p, nil
}

// StartingPosition returns the standard opening position: each side fills
// its own base.
func StartingPosition() *Position {
	p, err := NewPosition(Base(Black), Base(White))
	if err != nil {
		panic(err)
	}
	return p
}

// Pieces returns a copy of the coordinates of side s.
func (p *Position) Pieces(s Side) [NumPieces]Coords {
	return p.pieces[s]
}

// Occupant returns what is on square c. c must be in the board.
func (p *Position) Occupant(c Coords) Square {
	return p.grid[c.idx()]
}

// Empty returns true if nothing is on square c. c must be in the board.
func (p *Position) Empty(c Coords) bool {
	return p.grid[c.idx()] == EmptySquare
}

// WithMove returns a copy of p where the piece of side s standing on from
// has been moved to to. It panics if there is no such piece; the move
// generator only asks for moves of pieces it found on the grid.
func (p *Position) WithMove(s Side, from, to Coords) *Position {
	np := *p
	for i, c := range np.pieces[s] {
		if c == from {
			np.pieces[s][i] = to
			np.grid[from.idx()] = EmptySquare
			np.grid[to.idx()] = SquareFor(s)
			return &np
		}
	}
	panic(fmt.Sprintf("no %v piece at %v", s, from))
}

// IsWon returns true if every piece of side s stands in its winning zone.
func (p *Position) IsWon(s Side) bool {
	for _, c := range p.pieces[s] {
		if !InTarget(s, c) {
			return false
		}
	}
	return true
}

// CountInBase returns how many pieces of side s are still in its own base.
func (p *Position) CountInBase(s Side) int {
	n := 0
	for _, c := range p.pieces[s] {
		if InBase(s, c) {
			n++
		}
	}
	return n
}

// Equal compares occupancy only; the order pieces are stored in is not
// significant.
func (p *Position) Equal(o *Position) bool {
	return p.grid == o.grid
}

// Fingerprint is a fast hash of the position's text form. It is used to
// label game records, not for search.
func (p *Position) Fingerprint() uint64 {
	return xxhash.Sum64String(p.String())
}
