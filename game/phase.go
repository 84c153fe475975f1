// Package game holds the state of play that travels with a position: who
// has moved and whether somebody has won.
package game

import (
	"fmt"

	"github.com/domino14/halma/board"
)

// PhaseKind tags a Phase.
type PhaseKind uint8

const (
	// KindStart is the phase of a position nobody has moved into yet.
	KindStart PhaseKind = iota
	// KindMoved follows a move that did not win.
	KindMoved
	// KindWon follows a move that completed the mover's winning zone.
	KindWon
)

// Phase is the game state attached to a position. For Start it names the
// side to move first; for Moved and Won it names the side that just moved.
type Phase struct {
	Kind PhaseKind
	Side board.Side
}

func Start(s board.Side) Phase { return Phase{Kind: KindStart, Side: s} }
func Moved(s board.Side) Phase { return Phase{Kind: KindMoved, Side: s} }
func Won(s board.Side) Phase   { return Phase{Kind: KindWon, Side: s} }

// Terminal returns true once a side has won.
func (p Phase) Terminal() bool {
	return p.Kind == KindWon
}

// SideToMove returns the side whose turn it is. A terminal phase has no
// side to move; asking for one panics.
func (p Phase) SideToMove() board.Side {
	switch p.Kind {
	case KindStart:
		return p.Side
	case KindMoved:
		return p.Side.Opposite()
	}
	panic("no side to move in a won game")
}

// Winner returns the winning side, if any.
func (p Phase) Winner() (board.Side, bool) {
	return p.Side, p.Kind == KindWon
}

func (p Phase) String() string {
	switch p.Kind {
	case KindStart:
		return fmt.Sprintf("start(%v)", p.Side)
	case KindMoved:
		return fmt.Sprintf("moved(%v)", p.Side)
	default:
		return fmt.Sprintf("won(%v)", p.Side)
	}
}
