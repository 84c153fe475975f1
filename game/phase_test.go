package game

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/halma/board"
)

func TestSideToMove(t *testing.T) {
	is := is.New(t)
	is.Equal(Start(board.Black).SideToMove(), board.Black)
	is.Equal(Start(board.White).SideToMove(), board.White)
	is.Equal(Moved(board.Black).SideToMove(), board.White)
	is.Equal(Moved(board.White).SideToMove(), board.Black)
	is.True(!Moved(board.Black).Terminal())
	is.True(!Start(board.Black).Terminal())
}

func TestWon(t *testing.T) {
	is := is.New(t)
	p := Won(board.White)
	is.True(p.Terminal())
	w, ok := p.Winner()
	is.True(ok)
	is.Equal(w, board.White)
	_, ok = Moved(board.White).Winner()
	is.True(!ok)
	is.Equal(p.String(), "won(white)")

	defer func() {
		is.True(recover() != nil)
	}()
	p.SideToMove()
}
