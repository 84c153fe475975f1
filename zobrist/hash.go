package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/halma/board"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a halma position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	whiteToMove uint64
	posTable    [board.Dim * board.Dim][2]uint64
}

func (z *Zobrist) Initialize() {
	for i := range z.posTable {
		for s := range z.posTable[i] {
			z.posTable[i][s] = frand.Uint64n(bignum) + 1
		}
	}
	z.whiteToMove = frand.Uint64n(bignum) + 1
}

// https://stackoverflow.com/a/12996028/1737333
func hashUint64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * uint64(0xbf58476d1ce4e5b9)
	x = (x ^ (x >> 27)) * uint64(0x94d049bb133111eb)
	x = x ^ (x >> 31)
	return x
}

// Hash hashes the occupancy of pos and the side to move.
func (z *Zobrist) Hash(pos *board.Position, toMove board.Side) uint64 {
	key := uint64(0)
	for s := board.Black; s <= board.White; s++ {
		for _, c := range pos.Pieces(s) {
			key ^= z.posTable[int(c.Y)*board.Dim+int(c.X)][s]
		}
	}
	if toMove == board.White {
		key ^= z.whiteToMove
	}
	return key
}

// AddMove updates key for side s moving a piece from one square to
// another. The side to move flips. Applying the same move twice restores
// the key.
func (z *Zobrist) AddMove(key uint64, s board.Side, from, to board.Coords) uint64 {
	key ^= z.posTable[int(from.Y)*board.Dim+int(from.X)][s]
	key ^= z.posTable[int(to.Y)*board.Dim+int(to.X)][s]
	key ^= z.whiteToMove
	return key
}

// WithRound mixes an evaluation round number into a key.
func WithRound(key uint64, round int) uint64 {
	return key ^ hashUint64(uint64(round)+1)
}
