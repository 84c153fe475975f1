package board

// This file contains some sample boards, used mostly for testing.

// SampleBoard is a position in the plain board format.
type SampleBoard string

const (
	// StartBoard is the standard opening position.
	StartBoard SampleBoard = `1111100000000000
1111100000000000
1111000000000000
1110000000000000
1100000000000000
0000000000000000
0000000000000000
0000000000000000
0000000000000000
0000000000000000
0000000000000000
0000000000000022
0000000000000222
0000000000002222
0000000000022222
0000000000022222
`

	// AlmostWonBoard has Black one step (13,10)->(14,11) away from filling
	// its winning zone.
	AlmostWonBoard SampleBoard = `0000000000000000
0000000000000000
0000000000000000
0000000000000000
0000000000000000
0000000000000000
0002222222220000
0002222222220000
0000000200000000
0000000000000000
0000000000000100
0000000000000001
0000000000000111
0000000000001111
0000000000011111
0000000000011111
`

	// MidgameBoard is a crowded middle of the board with no win in reach
	// of a few plies for either side.
	MidgameBoard SampleBoard = `0000000000000000
0000100000000000
1010000000000000
0001100000000000
0100011000000000
0001000100000000
0010011010000000
0001000101200000
0000010010002000
0000000202200200
0000002020002000
0000000222200020
0000000000022000
0000000000000202
0000000000020000
0000000000000000
`
)

// MustParse parses a sample board and panics on error.
func (b SampleBoard) MustParse() *Position {
	p, err := ParsePosition(string(b))
	if err != nil {
		panic(err)
	}
	return p
}
