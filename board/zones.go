package board

// blackBase is the top-left starting corner of Black, five squares wide on
// the first two rows and narrowing to two.
var blackBase = [NumPieces]Coords{
	{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
	{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1},
	{0, 2}, {1, 2}, {2, 2}, {3, 2},
	{0, 3}, {1, 3}, {2, 3},
	{0, 4}, {1, 4},
}

// whiteBase mirrors blackBase into the bottom-right corner.
var whiteBase = [NumPieces]Coords{
	{14, 11}, {15, 11},
	{13, 12}, {14, 12}, {15, 12},
	{12, 13}, {13, 13}, {14, 13}, {15, 13},
	{11, 14}, {12, 14}, {13, 14}, {14, 14}, {15, 14},
	{11, 15}, {12, 15}, {13, 15}, {14, 15}, {15, 15},
}

var inBase = func() (t [2][Dim * Dim]bool) {
	for _, c := range blackBase {
		t[Black][c.idx()] = true
	}
	for _, c := range whiteBase {
		t[White][c.idx()] = true
	}
	return
}()

// Base returns the starting corner of side s.
func Base(s Side) [NumPieces]Coords {
	if s == Black {
		return blackBase
	}
	return whiteBase
}

// Target returns the winning zone of side s: the corner it must fill
// completely, which is the opponent's base.
func Target(s Side) [NumPieces]Coords {
	return Base(s.Opposite())
}

// InBase returns true if c lies in the starting corner of s.
func InBase(s Side, c Coords) bool {
	return c.InBoard() && inBase[s][c.idx()]
}

// InTarget returns true if c lies in the winning zone of s.
func InTarget(s Side, c Coords) bool {
	return InBase(s.Opposite(), c)
}
