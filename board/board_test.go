package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestDirectionsSymmetric(t *testing.T) {
	is := is.New(t)
	for _, d := range Directions {
		found := false
		for _, o := range Directions {
			if o == d.Neg() {
				found = true
			}
		}
		is.True(found)
		is.True(d != Coords{})
	}
	// InBoard is symmetric: stepping out and back lands on the start.
	for y := int8(0); y < Dim; y++ {
		for x := int8(0); x < Dim; x++ {
			c := Coords{X: x, Y: y}
			for _, d := range Directions {
				n := c.Add(d)
				if n.InBoard() {
					is.True(n.Add(d.Neg()).InBoard())
					is.Equal(n.Add(d.Neg()), c)
				}
			}
		}
	}
}

func TestCoordsIndex(t *testing.T) {
	is := is.New(t)
	for i := 0; i < Dim*Dim; i++ {
		is.Equal(CoordsAt(i).idx(), i)
	}
}

func TestZones(t *testing.T) {
	is := is.New(t)
	for s := Black; s <= White; s++ {
		seen := map[Coords]bool{}
		for _, c := range Base(s) {
			is.True(c.InBoard())
			is.True(!seen[c])
			seen[c] = true
			is.True(InBase(s, c))
			is.True(InTarget(s.Opposite(), c))
			is.True(!InBase(s.Opposite(), c))
		}
		is.Equal(Target(s), Base(s.Opposite()))
	}
	// The white corner is the black corner rotated half a turn.
	for _, c := range Base(Black) {
		is.True(InBase(White, Coords{X: Dim - 1 - c.X, Y: Dim - 1 - c.Y}))
	}
	is.True(!InBase(Black, Coords{X: -1, Y: 0}))
}

func TestParseRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, b := range []SampleBoard{StartBoard, AlmostWonBoard, MidgameBoard} {
		p, err := ParsePosition(string(b))
		is.NoErr(err)
		is.Equal(p.String(), string(b))
		q, err := ParsePosition(p.String())
		is.NoErr(err)
		is.True(p.Equal(q))
	}
}

func TestParseCRLF(t *testing.T) {
	is := is.New(t)
	text := strings.ReplaceAll(string(StartBoard), "\n", "\r\n")
	p, err := ParsePosition(text)
	is.NoErr(err)
	is.True(p.Equal(StartingPosition()))
	// no trailing newline either
	p, err = ParsePosition(strings.TrimSuffix(string(StartBoard), "\n"))
	is.NoErr(err)
	is.True(p.Equal(StartingPosition()))
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)
	start := string(StartBoard)
	tests := []struct {
		name string
		text string
		err  error
	}{
		{"short", strings.Join(strings.Split(start, "\n")[:15], "\n"), ErrBadBoardSize},
		{"long row", strings.Replace(start, "1111100000000000\n", "11111000000000000\n", 1), ErrBadBoardSize},
		{"bad char", strings.Replace(start, "1100000000000000", "110000000000000x", 1), ErrBadCharacter},
		{"missing black", strings.Replace(start, "1100000000000000", "1000000000000000", 1), ErrBadPieceCount},
		{"extra white", strings.Replace(start, "1100000000000000", "1120000000000000", 1), ErrBadPieceCount},
		{"empty", "", ErrBadBoardSize},
	}
	for _, tc := range tests {
		_, err := ParsePosition(tc.text)
		is.True(errors.Is(err, tc.err)) // tc.name
	}
}

func TestNewPositionErrors(t *testing.T) {
	is := is.New(t)
	black := Base(Black)
	white := Base(White)
	white[0] = black[3]
	_, err := NewPosition(black, white)
	is.True(errors.Is(err, ErrOverlap))

	white = Base(White)
	white[0] = Coords{X: 16, Y: 3}
	_, err = NewPosition(black, white)
	is.True(errors.Is(err, ErrOutOfBoard))
}

func TestStartingPosition(t *testing.T) {
	is := is.New(t)
	p := StartingPosition()
	is.True(p.Equal(StartBoard.MustParse()))
	is.Equal(p.CountInBase(Black), NumPieces)
	is.Equal(p.CountInBase(White), NumPieces)
	is.True(!p.IsWon(Black))
	is.True(!p.IsWon(White))
	is.Equal(p.Occupant(Coords{X: 0, Y: 0}), BlackSquare)
	is.Equal(p.Occupant(Coords{X: 15, Y: 15}), WhiteSquare)
	is.True(p.Empty(Coords{X: 8, Y: 8}))
}

func TestIsWon(t *testing.T) {
	is := is.New(t)
	// Each side sits in the other's base.
	p, err := NewPosition(Base(White), Base(Black))
	is.NoErr(err)
	is.True(p.IsWon(Black))
	is.True(p.IsWon(White))

	// One piece short.
	almost := AlmostWonBoard.MustParse()
	is.True(!almost.IsWon(Black))
	won := almost.WithMove(Black, Coords{X: 13, Y: 10}, Coords{X: 14, Y: 11})
	is.True(won.IsWon(Black))
	is.True(!won.IsWon(White))
}

func TestWithMoveLeavesParent(t *testing.T) {
	is := is.New(t)
	p := StartingPosition()
	before := p.String()
	from := Coords{X: 4, Y: 0}
	to := Coords{X: 5, Y: 0}
	q := p.WithMove(Black, from, to)
	is.Equal(p.String(), before)
	is.True(q.Empty(from))
	is.Equal(q.Occupant(to), BlackSquare)
	is.Equal(q.CountInBase(Black), NumPieces-1)
	is.True(!p.Equal(q))
	is.True(p.Fingerprint() != q.Fingerprint())

	defer func() {
		is.True(recover() != nil)
	}()
	p.WithMove(White, from, to)
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	txt := StartingPosition().ToDisplayText()
	lines := strings.Split(strings.TrimSuffix(txt, "\n"), "\n")
	is.Equal(len(lines), Dim+3)
	is.True(strings.HasPrefix(lines[2], " 1|B B B B B . "))
	is.True(strings.HasSuffix(lines[Dim+1], ". W W W W W |"))

	txt = AlmostWonBoard.MustParse().ToDisplayText()
	// (14,11) is the last free square of Black's winning zone.
	is.True(strings.Contains(txt, "12|. . . . . . . . . . . . . . + B |"))
}
