package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadBoardSize = errors.New("board text must have 16 rows of 16 squares")
	ErrBadCharacter = errors.New("unexpected character in board text")
)

// ParsePosition reads the plain board format: 16 lines of 16 characters,
// '0' for an empty square, '1' for a Black piece and '2' for a White
// piece. A trailing newline and CRLF line endings are accepted. Pieces are
// collected in row-major order.
func ParsePosition(text string) (*Position, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if len(lines) != Dim {
		return nil, fmt.Errorf("%w: got %d rows", ErrBadBoardSize, len(lines))
	}
	var pieces [2][]Coords
	for y, line := range lines {
		if len(line) != Dim {
			return nil, fmt.Errorf("%w: row %d has %d squares", ErrBadBoardSize, y, len(line))
		}
		for x := 0; x < Dim; x++ {
			c := Coords{X: int8(x), Y: int8(y)}
			switch line[x] {
			case '0':
			case '1':
				pieces[Black] = append(pieces[Black], c)
			case '2':
				pieces[White] = append(pieces[White], c)
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadCharacter, line[x], c)
			}
		}
	}
	var arrs [2][NumPieces]Coords
	for s := Black; s <= White; s++ {
		if len(pieces[s]) != NumPieces {
			return nil, fmt.Errorf("%w: %v has %d, want %d", ErrBadPieceCount,
				s, len(pieces[s]), NumPieces)
		}
		copy(arrs[s][:], pieces[s])
	}
	return NewPosition(arrs[Black], arrs[White])
}

// String serializes p in the plain board format read by ParsePosition.
func (p *Position) String() string {
	var sb strings.Builder
	sb.Grow(Dim * (Dim + 1))
	for i, sq := range p.grid {
		sb.WriteByte('0' + byte(sq))
		if i%Dim == Dim-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ToDisplayText renders the position for humans. Black pieces are shown
// as B, White pieces as W; empty squares of Black's winning zone are shown
// as + and of White's as -.
func (p *Position) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < Dim; x++ {
		fmt.Fprintf(&sb, "%c ", 'A'+x)
	}
	sb.WriteString("\n   " + strings.Repeat("-", Dim*2) + "\n")
	for y := 0; y < Dim; y++ {
		fmt.Fprintf(&sb, "%2d|", y+1)
		for x := 0; x < Dim; x++ {
			c := Coords{X: int8(x), Y: int8(y)}
			switch p.Occupant(c) {
			case BlackSquare:
				sb.WriteString("B ")
			case WhiteSquare:
				sb.WriteString("W ")
			default:
				switch {
				case InTarget(Black, c):
					sb.WriteString("+ ")
				case InTarget(White, c):
					sb.WriteString("- ")
				default:
					sb.WriteString(". ")
				}
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	return sb.String()
}
