package search

import (
	"fmt"
	"strings"

	"github.com/domino14/halma/movegen"
)

// PVLine is the principal variation: the line of play the search expects
// from the root.
type PVLine struct {
	Moves []movegen.Move
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = pvLine.Moves[:0]
}

// Update the principal variation line with a new best move,
// and a new line of best play after the best move.
func (pvLine *PVLine) Update(m movegen.Move, newPVLine PVLine) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, m)
	pvLine.Moves = append(pvLine.Moves, newPVLine.Moves...)
}

func (pvLine PVLine) String() string {
	var sb strings.Builder
	for i, m := range pvLine.Moves {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d:%v", i+1, m)
	}
	return sb.String()
}
