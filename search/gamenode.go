package search

import (
	"fmt"

	"github.com/domino14/halma/board"
	"github.com/domino14/halma/game"
	"github.com/domino14/halma/movegen"
)

// A GameNode is a position in the search tree. It owns its children; the
// children are generated the first time the node is searched below, and
// kept in generation order.
type GameNode struct {
	position *board.Position
	phase    game.Phase
	// move leads from the parent to this node. Zero for a root.
	move     movegen.Move
	children []*GameNode
	expanded bool
}

// NewGameNode makes a root node.
func NewGameNode(pos *board.Position, phase game.Phase) *GameNode {
	return &GameNode{position: pos, phase: phase}
}

func (g *GameNode) Position() *board.Position { return g.position }
func (g *GameNode) Phase() game.Phase         { return g.phase }
func (g *GameNode) Move() movegen.Move        { return g.move }
func (g *GameNode) Expanded() bool            { return g.expanded }
func (g *GameNode) Children() []*GameNode     { return g.children }

// Detach returns child i and drops every other child, so that their
// subtrees can be collected. The node itself is no longer usable.
func (g *GameNode) Detach(i int) *GameNode {
	child := g.children[i]
	clear(g.children)
	g.children = nil
	return child
}

// CountNodes returns the size of the subtree rooted at g.
func (g *GameNode) CountNodes() int {
	n := 1
	for _, c := range g.children {
		n += c.CountNodes()
	}
	return n
}

func (g *GameNode) String() string {
	return fmt.Sprintf("<node %v move: %v children: %d expanded: %v>",
		g.phase, g.move, len(g.children), g.expanded)
}
