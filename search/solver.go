// Package search picks moves with a depth-limited game tree search,
// either plain minimax or minimax with alpha-beta pruning.
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/domino14/halma/board"
	"github.com/domino14/halma/config"
	"github.com/domino14/halma/equity"
	"github.com/domino14/halma/movegen"
)

var (
	// ErrTerminalRoot means a search was started from a won position.
	ErrTerminalRoot = errors.New("cannot search from a won position")
	// ErrNoLegalMoves means a position where somebody has to move has no
	// move at all. The rules never allow this.
	ErrNoLegalMoves = errors.New("no legal moves in a position that is not won")
	ErrBadDepth     = errors.New("search depth must be at least 1")
)

// Stats counts the work done by the last search.
type Stats struct {
	Nodes       int
	Expansions  int
	Evaluations int
	Cutoffs     int
}

// Result is what a search found. If Leaf is set, a won position was
// reached DepthLeft plies above the depth limit and nothing else about
// the search is meaningful. Otherwise Child is the index of the best
// child of the root and Score its value for the side to move.
type Result struct {
	Leaf      *GameNode
	DepthLeft int

	Child int
	Score float64
	PV    PVLine
}

// IsLeaf returns true if the search stopped at a won position.
func (r Result) IsLeaf() bool {
	return r.Leaf != nil
}

// leafHit carries a won node up through the recursion.
type leafHit struct {
	node      *GameNode
	depthLeft int
}

// Solver runs tree searches. It is not safe for concurrent use.
type Solver struct {
	movegen  movegen.MoveGenerator
	strategy config.Strategy

	// set for the duration of one search
	evaluator equity.Evaluator
	maximizer board.Side
	round     int
	stats     Stats
}

func NewSolver(gen movegen.MoveGenerator, strategy config.Strategy) *Solver {
	return &Solver{movegen: gen, strategy: strategy}
}

func (s *Solver) Strategy() config.Strategy { return s.strategy }

func (s *Solver) SetStrategy(st config.Strategy) { s.strategy = st }

// Stats returns the counters of the last search.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Search looks depth plies ahead of root, scoring the positions at the
// depth limit with eval from the point of view of the side to move at
// root. A won position anywhere in the tree ends the search at once.
// Ties between children go to the one generated first.
//
// Search panics if root is already won or if depth is less than 1.
func (s *Solver) Search(root *GameNode, depth int, eval equity.Evaluator, round int) Result {
	if root.phase.Terminal() {
		panic(fmt.Errorf("%w: %v", ErrTerminalRoot, root.phase))
	}
	if depth < 1 {
		panic(fmt.Errorf("%w: %d", ErrBadDepth, depth))
	}
	s.evaluator = eval
	s.maximizer = root.phase.SideToMove()
	s.round = round
	s.stats = Stats{}

	s.stats.Nodes++
	s.expand(root)

	res := Result{Child: -1, Score: math.Inf(-1)}
	alpha := math.Inf(-1)
	beta := math.Inf(1)
	var childPV PVLine
	for i, child := range root.children {
		childPV.Clear()
		var v float64
		var leaf *leafHit
		switch s.strategy {
		case config.Minimax:
			v, leaf = s.minimax(child, depth-1, false, &childPV)
		default:
			v, leaf = s.alphabeta(child, depth-1, alpha, beta, false, &childPV)
		}
		if leaf != nil {
			return Result{Leaf: leaf.node, DepthLeft: leaf.depthLeft}
		}
		if v > res.Score {
			res.Score = v
			res.Child = i
			res.PV.Update(child.move, childPV)
		}
		alpha = math.Max(alpha, res.Score)
	}
	return res
}

// expand generates the children of node, once.
func (s *Solver) expand(node *GameNode) {
	if node.expanded {
		return
	}
	successors := s.movegen.Expand(node.position, node.phase.SideToMove())
	s.stats.Expansions++
	if len(successors) == 0 {
		panic(fmt.Errorf("%w (%v to move):\n%s", ErrNoLegalMoves,
			node.phase.SideToMove(), node.position.ToDisplayText()))
	}
	node.children = make([]*GameNode, len(successors))
	for i, sc := range successors {
		node.children[i] = &GameNode{position: sc.Position, phase: sc.Phase, move: sc.Move}
	}
	node.expanded = true
}

func (s *Solver) evaluate(node *GameNode) float64 {
	s.stats.Evaluations++
	return s.evaluator.Evaluate(node.position, s.maximizer, s.round)
}
