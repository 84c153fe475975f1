// Package automatic plays games between two evaluators, one at a time
// with a GameRunner or in batches with CompVCompGames.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/halma/board"
	"github.com/domino14/halma/config"
	"github.com/domino14/halma/equity"
	"github.com/domino14/halma/game"
	"github.com/domino14/halma/movegen"
	"github.com/domino14/halma/search"
	"github.com/domino14/halma/zobrist"
)

// Outcome is how a game ended.
type Outcome struct {
	// Won is false if the round limit was reached first.
	Won    bool
	Winner board.Side
	// Final is the won position if Won, the last position played otherwise.
	Final *search.GameNode
	// PliesToWin is how far below the last root the win was found.
	PliesToWin int
	Rounds     int
	Nodes      int
	First      board.Side
	// Path holds the starting position and every position played after it.
	Path  []*board.Position
	Moves []movegen.Move
}

// TotalPlies counts the moves played plus the plies to the win.
func (o *Outcome) TotalPlies() int {
	return len(o.Path) - 1 + o.PliesToWin
}

// Repetitions counts the positions of the game, with the same side to
// move, that had already been seen earlier in the game. The key is updated
// move by move from the starting position.
func (o *Outcome) Repetitions(z *zobrist.Zobrist) int {
	if len(o.Path) == 0 {
		return 0
	}
	toMove := o.First
	key := z.Hash(o.Path[0], toMove)
	seen := map[uint64]bool{key: true}
	reps := 0
	for _, m := range o.Moves {
		key = z.AddMove(key, toMove, m.From, m.To)
		toMove = toMove.Opposite()
		if seen[key] {
			reps++
		}
		seen[key] = true
	}
	return reps
}

func (o *Outcome) String() string {
	if !o.Won {
		return fmt.Sprintf("no winner within %d rounds (%d nodes)", o.Rounds, o.Nodes)
	}
	return fmt.Sprintf("%v won in round %d, %d plies past the last root (%d nodes)",
		o.Winner, o.Rounds, o.PliesToWin, o.Nodes)
}

// GameRunner is the master struct here for the automatic game logic. It
// keeps the current root of the search tree and re-roots it after every
// round.
type GameRunner struct {
	config     *config.Config
	solver     *search.Solver
	evaluators [2]equity.Evaluator
	maxDepth   int
	roundLimit int

	current *search.GameNode
	first   board.Side
	rounds  int
	nodes   int
	path    []*board.Position
	moves   []movegen.Move
	outcome *Outcome
}

// NewGameRunner makes a runner searching with the strategy, depth and
// round limit of cfg. evaluators is indexed by side; if the White entry
// is nil, Black's evaluator plays both sides. The runner starts from the
// standard position with Black to move.
func NewGameRunner(cfg *config.Config, gen movegen.MoveGenerator,
	evaluators [2]equity.Evaluator) (*GameRunner, error) {

	strategy, err := cfg.SearchStrategy()
	if err != nil {
		return nil, err
	}
	depth := cfg.GetInt(config.ConfigMaxDepth)
	if depth < 1 {
		return nil, fmt.Errorf("%w: %d", search.ErrBadDepth, depth)
	}
	if evaluators[board.Black] == nil {
		return nil, fmt.Errorf("%w: no evaluator for black", equity.ErrUnknownEvaluator)
	}
	if evaluators[board.White] == nil {
		evaluators[board.White] = evaluators[board.Black]
	}
	r := &GameRunner{
		config:     cfg,
		solver:     search.NewSolver(gen, strategy),
		evaluators: evaluators,
		maxDepth:   depth,
		roundLimit: cfg.RoundLimit(),
	}
	r.Reset(board.StartingPosition(), board.Black)
	return r, nil
}

// EvaluatorsFromConfig builds the evaluator of each side. rng feeds the
// random evaluators; nil means fresh entropy.
func EvaluatorsFromConfig(cfg *config.Config, rng *frand.RNG) ([2]equity.Evaluator, error) {
	var evs [2]equity.Evaluator
	for s := board.Black; s <= board.White; s++ {
		e, err := equity.FromConfig(cfg, s, rng)
		if err != nil {
			return evs, err
		}
		evs[s] = e
	}
	return evs, nil
}

// Reset starts a new game from pos with first to move.
func (r *GameRunner) Reset(pos *board.Position, first board.Side) {
	r.current = search.NewGameNode(pos, game.Start(first))
	r.first = first
	r.rounds = 0
	r.nodes = 0
	r.path = []*board.Position{pos}
	r.moves = nil
	r.outcome = nil
}

// ResetTo continues from node, keeping whatever part of the tree below it
// was already generated. The round count starts over.
func (r *GameRunner) ResetTo(node *search.GameNode) {
	first := node.Phase().Side
	if !node.Phase().Terminal() {
		first = node.Phase().SideToMove()
	}
	r.Reset(node.Position(), first)
	r.current = node
}

func (r *GameRunner) Current() *search.GameNode { return r.current }
func (r *GameRunner) Rounds() int               { return r.rounds }
func (r *GameRunner) Solver() *search.Solver    { return r.solver }
func (r *GameRunner) MaxDepth() int             { return r.maxDepth }

func (r *GameRunner) SetMaxDepth(d int) {
	if d < 1 {
		panic(fmt.Errorf("%w: %d", search.ErrBadDepth, d))
	}
	r.maxDepth = d
}

// SetRoundLimit changes the round limit; negative means no limit.
func (r *GameRunner) SetRoundLimit(n int) { r.roundLimit = n }

// Evaluator returns the evaluator playing side s.
func (r *GameRunner) Evaluator(s board.Side) equity.Evaluator {
	return r.evaluators[s]
}

// Done returns the outcome if the game is over.
func (r *GameRunner) Done() (*Outcome, bool) {
	return r.outcome, r.outcome != nil
}

// Resume forgets an outcome that came from the round limit, so that the
// game can go on.
func (r *GameRunner) Resume() {
	if r.outcome != nil && !r.outcome.Won {
		r.outcome = nil
	}
}

// PlayRound searches from the current root and plays the move found. It
// returns the outcome if the search ran into a won position, nil
// otherwise.
func (r *GameRunner) PlayRound() *Outcome {
	if r.outcome != nil {
		return r.outcome
	}
	side := r.current.Phase().SideToMove()
	eval := r.evaluators[side]
	log.Info().Int("round", r.rounds+1).Str("side", side.String()).
		Str("evaluator", eval.Name()).Msg("playing-round")

	res := r.solver.Search(r.current, r.maxDepth, eval, r.rounds)
	st := r.solver.Stats()
	r.nodes += st.Nodes
	r.rounds++

	if res.IsLeaf() {
		winner, _ := res.Leaf.Phase().Winner()
		r.outcome = r.finish(res.Leaf, r.maxDepth-res.DepthLeft)
		log.Info().Str("winner", winner.String()).Int("round", r.rounds).
			Int("plies-to-win", r.outcome.PliesToWin).Msg("game-won")
		log.Debug().Msg("\n" + res.Leaf.Position().ToDisplayText())
		return r.outcome
	}

	nchildren := len(r.current.Children())
	next := r.current.Detach(res.Child)
	r.current = next
	r.path = append(r.path, next.Position())
	r.moves = append(r.moves, next.Move())

	log.Debug().Int("child", res.Child).Int("children", nchildren).
		Float64("score", res.Score).Str("pv", res.PV.String()).
		Int("nodes", st.Nodes).Int("expansions", st.Expansions).
		Int("evaluations", st.Evaluations).Int("cutoffs", st.Cutoffs).
		Msg("search-returning")
	log.Debug().Msg("\n" + next.Position().ToDisplayText())
	return nil
}

// Play runs rounds until the game is won or the round limit is reached.
// The context is checked between rounds, never during a search.
func (r *GameRunner) Play(ctx context.Context) (*Outcome, error) {
	if r.outcome != nil {
		return r.outcome, nil
	}
	if r.current.Phase().Terminal() {
		panic(fmt.Errorf("%w: %v", search.ErrTerminalRoot, r.current.Phase()))
	}
	for {
		if r.roundLimit >= 0 && r.rounds >= r.roundLimit {
			log.Info().Int("rounds", r.rounds).Msg("round-limit-reached")
			r.outcome = r.finish(r.current, 0)
			return r.outcome, nil
		}
		select {
		case <-ctx.Done():
			log.Info().Int("rounds", r.rounds).Msg("game-interrupted")
			return nil, ctx.Err()
		default:
		}
		if o := r.PlayRound(); o != nil {
			return o, nil
		}
	}
}

func (r *GameRunner) finish(final *search.GameNode, pliesToWin int) *Outcome {
	o := &Outcome{
		Final:      final,
		PliesToWin: pliesToWin,
		Rounds:     r.rounds,
		Nodes:      r.nodes,
		First:      r.first,
		Path:       r.path,
		Moves:      r.moves,
	}
	o.Winner, o.Won = final.Phase().Winner()
	for s := board.Black; s <= board.White; s++ {
		if c, ok := r.evaluators[s].(*equity.Cached); ok {
			lookups, hits := c.Stats()
			log.Debug().Str("side", s.String()).Int("lookups", lookups).
				Int("hits", hits).Msg("eval-cache")
		}
	}
	return o
}
