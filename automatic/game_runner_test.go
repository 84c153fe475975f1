package automatic

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/halma/board"
	"github.com/domino14/halma/config"
	"github.com/domino14/halma/equity"
	"github.com/domino14/halma/game"
	"github.com/domino14/halma/movegen"
	"github.com/domino14/halma/search"
	"github.com/domino14/halma/zobrist"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

type countingGen struct {
	gen   *movegen.Generator
	calls int
}

func (c *countingGen) Expand(pos *board.Position, mover board.Side) []movegen.Successor {
	c.calls++
	return c.gen.Expand(pos, mover)
}

func testConfig(depth, roundLimit int, strategy config.Strategy) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigMaxDepth, depth)
	cfg.Set(config.ConfigRoundLimit, roundLimit)
	cfg.Set(config.ConfigSearch, string(strategy))
	return cfg
}

func leadingVsComplex() [2]equity.Evaluator {
	return [2]equity.Evaluator{equity.NewLeading(), equity.NewComplex()}
}

func TestRoundLimitZero(t *testing.T) {
	is := is.New(t)
	gen := &countingGen{gen: movegen.NewGenerator()}
	r, err := NewGameRunner(testConfig(2, 0, config.AlphaBeta), gen, leadingVsComplex())
	is.NoErr(err)
	o, err := r.Play(context.Background())
	is.NoErr(err)
	is.True(!o.Won)
	is.Equal(o.Rounds, 0)
	is.Equal(o.Nodes, 0)
	is.Equal(gen.calls, 0)
	is.Equal(o.Final, r.Current())
	is.Equal(len(o.Path), 1)
	is.Equal(o.TotalPlies(), 0)
}

func TestRoundLimit(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(testConfig(1, 3, config.Minimax), movegen.NewGenerator(), leadingVsComplex())
	is.NoErr(err)
	o, err := r.Play(context.Background())
	is.NoErr(err)
	is.True(!o.Won)
	is.Equal(o.Rounds, 3)
	is.Equal(len(o.Path), 4)
	is.Equal(len(o.Moves), 3)
	is.True(o.Nodes > 3)
	// sides alternate, starting with black
	is.Equal(o.Final.Phase(), game.Moved(board.Black))
	is.Equal(r.Current().Phase().SideToMove(), board.White)

	// Playing again returns the same outcome.
	o2, err := r.Play(context.Background())
	is.NoErr(err)
	is.Equal(o, o2)
}

func TestDeterministicPath(t *testing.T) {
	is := is.New(t)
	play := func(st config.Strategy) *Outcome {
		r, err := NewGameRunner(testConfig(2, 6, st), movegen.NewGenerator(), leadingVsComplex())
		is.NoErr(err)
		o, err := r.Play(context.Background())
		is.NoErr(err)
		return o
	}
	a := play(config.AlphaBeta)
	b := play(config.AlphaBeta)
	m := play(config.Minimax)
	is.Equal(len(a.Path), 7)
	for _, o := range []*Outcome{b, m} {
		is.Equal(len(o.Path), len(a.Path))
		for i := range a.Path {
			is.True(a.Path[i].Equal(o.Path[i]))
		}
		is.Equal(a.Moves, o.Moves)
	}
	is.True(a.Nodes < m.Nodes)
}

func TestGameFromAlmostWon(t *testing.T) {
	is := is.New(t)
	for depth := 1; depth <= 2; depth++ {
		for _, st := range []config.Strategy{config.Minimax, config.AlphaBeta} {
			r, err := NewGameRunner(testConfig(depth, -1, st), movegen.NewGenerator(), leadingVsComplex())
			is.NoErr(err)
			r.Reset(board.AlmostWonBoard.MustParse(), board.Black)
			o, err := r.Play(context.Background())
			is.NoErr(err)
			is.True(o.Won)
			is.Equal(o.Winner, board.Black)
			is.Equal(o.Final.Phase(), game.Won(board.Black))
			is.True(o.Final.Position().IsWon(board.Black))
			is.Equal(o.PliesToWin, 1)
			is.Equal(o.Rounds, 1)
			is.Equal(o.TotalPlies(), 1)
			is.Equal(len(o.Path), 1)
			done, ok := r.Done()
			is.True(ok)
			is.Equal(done, o)
		}
	}
}

func TestWonRootPanics(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(testConfig(2, -1, config.AlphaBeta), movegen.NewGenerator(), leadingVsComplex())
	is.NoErr(err)
	won, err := board.NewPosition(board.Base(board.White), board.Base(board.Black))
	is.NoErr(err)
	r.ResetTo(search.NewGameNode(won, game.Won(board.White)))
	defer func() {
		err, ok := recover().(error)
		is.True(ok)
		is.True(errors.Is(err, search.ErrTerminalRoot))
	}()
	r.Play(context.Background())
}

func TestCancelledBeforeFirstRound(t *testing.T) {
	is := is.New(t)
	gen := &countingGen{gen: movegen.NewGenerator()}
	r, err := NewGameRunner(testConfig(2, -1, config.AlphaBeta), gen, leadingVsComplex())
	is.NoErr(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o, err := r.Play(ctx)
	is.True(o == nil)
	is.True(errors.Is(err, context.Canceled))
	is.Equal(gen.calls, 0)
}

func TestRunnerConfigErrors(t *testing.T) {
	is := is.New(t)
	_, err := NewGameRunner(testConfig(0, -1, config.AlphaBeta), movegen.NewGenerator(), leadingVsComplex())
	is.True(errors.Is(err, search.ErrBadDepth))
	_, err = NewGameRunner(testConfig(2, -1, "mcts"), movegen.NewGenerator(), leadingVsComplex())
	is.True(errors.Is(err, config.ErrBadStrategy))
	_, err = NewGameRunner(testConfig(2, -1, config.AlphaBeta), movegen.NewGenerator(), [2]equity.Evaluator{})
	is.True(errors.Is(err, equity.ErrUnknownEvaluator))
}

func TestSharedEvaluator(t *testing.T) {
	is := is.New(t)
	shared := equity.NewProximity()
	r, err := NewGameRunner(testConfig(1, 2, config.AlphaBeta), movegen.NewGenerator(),
		[2]equity.Evaluator{shared, nil})
	is.NoErr(err)
	is.Equal(r.Evaluator(board.Black), r.Evaluator(board.White))
	o, err := r.Play(context.Background())
	is.NoErr(err)
	is.Equal(o.Rounds, 2)
}

func TestEvaluatorsFromConfig(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigEvaluator1, "proximity")
	cfg.Set(config.ConfigEvaluator2, "combined")
	evs, err := EvaluatorsFromConfig(cfg, nil)
	is.NoErr(err)
	is.Equal(evs[board.Black].Name(), "proximity")
	is.Equal(evs[board.White].Name(), "combined(leading*0.6+discourage*0.4)")

	cfg.Set(config.ConfigEvaluator2, "montecarlo")
	_, err = EvaluatorsFromConfig(cfg, nil)
	is.True(errors.Is(err, equity.ErrUnknownEvaluator))
}

func TestRepetitions(t *testing.T) {
	is := is.New(t)
	z := &zobrist.Zobrist{}
	z.Initialize()
	bx, by := board.Coords{X: 4, Y: 0}, board.Coords{X: 5, Y: 0}
	wx, wy := board.Coords{X: 11, Y: 15}, board.Coords{X: 10, Y: 15}
	// Both sides shuttle one piece back and forth.
	moves := []movegen.Move{
		{From: bx, To: by}, {From: wx, To: wy},
		{From: by, To: bx}, {From: wy, To: wx},
		{From: bx, To: by},
	}
	path := []*board.Position{board.StartingPosition()}
	side := board.Black
	for _, m := range moves {
		path = append(path, path[len(path)-1].WithMove(side, m.From, m.To))
		side = side.Opposite()
	}
	is.True(path[4].Equal(path[0]))

	o := &Outcome{First: board.Black, Path: path[:4], Moves: moves[:3]}
	is.Equal(o.Repetitions(z), 0)
	o = &Outcome{First: board.Black, Path: path[:5], Moves: moves[:4]}
	is.Equal(o.Repetitions(z), 1)
	o = &Outcome{First: board.Black, Path: path, Moves: moves}
	is.Equal(o.Repetitions(z), 2)
	is.Equal((&Outcome{}).Repetitions(z), 0)
}
