package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/domino14/halma/automatic"
	"github.com/domino14/halma/board"
	"github.com/domino14/halma/config"
	"github.com/domino14/halma/equity"
	"github.com/domino14/halma/search"
)

const defaultGameLog = "/tmp/halma-games.yaml"

func parseSide(s string) (board.Side, error) {
	switch strings.ToLower(s) {
	case "", "black", "b", "1":
		return board.Black, nil
	case "white", "w", "2":
		return board.White, nil
	}
	return board.Black, fmt.Errorf("unknown side %q; use black or white", s)
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	first, err := parseSide(cmd.options.String("first"))
	if err != nil {
		return nil, err
	}
	if err := sc.startGame(board.StartingPosition(), first); err != nil {
		return nil, err
	}
	return sc.show(cmd)
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need a board file to load")
	}
	first, err := parseSide(cmd.options.String("first"))
	if err != nil {
		return nil, err
	}
	bts, err := os.ReadFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	pos, err := board.ParsePosition(string(bts))
	if err != nil {
		return nil, err
	}
	if err := sc.startGame(pos, first); err != nil {
		return nil, err
	}
	return sc.show(cmd)
}

func (sc *ShellController) phaseLine() string {
	if o, done := sc.runner.Done(); done {
		return o.String()
	}
	node := sc.runner.Current()
	side := node.Phase().SideToMove()
	return fmt.Sprintf("%v to move (%s), %d rounds played", side,
		sc.runner.Evaluator(side).Name(), sc.runner.Rounds())
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	node := sc.runner.Current()
	if o, done := sc.runner.Done(); done {
		node = o.Final
	}
	return msg(node.Position().ToDisplayText() + sc.phaseLine()), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if _, done := sc.runner.Done(); done {
		return nil, errGameOver
	}
	node := sc.runner.Current()
	side := node.Phase().SideToMove()
	succs := sc.gen.Expand(node.Position(), side)

	var ss strings.Builder
	fmt.Fprintf(&ss, "%d moves for %v\n", len(succs), side)
	fmt.Fprintf(&ss, "%-5s%-16s%-6s%-6s\n", "", "Move", "Jump", "Wins")
	for i, s := range succs {
		jump, wins := "", ""
		if s.Move.Jump {
			jump = "x"
		}
		if s.Phase.Terminal() {
			wins = "*"
		}
		fmt.Fprintf(&ss, "%3d: %-16s%-6s%-6s\n", i+1, s.Move.String(), jump, wins)
	}
	return msg(ss.String()), nil
}

func (sc *ShellController) search(cmd *shellcmd) (*Response, error) {
	if _, done := sc.runner.Done(); done {
		return nil, errGameOver
	}
	depth, err := cmd.options.IntDefault("depth", sc.runner.MaxDepth())
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, fmt.Errorf("%w: %d", search.ErrBadDepth, depth)
	}
	strategy := sc.runner.Solver().Strategy()
	if s := cmd.options.String("strategy"); s != "" {
		if strategy, err = config.ParseStrategy(s); err != nil {
			return nil, err
		}
	}
	node := sc.runner.Current()
	side := node.Phase().SideToMove()
	solver := search.NewSolver(sc.gen, strategy)
	res := solver.Search(node, depth, sc.runner.Evaluator(side), sc.runner.Rounds())
	st := solver.Stats()

	var ss strings.Builder
	fmt.Fprintf(&ss, "%v, depth %d, %s for %v\n", strategy, depth,
		sc.runner.Evaluator(side).Name(), side)
	if res.IsLeaf() {
		winner, _ := res.Leaf.Phase().Winner()
		fmt.Fprintf(&ss, "%v wins %d plies ahead\n", winner, depth-res.DepthLeft)
	} else {
		best := node.Children()[res.Child]
		fmt.Fprintf(&ss, "Best: %v (child %d of %d)  Score: %.3f\n", best.Move(),
			res.Child+1, len(node.Children()), res.Score)
		fmt.Fprintf(&ss, "PV: %v\n", res.PV.String())
	}
	fmt.Fprintf(&ss, "Nodes: %d  Expansions: %d  Evaluations: %d  Cutoffs: %d",
		st.Nodes, st.Expansions, st.Evaluations, st.Cutoffs)
	return msg(ss.String()), nil
}

func (sc *ShellController) step(cmd *shellcmd) (*Response, error) {
	n := 1
	if len(cmd.args) > 0 {
		var err error
		if n, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	if _, done := sc.runner.Done(); done {
		return nil, errGameOver
	}
	var ss strings.Builder
	for i := 0; i < n; i++ {
		side := sc.runner.Current().Phase().SideToMove()
		if o := sc.runner.PlayRound(); o != nil {
			break
		}
		fmt.Fprintf(&ss, "round %d: %v plays %v\n", sc.runner.Rounds(), side,
			sc.runner.Current().Move())
	}
	resp, _ := sc.show(cmd)
	return msg(ss.String() + resp.message), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	games, err := cmd.options.IntDefault("games", 1)
	if err != nil {
		return nil, err
	}
	if games > 1 {
		return sc.autoplayBatch(cmd, games)
	}
	if _, done := sc.runner.Done(); done {
		return nil, errGameOver
	}
	rounds, err := cmd.options.IntDefault("rounds", -1)
	if err != nil {
		return nil, err
	}
	if rounds >= 0 {
		sc.runner.SetRoundLimit(sc.runner.Rounds() + rounds)
	} else {
		sc.runner.SetRoundLimit(sc.config.RoundLimit())
	}
	defer sc.runner.SetRoundLimit(sc.config.RoundLimit())
	o, err := sc.runner.Play(context.Background())
	if err != nil {
		return nil, err
	}
	if !o.Won {
		sc.runner.Resume()
		resp, _ := sc.show(cmd)
		return msg(fmt.Sprintf("paused after %d rounds\n", o.Rounds) + resp.message), nil
	}
	return sc.show(cmd)
}

func (sc *ShellController) autoplayBatch(cmd *shellcmd, games int) (*Response, error) {
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigThreads))
	if err != nil {
		return nil, err
	}
	path := cmd.options.String("file")
	if path == "" {
		path = sc.config.GetString(config.ConfigGameLog)
	}
	if path == "" {
		path = defaultGameLog
	}
	if sc.first != board.Black {
		return nil, errors.New("batches always start with black to move")
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	err = automatic.CompVCompGames(context.Background(), sc.config, sc.start, games, threads, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	out, err := automatic.AnalyzeLogFile(path)
	if err != nil {
		return nil, err
	}
	return msg("Games written to " + path + "\n" + out), nil
}

func (sc *ShellController) analyze(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need a game log to analyze")
	}
	out, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(out), nil
}

// settable lists what set can change, with a check for each value.
var settable = map[string]func(string) (interface{}, error){
	config.ConfigMaxDepth: func(v string) (interface{}, error) {
		d, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		if d < 1 {
			return nil, fmt.Errorf("%w: %d", search.ErrBadDepth, d)
		}
		return d, nil
	},
	config.ConfigRoundLimit: func(v string) (interface{}, error) { return strconv.Atoi(v) },
	config.ConfigThreads:    func(v string) (interface{}, error) { return strconv.Atoi(v) },
	config.ConfigSearch: func(v string) (interface{}, error) {
		s, err := config.ParseStrategy(v)
		return string(s), err
	},
	config.ConfigEvaluator1: checkEvaluator,
	config.ConfigEvaluator2: checkEvaluator,
	config.ConfigLogLevel: func(v string) (interface{}, error) {
		switch v {
		case "none", "round", "all":
			return v, nil
		}
		return nil, fmt.Errorf("%w: %q", config.ErrBadLogLevel, v)
	},
	config.ConfigSeed: func(v string) (interface{}, error) {
		if _, err := automatic.ParseSeed(v); err != nil {
			return nil, err
		}
		return v, nil
	},
	config.ConfigEvalCache: func(v string) (interface{}, error) { return strconv.ParseBool(v) },
	config.ConfigTablesFile: func(v string) (interface{}, error) {
		if _, err := os.Stat(v); err != nil {
			return nil, err
		}
		return v, nil
	},
}

func checkEvaluator(v string) (interface{}, error) {
	if _, err := equity.New(v, nil); err != nil {
		return nil, err
	}
	return v, nil
}

func (sc *ShellController) settings() string {
	keys := make([]string, 0, len(settable))
	for k := range settable {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var ss strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&ss, "%-16s%v\n", k, sc.config.Get(k))
	}
	return ss.String()
}

// set changes a setting. Depth, strategy and round limit change on the
// running game; anything else restarts it from the current position with
// the new settings, and the round count starts over.
func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.settings()), nil
	}
	key := cmd.args[0]
	check, ok := settable[key]
	if !ok {
		return nil, fmt.Errorf("cannot set %q", key)
	}
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%v", sc.config.Get(key))), nil
	}
	val, err := check(cmd.args[1])
	if err != nil {
		return nil, err
	}
	sc.config.Set(key, val)
	if key == config.ConfigLogLevel {
		lvl, err := sc.config.LogLevel()
		if err != nil {
			return nil, err
		}
		zerolog.SetGlobalLevel(lvl)
	}
	switch key {
	case config.ConfigMaxDepth:
		// depth, strategy and round limit apply to the game being played
		sc.runner.SetMaxDepth(val.(int))
	case config.ConfigSearch:
		st, err := config.ParseStrategy(val.(string))
		if err != nil {
			return nil, err
		}
		sc.runner.Solver().SetStrategy(st)
	case config.ConfigRoundLimit:
		sc.runner.SetRoundLimit(val.(int))
	default:
		if _, done := sc.runner.Done(); !done {
			if err := sc.resetRunner(sc.runner.Current()); err != nil {
				return nil, err
			}
		}
	}
	return msg(fmt.Sprintf("set %s to %v", key, val)), nil
}
