package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/halma/board"
	"github.com/domino14/halma/config"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -file /path/to/log.yaml",
			&shellcmd{"autoplay", nil, CmdOptions{"file": {"/path/to/log.yaml"}}},
			nil},
		{"step 3",
			&shellcmd{"step", []string{"3"}, CmdOptions{}},
			nil},
		{"search -depth 3 -strategy minimax ",
			&shellcmd{"search", nil,
				CmdOptions{"depth": {"3"}, "strategy": {"minimax"}}},
			nil,
		},
		{"set round-limit -1",
			&shellcmd{"set", []string{"round-limit", "-1"}, CmdOptions{}},
			nil},
		{`load "my boards/start.txt" -first white`,
			&shellcmd{"load", []string{"my boards/start.txt"}, CmdOptions{"first": {"white"}}},
			nil},
		{"autoplay -games", nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func testController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigMaxDepth, 1)
	var buf bytes.Buffer
	sc, err := newController(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	return sc, &buf
}

func TestShowAndGen(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	resp, err := sc.dispatch("show")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, board.StartingPosition().ToDisplayText()))
	is.True(strings.Contains(resp.message, "black to move (leading), 0 rounds played"))

	resp, err = sc.dispatch("gen")
	is.NoErr(err)
	n := len(sc.gen.Expand(board.StartingPosition(), board.Black))
	lines := strings.Split(strings.TrimSpace(resp.message), "\n")
	is.Equal(len(lines), n+2)
}

func TestStepAndSearch(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	resp, err := sc.dispatch("search -depth 2 -strategy minimax")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "minimax, depth 2, leading for black"))
	is.True(strings.Contains(resp.message, "Best: "))
	is.Equal(sc.runner.Rounds(), 0)

	resp, err = sc.dispatch("step 2")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "round 1: black plays"))
	is.True(strings.Contains(resp.message, "round 2: white plays"))
	is.Equal(sc.runner.Rounds(), 2)

	_, err = sc.dispatch("search -depth 0")
	is.True(err != nil)
	_, err = sc.dispatch("search -strategy mcts")
	is.True(err != nil)
}

func TestLoadAndAutoplay(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	path := filepath.Join(t.TempDir(), "almost.txt")
	is.NoErr(os.WriteFile(path, []byte(board.AlmostWonBoard), 0644))

	_, err := sc.dispatch("load " + path)
	is.NoErr(err)
	resp, err := sc.dispatch("autoplay")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "black won in round 1"))

	_, err = sc.dispatch("step")
	is.Equal(err, errGameOver)
	_, err = sc.dispatch("load " + filepath.Join(t.TempDir(), "missing.txt"))
	is.True(err != nil)

	_, err = sc.dispatch("new")
	is.NoErr(err)
	resp, err = sc.dispatch("autoplay -rounds 3")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "paused after 3 rounds"))
	// the game goes on
	_, err = sc.dispatch("step")
	is.NoErr(err)
	is.Equal(sc.runner.Rounds(), 4)
}

func TestAutoplayBatch(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "almost.txt")
	is.NoErr(os.WriteFile(path, []byte(board.AlmostWonBoard), 0644))
	_, err := sc.dispatch("load " + path)
	is.NoErr(err)

	games := filepath.Join(dir, "games.yaml")
	resp, err := sc.dispatch("autoplay -games 3 -threads 2 -file " + games)
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Games played: 3"))

	resp, err = sc.dispatch("analyze " + games)
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Games won: 3"))
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	resp, err := sc.dispatch("set")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "max-depth"))

	_, err = sc.dispatch("set evaluator1 proximity")
	is.NoErr(err)
	is.Equal(sc.runner.Evaluator(board.Black).Name(), "proximity")

	_, err = sc.dispatch("step")
	is.NoErr(err)
	is.Equal(sc.runner.Rounds(), 1)
	runner := sc.runner

	_, err = sc.dispatch("set max-depth 3")
	is.NoErr(err)
	is.Equal(sc.runner.MaxDepth(), 3)

	resp, err = sc.dispatch("set search")
	is.NoErr(err)
	is.Equal(resp.message, "alphabeta")

	_, err = sc.dispatch("set search minimax")
	is.NoErr(err)
	is.Equal(sc.runner.Solver().Strategy(), config.Minimax)
	// the game being played keeps going
	is.True(sc.runner == runner)
	is.Equal(sc.runner.Rounds(), 1)

	_, err = sc.dispatch("set evaluator2 leading")
	is.NoErr(err)
	is.True(sc.runner != runner)
	is.Equal(sc.runner.Rounds(), 0)
	is.Equal(sc.runner.MaxDepth(), 3)
	is.Equal(sc.runner.Solver().Strategy(), config.Minimax)

	for _, bad := range []string{
		"set max-depth 0", "set search mcts", "set evaluator2 oracle",
		"set log-level loud", "set colour blue", "set seed abc",
	} {
		_, err = sc.dispatch(bad)
		is.True(err != nil) // bad
	}
}

func TestHelpAndUnknown(t *testing.T) {
	is := is.New(t)
	sc, buf := testController(t)
	_, err := sc.dispatch("help")
	is.NoErr(err)
	is.True(strings.Contains(buf.String(), "autoplay"))
	buf.Reset()
	_, err = sc.dispatch("help search")
	is.NoErr(err)
	is.True(strings.Contains(buf.String(), "Ties go to the move generated first"))
	buf.Reset()
	_, err = sc.dispatch("help nothing")
	is.NoErr(err)
	is.True(strings.Contains(buf.String(), "There is no help text"))

	_, err = sc.dispatch("frobnicate")
	is.True(err != nil)
	_, err = sc.dispatch("exit")
	is.Equal(err, errQuit)
}

func TestAutocomplete(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	c := NewShellCompleter(sc)
	complete := func(line string) []string {
		matches, _ := c.Do([]rune(line), len(line))
		var out []string
		for _, m := range matches {
			out = append(out, string(m))
		}
		return out
	}
	is.Equal(complete("sea"), []string{"rch"})
	is.Equal(complete("search -st"), []string{"rategy"})
	is.Equal(complete("search -strategy "), []string{"minimax", "alphabeta"})
	is.Equal(complete("set evaluator1 le"), []string{"ading"})
	is.Equal(complete("new -first w"), []string{"hite"})
}
