// Package shell is an interactive command line for setting up positions,
// looking at searches and playing games one round at a time.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/halma/automatic"
	"github.com/domino14/halma/board"
	"github.com/domino14/halma/config"
	"github.com/domino14/halma/game"
	"github.com/domino14/halma/movegen"
	"github.com/domino14/halma/search"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("sending quit signal")
	errGameOver          = errors.New("the game is over; use new or load to start another")
)

type ShellController struct {
	l      *readline.Instance
	config *config.Config
	out    io.Writer

	gitVersion string

	gen    *movegen.Generator
	runner *automatic.GameRunner
	// where the current game started
	start *board.Position
	first board.Side
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// extractFields splits a command line into the command, its arguments and
// its -key value options. Negative numbers are arguments, not options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		if strings.HasPrefix(f, "-") && len(f) > 1 && !isNumber(f) {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := f[1:]
			cmd.options[key] = append(cmd.options[key], fields[i+1])
			i++
			continue
		}
		cmd.args = append(cmd.args, f)
	}
	return cmd, nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func newController(cfg *config.Config, out io.Writer) (*ShellController, error) {
	sc := &ShellController{config: cfg, out: out, gen: movegen.NewGenerator()}
	if err := sc.startGame(board.StartingPosition(), board.Black); err != nil {
		return nil, err
	}
	return sc, nil
}

// NewShellController makes a shell reading from the terminal, with a game
// from the standard position ready to be played.
func NewShellController(cfg *config.Config, gitVersion string) *ShellController {
	sc, err := newController(cfg, os.Stderr)
	if err != nil {
		panic(err)
	}
	sc.gitVersion = gitVersion
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mhalma>\033[0m ",
		HistoryFile:     "/tmp/halma-readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// startGame sets up a new runner from pos, with the current settings.
func (sc *ShellController) startGame(pos *board.Position, first board.Side) error {
	for s := board.Black; s <= board.White; s++ {
		if pos.IsWon(s) {
			return fmt.Errorf("this position is already won by %v", s)
		}
	}
	if err := sc.resetRunner(search.NewGameNode(pos, game.Start(first))); err != nil {
		return err
	}
	sc.start = pos
	sc.first = first
	return nil
}

// resetRunner builds a runner from the current settings and continues
// from node.
func (sc *ShellController) resetRunner(node *search.GameNode) error {
	var rng *frand.RNG
	if s := sc.config.GetString(config.ConfigSeed); s != "" {
		seed, err := automatic.ParseSeed(s)
		if err != nil {
			return err
		}
		rng = automatic.RNGFromSeed(seed)
	}
	evs, err := automatic.EvaluatorsFromConfig(sc.config, rng)
	if err != nil {
		return err
	}
	r, err := automatic.NewGameRunner(sc.config, sc.gen, evs)
	if err != nil {
		return err
	}
	r.ResetTo(node)
	sc.runner = r
	return nil
}

func (sc *ShellController) dispatch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye", "quit":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "load":
		return sc.load(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "gen":
		return sc.generate(cmd)
	case "search":
		return sc.search(cmd)
	case "step", "n":
		return sc.step(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "analyze":
		return sc.analyze(cmd)
	case "set":
		return sc.set(cmd)
	}
	return nil, fmt.Errorf("command %v not found", strconv.Quote(cmd.cmd))
}

// Execute runs a single command line, for when the shell is started with
// arguments instead of interactively.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.dispatch(line)
	if errors.Is(err, errQuit) {
		sig <- syscall.SIGINT
		return
	}
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	if sc.gitVersion != "" {
		sc.showMessage("halma " + sc.gitVersion)
	}
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.dispatch(line)
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	log.Info().Msg("shell-cleanup")
}
