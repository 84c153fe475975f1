// halma plays computer against computer: one game, logged round by round,
// or a batch of games written out as YAML records.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/halma/automatic"
	"github.com/domino14/halma/board"
	"github.com/domino14/halma/config"
	"github.com/domino14/halma/movegen"
)

func setupLogging(cfg *config.Config) error {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(output).Level(lvl).With().Timestamp().Logger()
	return nil
}

func startPosition(cfg *config.Config) (*board.Position, error) {
	path := cfg.GetString(config.ConfigBoardFile)
	if path == "" {
		return board.StartingPosition(), nil
	}
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pos, err := board.ParsePosition(string(bts))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return pos, nil
}

func playOne(ctx context.Context, cfg *config.Config, start *board.Position) error {
	var rng *frand.RNG
	if s := cfg.GetString(config.ConfigSeed); s != "" {
		seed, err := automatic.ParseSeed(s)
		if err != nil {
			return err
		}
		rng = automatic.RNGFromSeed(seed)
	}
	evs, err := automatic.EvaluatorsFromConfig(cfg, rng)
	if err != nil {
		return err
	}
	r, err := automatic.NewGameRunner(cfg, movegen.NewGenerator(), evs)
	if err != nil {
		return err
	}
	r.Reset(start, board.Black)
	log.Info().Str("black", evs[board.Black].Name()).Str("white", evs[board.White].Name()).
		Msg("starting-game")
	o, err := r.Play(ctx)
	if err != nil {
		return err
	}
	fmt.Println(o.Final.Position().ToDisplayText())
	fmt.Println(o)
	return nil
}

func playBatch(ctx context.Context, cfg *config.Config, start *board.Position) error {
	var out io.Writer = os.Stdout
	path := cfg.GetString(config.ConfigGameLog)
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	err := automatic.CompVCompGames(ctx, cfg, start, cfg.GetInt(config.ConfigGames),
		cfg.GetInt(config.ConfigThreads), out)
	if err != nil {
		return err
	}
	if path != "" {
		summary, err := automatic.AnalyzeLogFile(path)
		if err != nil {
			return err
		}
		fmt.Println(summary)
	}
	return nil
}

func run() error {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}
	if p := cfg.GetString(config.ConfigCPUProfile); p != "" {
		f, err := os.Create(p)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	start, err := startPosition(cfg)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.GetInt(config.ConfigGames) > 1 {
		return playBatch(ctx, cfg, start)
	}
	return playOne(ctx, cfg, start)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
