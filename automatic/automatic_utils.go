package automatic

// Data collection for automatic games: many computer vs computer games
// played at once, each written out as a YAML record.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/domino14/halma/board"
	"github.com/domino14/halma/config"
	"github.com/domino14/halma/movegen"
	"github.com/domino14/halma/zobrist"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// playing guards CompVCompGames; IsPlaying only reports it.
var playing atomic.Bool

func startPlaying() bool {
	if !playing.CompareAndSwap(false, true) {
		return false
	}
	IsPlaying.Set(1)
	return true
}

func stopPlaying() {
	IsPlaying.Set(0)
	playing.Store(false)
}

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

// GameRecord is what gets logged about one game.
type GameRecord struct {
	ID          string   `yaml:"id"`
	Start       string   `yaml:"start"`
	Final       string   `yaml:"final"`
	Black       string   `yaml:"black"`
	White       string   `yaml:"white"`
	Strategy    string   `yaml:"strategy"`
	Depth       int      `yaml:"depth"`
	Won         bool     `yaml:"won"`
	Winner      string   `yaml:"winner,omitempty"`
	Rounds      int      `yaml:"rounds"`
	Plies       int      `yaml:"plies"`
	Nodes       int      `yaml:"nodes"`
	Repetitions int      `yaml:"repetitions"`
	Seed        string   `yaml:"seed,omitempty"`
	Moves       []string `yaml:"moves,flow"`
}

func fingerprint(p *board.Position) string {
	return fmt.Sprintf("%016x", p.Fingerprint())
}

// NewGameRecord summarizes a finished game.
func NewGameRecord(r *GameRunner, o *Outcome, z *zobrist.Zobrist) *GameRecord {
	rec := &GameRecord{
		ID:          uuid.New().String(),
		Start:       fingerprint(o.Path[0]),
		Final:       fingerprint(o.Final.Position()),
		Black:       r.Evaluator(board.Black).Name(),
		White:       r.Evaluator(board.White).Name(),
		Strategy:    string(r.Solver().Strategy()),
		Depth:       r.MaxDepth(),
		Won:         o.Won,
		Rounds:      o.Rounds,
		Plies:       o.TotalPlies(),
		Nodes:       o.Nodes,
		Repetitions: o.Repetitions(z),
		Moves:       lo.Map(o.Moves, func(m movegen.Move, _ int) string { return m.String() }),
	}
	if o.Won {
		rec.Winner = o.Winner.String()
	}
	return rec
}

// batchSeeds returns one seed per game, read from the seeds file if there
// is one, and saves them if asked to.
func batchSeeds(cfg *config.Config, n int) ([][32]byte, error) {
	var seeds [][32]byte
	if f := cfg.GetString(config.ConfigSeedsFile); f != "" {
		var err error
		seeds, err = LoadSeeds(f)
		if err != nil {
			return nil, err
		}
		if len(seeds) < n {
			return nil, fmt.Errorf("seeds file %v has %d seeds, need %d", f, len(seeds), n)
		}
		seeds = seeds[:n]
	} else {
		seeds = GenerateSeeds(n)
	}
	if f := cfg.GetString(config.ConfigSaveSeeds); f != "" {
		if err := SaveSeeds(seeds, f); err != nil {
			return nil, err
		}
		log.Info().Str("path", f).Int("seeds", len(seeds)).Msg("saved-seeds")
	}
	return seeds, nil
}

// CompVCompGames plays n games from start, Black moving first, with at
// most threads games at once. Each game gets its own evaluators, seeded
// from its own seed, and is written to out as a YAML document when it
// ends. Games cut short by the context are not written.
func CompVCompGames(ctx context.Context, cfg *config.Config, start *board.Position,
	n, threads int, out io.Writer) error {

	if !startPlaying() {
		return ErrAlreadyPlaying
	}
	defer stopPlaying()

	if threads < 1 {
		threads = 1
	}
	seeds, err := batchSeeds(cfg, n)
	if err != nil {
		return err
	}
	z := &zobrist.Zobrist{}
	z.Initialize()

	log.Debug().Msgf("Starting %v games, %v threads", n, threads)
	CVCCounter.Set(0)

	recs := make(chan *GameRecord, threads)
	writeErr := make(chan error, 1)
	go func() {
		enc := yaml.NewEncoder(out)
		var err error
		for rec := range recs {
			if err != nil {
				continue
			}
			err = enc.Encode(rec)
		}
		if err == nil {
			err = enc.Close()
		}
		writeErr <- err
		log.Debug().Msg("exiting-record-writer")
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
gameLoop:
	for i := 0; i < n; i++ {
		select {
		case <-gctx.Done():
			log.Info().Msg("Got stop signal, exiting soon...")
			break gameLoop
		default:
		}
		seed := seeds[i]
		g.Go(func() error {
			evs, err := EvaluatorsFromConfig(cfg, RNGFromSeed(seed))
			if err != nil {
				return err
			}
			r, err := NewGameRunner(cfg, movegen.NewGenerator(), evs)
			if err != nil {
				return err
			}
			r.Reset(start, board.Black)
			o, err := r.Play(gctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				return err
			}
			rec := NewGameRecord(r, o, z)
			rec.Seed = EncodeSeed(seed)
			recs <- rec
			CVCCounter.Add(1)
			return nil
		})
	}
	err = g.Wait()
	close(recs)
	if werr := <-writeErr; err == nil {
		err = werr
	}
	if err == nil {
		err = ctx.Err()
	}
	log.Info().Int64("games", CVCCounter.Value()).Msg("all-games-finished")
	return err
}
