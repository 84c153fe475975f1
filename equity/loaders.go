package equity

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"github.com/domino14/halma/board"
	"github.com/domino14/halma/cache"
	"github.com/domino14/halma/config"
)

var ErrUnknownEvaluator = errors.New("unknown evaluator")

var ErrBadTables = errors.New("positional tables must be 16 rows of 16 values per side")

// Names lists what New understands.
var Names = []string{"random", "proximity", "leading", "discourage", "complex", "combined"}

// New builds an evaluator by name. rng is only used by evaluators with a
// random part; nil means fresh entropy.
func New(name string, rng *frand.RNG) (Evaluator, error) {
	switch strings.ToLower(name) {
	case "random":
		return NewRandom(rng), nil
	case "proximity":
		return NewProximity(), nil
	case "leading":
		return NewLeading(), nil
	case "discourage":
		return NewDiscourageStart(), nil
	case "complex":
		return NewComplex(), nil
	case "combined":
		return NewCombined(
			Weighted{Evaluator: NewLeading(), Weight: 0.6},
			Weighted{Evaluator: NewDiscourageStart(), Weight: 0.4},
		), nil
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownEvaluator, name,
		strings.Join(Names, ", "))
}

// WithTables makes the table-driven evaluators in e use t.
func WithTables(e Evaluator, t *Tables) Evaluator {
	switch ev := e.(type) {
	case *Proximity:
		ev.Tables = t
	case *Leading:
		ev.Tables = t
	case *DiscourageStart:
		ev.Tables = t
	case *Complex:
		ev.Tables = t
	case *Combined:
		for _, p := range ev.Parts {
			WithTables(p.Evaluator, t)
		}
	}
	return e
}

type tablesFile struct {
	Black [][]float64 `yaml:"black"`
	White [][]float64 `yaml:"white"`
}

func TablesCacheLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	// Key looks like tables:filename
	path, ok := strings.CutPrefix(key, "tables:")
	if !ok {
		return nil, errors.New("tablescacheloadfunc - bad cache key: " + key)
	}
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTables(bts)
}

// ParseTables reads positional tables from YAML with a black and a white
// key, each holding 16 rows of 16 numbers.
func ParseTables(bts []byte) (*Tables, error) {
	var tf tablesFile
	if err := yaml.Unmarshal(bts, &tf); err != nil {
		return nil, err
	}
	t := &Tables{}
	for s, rows := range map[board.Side][][]float64{board.Black: tf.Black, board.White: tf.White} {
		if len(rows) != board.Dim {
			return nil, fmt.Errorf("%w: %v has %d rows", ErrBadTables, s, len(rows))
		}
		for y, row := range rows {
			if len(row) != board.Dim {
				return nil, fmt.Errorf("%w: %v row %d has %d values", ErrBadTables, s, y, len(row))
			}
			copy(t[s][y][:], row)
		}
	}
	return t, nil
}

// LoadTables returns the tables named by the tables-file setting, or the
// built-in ones if it is empty. A file is read once per process.
func LoadTables(cfg *config.Config) (*Tables, error) {
	path := cfg.GetString(config.ConfigTablesFile)
	if path == "" {
		return &DefaultTables, nil
	}
	obj, err := cache.Load(cfg, "tables:"+path, TablesCacheLoadFunc)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("using-tables-file")
	return obj.(*Tables), nil
}

// FromConfig builds the evaluator for side s from the configuration,
// applying the tables file and the evaluation cache settings.
func FromConfig(cfg *config.Config, s board.Side, rng *frand.RNG) (Evaluator, error) {
	key := config.ConfigEvaluator1
	if s == board.White {
		key = config.ConfigEvaluator2
	}
	e, err := New(cfg.GetString(key), rng)
	if err != nil {
		return nil, err
	}
	t, err := LoadTables(cfg)
	if err != nil {
		return nil, err
	}
	e = WithTables(e, t)
	if cfg.GetBool(config.ConfigEvalCache) {
		e = NewCached(e, cfg.GetFloat64(config.ConfigEvalCacheMemoryFraction))
	}
	return e, nil
}
