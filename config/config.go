package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigBoardFile               = "board-file"
	ConfigLogLevel                = "log-level"
	ConfigSearch                  = "search"
	ConfigMaxDepth                = "max-depth"
	ConfigRoundLimit              = "round-limit"
	ConfigEvaluator1              = "evaluator1"
	ConfigEvaluator2              = "evaluator2"
	ConfigTablesFile              = "tables-file"
	ConfigSeed                    = "seed"
	ConfigSeedsFile               = "seeds-file"
	ConfigSaveSeeds               = "save-seeds"
	ConfigEvalCache               = "eval-cache"
	ConfigEvalCacheMemoryFraction = "eval-cache-memory-fraction"
	ConfigGames                   = "games"
	ConfigThreads                 = "threads"
	ConfigGameLog                 = "game-log"
	ConfigDebug                   = "debug"
	ConfigCPUProfile              = "cpu-profile"
	ConfigFile                    = "config"
)

var (
	ErrBadStrategy = errors.New("search must be minimax or alphabeta")
	ErrBadLogLevel = errors.New("log-level must be none, round or all")
)

// Strategy names a tree search algorithm.
type Strategy string

const (
	Minimax   Strategy = "minimax"
	AlphaBeta Strategy = "alphabeta"
)

// Config holds all settings. Values come, in order of precedence, from
// flags, HALMA_* environment variables, an optional config file and the
// defaults.
type Config struct {
	*viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigBoardFile, "")
	v.SetDefault(ConfigLogLevel, "round")
	v.SetDefault(ConfigSearch, string(AlphaBeta))
	v.SetDefault(ConfigMaxDepth, 2)
	v.SetDefault(ConfigRoundLimit, -1)
	v.SetDefault(ConfigEvaluator1, "leading")
	v.SetDefault(ConfigEvaluator2, "complex")
	v.SetDefault(ConfigTablesFile, "")
	v.SetDefault(ConfigSeed, "")
	v.SetDefault(ConfigSeedsFile, "")
	v.SetDefault(ConfigSaveSeeds, "")
	v.SetDefault(ConfigEvalCache, false)
	v.SetDefault(ConfigEvalCacheMemoryFraction, 0.05)
	v.SetDefault(ConfigGames, 1)
	v.SetDefault(ConfigThreads, 1)
	v.SetDefault(ConfigGameLog, "")
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigCPUProfile, "")
}

// DefaultConfig returns a config with only the defaults set. It is meant
// for tests.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{Viper: v}
}

// FlagSet declares a flag for every setting.
func FlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String(ConfigBoardFile, "", "board file to start from (16 lines of 0, 1 and 2); empty for the standard start")
	fs.String(ConfigLogLevel, "round", "log verbosity: none, round or all")
	fs.String(ConfigSearch, string(AlphaBeta), "tree search: minimax or alphabeta")
	fs.Int(ConfigMaxDepth, 2, "search depth in plies")
	fs.Int(ConfigRoundLimit, -1, "stop after this many rounds; negative for no limit")
	fs.String(ConfigEvaluator1, "leading", "evaluator for black: random, proximity, leading, discourage, complex or combined")
	fs.String(ConfigEvaluator2, "complex", "evaluator for white")
	fs.String(ConfigTablesFile, "", "YAML file with positional tables replacing the built-in ones")
	fs.String(ConfigSeed, "", "base64 32-byte seed for random evaluators")
	fs.String(ConfigSeedsFile, "", "file with one base64 seed per game, for replaying a batch")
	fs.String(ConfigSaveSeeds, "", "save the seeds of a batch to this file")
	fs.Bool(ConfigEvalCache, false, "cache evaluations of deterministic evaluators")
	fs.Float64(ConfigEvalCacheMemoryFraction, 0.05, "fraction of system memory for each evaluation cache")
	fs.Int(ConfigGames, 1, "number of games to play")
	fs.Int(ConfigThreads, 1, "number of games to play at once")
	fs.String(ConfigGameLog, "", "file to write YAML game records to")
	fs.Bool(ConfigDebug, false, "debug logging")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigFile, "", "YAML config file")
	return fs
}

// Load parses args and reads the environment and the config file, if one
// was given.
func (c *Config) Load(args []string) error {
	fs := FlagSet("halma")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.LoadFlags(fs)
}

// LoadFlags builds the config from an already parsed flag set.
func (c *Config) LoadFlags(fs *pflag.FlagSet) error {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("halma")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	if f := v.GetString(ConfigFile); f != "" {
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	c.Viper = v
	if _, err := c.SearchStrategy(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// ParseStrategy reads a tree search name.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case Minimax, AlphaBeta:
		return s, nil
	case "alpha-beta", "alfabeta", "alfa-beta":
		return AlphaBeta, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadStrategy, name)
}

// SearchStrategy returns the configured tree search.
func (c *Config) SearchStrategy() (Strategy, error) {
	return ParseStrategy(c.GetString(ConfigSearch))
}

// LogLevel maps the log verbosity to a zerolog level: none only shows
// warnings, round logs each round and all logs every position.
func (c *Config) LogLevel() (zerolog.Level, error) {
	if c.GetBool(ConfigDebug) {
		return zerolog.DebugLevel, nil
	}
	switch strings.ToLower(c.GetString(ConfigLogLevel)) {
	case "none":
		return zerolog.WarnLevel, nil
	case "round":
		return zerolog.InfoLevel, nil
	case "all":
		return zerolog.DebugLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrBadLogLevel, c.GetString(ConfigLogLevel))
}

// RoundLimit returns the maximum number of rounds, or a negative number if
// there is no limit.
func (c *Config) RoundLimit() int {
	return c.GetInt(ConfigRoundLimit)
}
