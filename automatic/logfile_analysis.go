package automatic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/halma/board"
	"github.com/domino14/halma/stats"
)

// ReadGameRecords reads every YAML document of r.
func ReadGameRecords(r io.Reader) ([]*GameRecord, error) {
	dec := yaml.NewDecoder(r)
	var recs []*GameRecord
	for {
		rec := &GameRecord{}
		err := dec.Decode(rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading game record %d: %w", len(recs)+1, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// AnalyzeLogFile analyzes the given game record file and spits out a
// bunch of statistics.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	recs, err := ReadGameRecords(file)
	if err != nil {
		return "", err
	}
	return AnalyzeGameRecords(recs)
}

// AnalyzeGameRecords reports win rates with a 95% confidence interval,
// per side and per evaluator, and the distribution of game lengths. A
// game with no winner counts as half a win for each side.
func AnalyzeGameRecords(recs []*GameRecord) (string, error) {
	if len(recs) == 0 {
		return "", errors.New("no games to analyze")
	}
	var ss strings.Builder
	fmt.Fprintf(&ss, "Games played: %d\n", len(recs))

	var sides [2]stats.WinRate
	evals := map[string]*stats.WinRate{}
	push := func(name string, score float64) {
		if evals[name] == nil {
			evals[name] = &stats.WinRate{}
		}
		evals[name].Push(score)
	}
	for _, rec := range recs {
		black, white := 0.5, 0.5
		if rec.Won {
			black, white = 0, 0
			switch rec.Winner {
			case board.Black.String():
				black = 1
			case board.White.String():
				white = 1
			default:
				return "", fmt.Errorf("game %v: unknown winner %q", rec.ID, rec.Winner)
			}
		}
		sides[board.Black].Push(black)
		sides[board.White].Push(white)
		push(rec.Black, black)
		push(rec.White, white)
	}

	won := lo.Filter(recs, func(r *GameRecord, _ int) bool { return r.Won })
	fmt.Fprintf(&ss, "Games won: %d  No winner: %d\n", len(won), len(recs)-len(won))

	fmt.Fprintf(&ss, "%-12s%-10s%-10s%-20s\n", "Side", "Wins", "Win %", "95% interval")
	for s := board.Black; s <= board.White; s++ {
		low, high := sides[s].Interval(95)
		fmt.Fprintf(&ss, "%-12s%-10.1f%-10.3f[%.3f, %.3f]\n", s, sides[s].Wins,
			100*sides[s].Rate(), 100*low, 100*high)
	}

	names := make([]string, 0, len(evals))
	for name := range evals {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(&ss, "%-40s%-10s%-10s%-10s\n", "Evaluator", "Games", "Wins", "Win %")
	for _, name := range names {
		w := evals[name]
		fmt.Fprintf(&ss, "%-40s%-10d%-10.1f%-10.3f\n", name, w.Games, w.Wins, 100*w.Rate())
	}

	nodes := &stats.Statistic{}
	for _, rec := range recs {
		nodes.Push(float64(rec.Nodes))
	}
	fmt.Fprintf(&ss, "Nodes per game: mean %.1f  stderr %.1f  stdev %.1f\n",
		nodes.Mean(), nodes.StandardError(), nodes.Stdev())

	reps := lo.SumBy(recs, func(r *GameRecord) int { return r.Repetitions })
	fmt.Fprintf(&ss, "Repeated positions: %d\n", reps)

	if len(won) == 0 {
		return ss.String(), nil
	}
	lengths := &stats.Statistic{}
	data := make([]float64, len(won))
	for i, rec := range won {
		lengths.Push(float64(rec.Plies))
		data[i] = float64(rec.Plies)
	}
	fmt.Fprintf(&ss, "Plies to win: mean %.2f  stdev %.2f  min %.0f  max %.0f\n",
		lengths.Mean(), lengths.Stdev(), lengths.Min(), lengths.Max())
	if lengths.Min() == lengths.Max() {
		return ss.String(), nil
	}
	hist := histogram.Hist(15, data)
	if err := histogram.Fprint(&ss, hist, histogram.Linear(40)); err != nil {
		return "", err
	}
	return ss.String(), nil
}
