package equity

import (
	"math"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/domino14/halma/board"
	"github.com/domino14/halma/zobrist"
)

const cacheEntrySize = 16

const (
	minCachePowerOf2 = 10
	maxCachePowerOf2 = 20
)

type cacheEntry struct {
	key   uint64
	score float64
}

// Cached remembers the scores of a deterministic evaluator. It is a
// fixed-size table indexed by a zobrist key of the position, the side and
// the round; a new entry simply overwrites whatever was in its slot.
type Cached struct {
	inner   Evaluator
	z       *zobrist.Zobrist
	table   []cacheEntry
	mask    uint64
	lookups int
	hits    int
}

// NewCached wraps inner in a cache that takes up about fractionOfMemory of
// the system memory. Stochastic evaluators are returned as is.
func NewCached(inner Evaluator, fractionOfMemory float64) Evaluator {
	if !Deterministic(inner) {
		log.Debug().Str("evaluator", inner.Name()).Msg("not-caching-stochastic-evaluator")
		return inner
	}
	totalMem := memory.TotalMemory()
	desiredNElems := fractionOfMemory * (float64(totalMem) / float64(cacheEntrySize))
	sizePowerOf2 := minCachePowerOf2
	if desiredNElems > 1 {
		sizePowerOf2 = int(math.Log2(desiredNElems))
	}
	if sizePowerOf2 < minCachePowerOf2 {
		sizePowerOf2 = minCachePowerOf2
	}
	if sizePowerOf2 > maxCachePowerOf2 {
		sizePowerOf2 = maxCachePowerOf2
	}
	numElems := 1 << sizePowerOf2
	z := &zobrist.Zobrist{}
	z.Initialize()

	log.Debug().Int("num-elems", numElems).
		Int("estimated-total-memory-bytes", numElems*cacheEntrySize).
		Uint64("total-system-memory-bytes", totalMem).
		Str("evaluator", inner.Name()).
		Msg("eval-cache-size")

	return &Cached{
		inner: inner,
		z:     z,
		table: make([]cacheEntry, numElems),
		mask:  uint64(numElems - 1),
	}
}

func (c *Cached) Evaluate(pos *board.Position, side board.Side, round int) float64 {
	// a zero key marks an empty slot
	key := zobrist.WithRound(c.z.Hash(pos, side), round) | 1
	c.lookups++
	e := &c.table[key&c.mask]
	if e.key == key {
		c.hits++
		return e.score
	}
	score := c.inner.Evaluate(pos, side, round)
	e.key = key
	e.score = score
	return score
}

func (c *Cached) Name() string {
	return c.inner.Name()
}

// Stats returns the number of lookups and cache hits so far.
func (c *Cached) Stats() (lookups, hits int) {
	return c.lookups, c.hits
}
