package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ianagbip1oti/vesper/internal/board"
	"github.com/ianagbip1oti/vesper/internal/storage"
)

// SearchInfo contains information about a finished search.
type SearchInfo struct {
	Depth  int
	Score  int
	Nodes  uint64
	Time   time.Duration
	Move   board.LaneMove
	Cached bool
}

// Cache stores search results between calls. *storage.Store implements it.
type Cache interface {
	Get(pos *board.Position, depth int) (storage.Entry, error)
	Put(pos *board.Position, depth int, e storage.Entry) error
}

// Options configures an Engine.
type Options struct {
	Depth  int             // default search depth, DefaultDepth if zero
	Cache  Cache           // optional
	Logger *zerolog.Logger // optional, silent if nil
}

// Engine wraps the searcher with a default depth, an optional result cache
// and progress reporting.
type Engine struct {
	searcher *Searcher
	depth    int
	cache    Cache
	log      zerolog.Logger

	// Callbacks
	OnInfo func(SearchInfo)
}

// New creates an engine.
func New(opts Options) *Engine {
	e := &Engine{
		searcher: NewSearcher(),
		depth:    DefaultDepth,
		cache:    opts.Cache,
		log:      zerolog.Nop(),
	}
	if opts.Depth > 0 {
		e.depth = min(opts.Depth, MaxDepth)
	}
	if opts.Logger != nil {
		e.log = *opts.Logger
	}
	return e
}

// Depth returns the default search depth.
func (e *Engine) Depth() int {
	return e.depth
}

// SetDepth changes the default search depth, clamped to 0..MaxDepth.
func (e *Engine) SetDepth(depth int) {
	e.depth = max(0, min(depth, MaxDepth))
}

// Search finds the best lane 0 move at the given depth. Results are looked
// up in and written to the cache when one is configured; cache failures are
// logged and otherwise ignored.
func (e *Engine) Search(pos *board.Position, depth int) board.LaneMove {
	depth = max(0, min(depth, MaxDepth))
	start := time.Now()

	if m, ok := e.lookup(pos, depth, start); ok {
		return m
	}

	e.searcher.Reset()
	move, score := e.searcher.Search(pos, depth)
	info := SearchInfo{
		Depth: depth,
		Score: score,
		Nodes: e.searcher.Nodes(),
		Time:  time.Since(start),
		Move:  move,
	}

	e.log.Debug().
		Int("depth", depth).
		Int("score", score).
		Uint64("nodes", info.Nodes).
		Dur("elapsed", info.Time).
		Str("move", move.String()).
		Msg("search-done")

	if e.cache != nil {
		err := e.cache.Put(pos, depth, storage.Entry{Move: move, Score: score, Nodes: info.Nodes})
		if err != nil {
			e.log.Warn().Err(err).Msg("cache-store-failed")
		}
	}

	e.report(info)
	return move
}

func (e *Engine) lookup(pos *board.Position, depth int, start time.Time) (board.LaneMove, bool) {
	if e.cache == nil {
		return board.NullMove, false
	}
	entry, err := e.cache.Get(pos, depth)
	if errors.Is(err, storage.ErrNotFound) {
		return board.NullMove, false
	}
	if err != nil {
		e.log.Warn().Err(err).Msg("cache-lookup-failed")
		return board.NullMove, false
	}

	// A stored move must still be playable here; anything else is a stale
	// or colliding entry.
	if !entry.Move.IsNull() && !board.GenerateMoves(pos, 0).Contains(entry.Move) {
		e.log.Warn().Str("move", entry.Move.String()).Msg("cache-entry-rejected")
		return board.NullMove, false
	}

	e.log.Debug().Int("depth", depth).Str("move", entry.Move.String()).Msg("cache-hit")
	e.report(SearchInfo{
		Depth:  depth,
		Score:  entry.Score,
		Nodes:  entry.Nodes,
		Time:   time.Since(start),
		Move:   entry.Move,
		Cached: true,
	})
	return entry.Move, true
}

func (e *Engine) report(info SearchInfo) {
	if e.OnInfo != nil {
		e.OnInfo(info)
	}
}

// Perft counts pseudo-legal lane 0 leaf nodes. Each step is a batched move
// carrying lane 0's move and zero moves in the other slots.
func (e *Engine) Perft(pos *board.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := board.GenerateMoves(pos, 0)
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		var step [board.LaneWidth]board.LaneMove
		step[0] = moves.Get(i)
		next := pos.Copy()
		next.ApplyMove(board.PackMoves(step))
		nodes += e.Perft(next, depth-1)
	}
	return nodes
}

// Evaluate returns the static evaluation of every slot.
func (e *Engine) Evaluate(pos *board.Position) [board.LaneWidth]int {
	return Evaluate(pos)
}
