package engine

import (
	"sync"
	"sync/atomic"

	"github.com/ianagbip1oti/vesper/internal/board"
	"github.com/ianagbip1oti/vesper/internal/storage"
)

// Number of shards for table locking (power of 2 for fast modulo)
const rtShardCount = 256
const rtShardMask = rtShardCount - 1

// rtEntry is one slot of the result table.
type rtEntry struct {
	Key   uint64 // full 64-bit position hash, zero when empty
	Move  board.LaneMove
	Score int32
	Nodes uint64
}

// ResultTable is a fixed-size in-memory Cache of search results. An
// optional backing Cache (usually the badger store) is consulted on a miss
// and written through on every Put.
type ResultTable struct {
	entries []rtEntry
	shards  [rtShardCount]sync.RWMutex
	size    uint64
	mask    uint64
	backing Cache

	hits   atomic.Uint64
	probes atomic.Uint64
}

// NewResultTable creates a table of the given size in MB. backing may be nil.
func NewResultTable(sizeMB int, backing Cache) *ResultTable {
	entrySize := uint64(40)
	numEntries := roundDownToPowerOf2(max(uint64(sizeMB)*1024*1024/entrySize, 1))

	return &ResultTable{
		entries: make([]rtEntry, numEntries),
		size:    numEntries,
		mask:    numEntries - 1,
		backing: backing,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

func (rt *ResultTable) shardIndex(idx uint64) int {
	return int(idx & rtShardMask)
}

// Get returns the stored result of pos at depth, falling back to the
// backing cache.
func (rt *ResultTable) Get(pos *board.Position, depth int) (storage.Entry, error) {
	rt.probes.Add(1)

	hash := storage.Hash(pos, depth)
	idx := hash & rt.mask
	shard := rt.shardIndex(idx)

	rt.shards[shard].RLock()
	entry := rt.entries[idx]
	rt.shards[shard].RUnlock()

	if entry.Key == hash && hash != 0 {
		rt.hits.Add(1)
		return storage.Entry{Move: entry.Move, Score: int(entry.Score), Nodes: entry.Nodes}, nil
	}

	if rt.backing == nil {
		return storage.Entry{}, storage.ErrNotFound
	}
	e, err := rt.backing.Get(pos, depth)
	if err != nil {
		return storage.Entry{}, err
	}
	rt.store(hash, e)
	return e, nil
}

// Put records the result of pos at depth, always replacing the slot.
func (rt *ResultTable) Put(pos *board.Position, depth int, e storage.Entry) error {
	rt.store(storage.Hash(pos, depth), e)
	if rt.backing == nil {
		return nil
	}
	return rt.backing.Put(pos, depth, e)
}

func (rt *ResultTable) store(hash uint64, e storage.Entry) {
	idx := hash & rt.mask
	shard := rt.shardIndex(idx)

	rt.shards[shard].Lock()
	rt.entries[idx] = rtEntry{Key: hash, Move: e.Move, Score: int32(e.Score), Nodes: e.Nodes}
	rt.shards[shard].Unlock()
}

// Clear empties the table. The backing cache is left alone.
func (rt *ResultTable) Clear() {
	for i := range rt.shards {
		rt.shards[i].Lock()
	}
	for i := range rt.entries {
		rt.entries[i] = rtEntry{}
	}
	for i := range rt.shards {
		rt.shards[i].Unlock()
	}
	rt.hits.Store(0)
	rt.probes.Store(0)
}

// HashFull returns the permille (parts per thousand) of the table that is used.
func (rt *ResultTable) HashFull() int {
	used := 0
	sampleSize := min(1000, int(rt.size))
	for i := 0; i < sampleSize; i++ {
		shard := rt.shardIndex(uint64(i))
		rt.shards[shard].RLock()
		if rt.entries[i].Key != 0 {
			used++
		}
		rt.shards[shard].RUnlock()
	}
	return (used * 1000) / sampleSize
}

// HitRate returns the in-memory hit rate as a percentage.
func (rt *ResultTable) HitRate() float64 {
	probes := rt.probes.Load()
	if probes == 0 {
		return 0
	}
	return float64(rt.hits.Load()) / float64(probes) * 100
}

// Size returns the number of entries in the table.
func (rt *ResultTable) Size() uint64 {
	return rt.size
}
