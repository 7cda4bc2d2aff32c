package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"

	"github.com/ianagbip1oti/vesper/internal/board"
)

// ErrNotFound is returned when no analysis is stored for a position.
var ErrNotFound = errors.New("storage: analysis not found")

// Key prefix for analysis entries
const analysisPrefix = "analysis/"

// Entry is one stored search result.
type Entry struct {
	Move    board.LaneMove `json:"move"`
	Score   int            `json:"score"`
	Nodes   uint64         `json:"nodes"`
	SavedAt time.Time      `json:"saved_at"`
}

// Store wraps BadgerDB as a cache of search results keyed by position and
// depth.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open analysis cache %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory analysis cache: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the store in DatabaseDir.
func OpenDefault() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Hash digests every plane word of the position together with the search
// depth.
func Hash(pos *board.Position, depth int) uint64 {
	var buf [8]byte
	d := xxhash.New()
	planes := []board.Lane{
		pos.Pawns, pos.Leapers, pos.Sliders, pos.Kings,
		pos.White, pos.Black, pos.Diagonal, pos.Orthogonal,
		pos.Metadata,
	}
	for _, plane := range planes {
		for _, w := range plane {
			binary.LittleEndian.PutUint64(buf[:], w)
			d.Write(buf[:])
		}
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(depth))
	d.Write(buf[:])
	return d.Sum64()
}

// Key returns the database key of the analysis of pos at depth.
func Key(pos *board.Position, depth int) []byte {
	key := make([]byte, 0, len(analysisPrefix)+8)
	key = append(key, analysisPrefix...)
	return binary.BigEndian.AppendUint64(key, Hash(pos, depth))
}

// Get loads the analysis of pos at depth.
func (s *Store) Get(pos *board.Position, depth int) (Entry, error) {
	var e Entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(pos, depth))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	return e, err
}

// Put stores the analysis of pos at depth, replacing any earlier entry.
func (s *Store) Put(pos *board.Position, depth int, e Entry) error {
	if e.SavedAt.IsZero() {
		e.SavedAt = time.Now()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key(pos, depth), data)
	})
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(analysisPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// Clear removes every stored entry.
func (s *Store) Clear() error {
	return s.db.DropPrefix([]byte(analysisPrefix))
}
