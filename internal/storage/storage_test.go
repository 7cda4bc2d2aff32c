package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianagbip1oti/vesper/internal/board"
)

func TestStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	pos := board.NewPosition()
	want := Entry{Move: board.NewLaneMove(12, 28), Score: 35, Nodes: 120}

	t.Run("Miss", func(t *testing.T) {
		if _, err := st.Get(pos, 4); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get on empty store = %v, want ErrNotFound", err)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		if err := st.Put(pos, 4, want); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, err := st.Get(pos, 4)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Move != want.Move || got.Score != want.Score || got.Nodes != want.Nodes {
			t.Errorf("Get = %+v, want %+v", got, want)
		}
		if got.SavedAt.IsZero() {
			t.Error("SavedAt not filled in")
		}
	})

	t.Run("DepthIsPartOfKey", func(t *testing.T) {
		if _, err := st.Get(pos, 3); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get at another depth = %v, want ErrNotFound", err)
		}
	})

	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	t.Run("Reopen", func(t *testing.T) {
		st, err := Open(dir)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		defer st.Close()

		got, err := st.Get(pos, 4)
		if err != nil {
			t.Fatalf("Get after reopen: %v", err)
		}
		if got.Move != want.Move {
			t.Errorf("move after reopen = %v, want %v", got.Move, want.Move)
		}
	})
}

func TestStoreCountAndClear(t *testing.T) {
	st, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer st.Close()

	pos := board.NewPosition()
	for depth := 1; depth <= 3; depth++ {
		if err := st.Put(pos, depth, Entry{Score: depth}); err != nil {
			t.Fatalf("Put depth %d: %v", depth, err)
		}
	}

	n, err := st.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}

	if err := st.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n, _ := st.Count(); n != 0 {
		t.Errorf("Count after Clear = %d, want 0", n)
	}
}

func TestKey(t *testing.T) {
	start := board.NewPosition()
	moved := start.Copy()
	moved.ApplyLaneMove(board.NewLaneMove(12, 28))

	// only slot 3 differs
	diverged := start.Copy()
	diverged.Pawns[3] = 0

	tests := []struct {
		name string
		a, b []byte
		same bool
	}{
		{"same position and depth", Key(start, 4), Key(board.NewPosition(), 4), true},
		{"different depth", Key(start, 4), Key(start, 5), false},
		{"different position", Key(start, 4), Key(moved, 4), false},
		{"different helper slot", Key(start, 4), Key(diverged, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := bytes.Equal(tc.a, tc.b); got != tc.same {
				t.Errorf("keys equal = %v, want %v", got, tc.same)
			}
			if !bytes.HasPrefix(tc.a, []byte(analysisPrefix)) {
				t.Errorf("key %x lacks prefix", tc.a)
			}
		})
	}
}

func TestDatabaseDir(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "cache")
		t.Setenv(CacheDirEnv, want)

		dir, err := DatabaseDir()
		if err != nil {
			t.Fatalf("DatabaseDir: %v", err)
		}
		if dir != want {
			t.Errorf("DatabaseDir = %s, want %s", dir, want)
		}
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			t.Errorf("%s not created: %v", dir, err)
		}
	})

	t.Run("user cache dir", func(t *testing.T) {
		base := t.TempDir()
		t.Setenv(CacheDirEnv, "")
		t.Setenv("XDG_CACHE_HOME", base)
		t.Setenv("HOME", base)
		t.Setenv("LocalAppData", base)

		dir, err := DatabaseDir()
		if err != nil {
			t.Fatalf("DatabaseDir: %v", err)
		}
		if filepath.Base(dir) != "analysis" || filepath.Base(filepath.Dir(dir)) != "vesper" {
			t.Errorf("DatabaseDir = %s, want .../vesper/analysis", dir)
		}
	})
}
