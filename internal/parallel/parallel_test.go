package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFirstIndex(t *testing.T) {
	cfg := DefaultConfig()

	got := FirstIndex(1000, func(i int) bool {
		return i >= 437
	}, cfg)

	if got != 437 {
		t.Errorf("Expected 437, got %d", got)
	}
}

func TestFirstIndex_NoMatch(t *testing.T) {
	cfg := DefaultConfig()

	got := FirstIndex(1000, func(_ int) bool { return false }, cfg)
	if got != -1 {
		t.Errorf("Expected -1, got %d", got)
	}
}

func TestFirstIndex_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var calls int64
	got := FirstIndex(100, func(i int) bool {
		atomic.AddInt64(&calls, 1)
		return i == 5
	}, cfg)

	if got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}
	if calls != 6 {
		t.Errorf("Sequential scan should stop at the match, made %d calls", calls)
	}
}

func TestFirstIndex_SmallFallsBackToSequential(t *testing.T) {
	cfg := DefaultConfig()

	got := FirstIndex(cfg.MinChunkSize-1, func(i int) bool {
		return i == 2
	}, cfg)

	if got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}

func TestFirstIndex_SmallestWins(t *testing.T) {
	// Many matches across chunks; the smallest index must win.
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 8}

	got := FirstIndex(10000, func(i int) bool {
		return i%97 == 13
	}, cfg)

	if got != 13 {
		t.Errorf("Expected 13, got %d", got)
	}
}

func BenchmarkFirstIndex(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000
	pred := func(i int) bool { return i >= n-2 }

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			FirstIndex(n, pred, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			FirstIndex(n, pred, cfgSeq)
		}
	})
}
