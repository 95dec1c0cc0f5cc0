// Package parallel provides chunked parallel search helpers.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 8,
	}
}

// FirstIndex returns the smallest i in [0, n) for which pred(i) holds,
// or -1 if none does. pred must be safe for concurrent calls. Falls
// back to a sequential scan when parallelism is disabled or n is small.
func FirstIndex(n int, pred func(i int) bool, cfg Config) int {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			if pred(i) {
				return i
			}
		}
		return -1
	}

	best := int64(n)
	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				// A smaller index already matched; this chunk is moot.
				if int64(i) >= atomic.LoadInt64(&best) {
					return
				}
				if !pred(i) {
					continue
				}
				for {
					cur := atomic.LoadInt64(&best)
					if int64(i) >= cur || atomic.CompareAndSwapInt64(&best, cur, int64(i)) {
						return
					}
				}
			}
		}(start, end)
	}
	wg.Wait()

	if best == int64(n) {
		return -1
	}
	return int(best)
}
