package qcnn

import (
	"fmt"

	"github.com/MHagelueken/squlearn/internal/parallel"
)

// Build resolves a deferred register: it finds the smallest register
// size whose declared layer chain leaves exactly target active qubits,
// materializes the declarations at that size, and switches the builder
// to forward mode. Further layers may then be appended unless a
// fully-connected layer was declared.
//
// Fails with ErrUnsatisfiableTarget when no register size reaches the
// target through the declared reduction chain.
func (b *Builder) Build(target int) error {
	if !b.deferred {
		return fmt.Errorf("build: register size already fixed at %d", b.track.size())
	}
	if target < 1 {
		return fmt.Errorf("build: target of %d active qubits: %w", target, ErrUnsatisfiableTarget)
	}
	bound := b.searchBound(target)

	// Candidate sizes are simulated independently, so the scan over the
	// search window parallelizes; the smallest satisfying size wins.
	idx := parallel.FirstIndex(bound-target+1, func(i int) bool {
		got, err := simulate(b.decls, b.alloc.vector, target+i)
		return err == nil && got == target
	}, parallel.DefaultConfig())
	if idx < 0 {
		return fmt.Errorf("build: target of %d active qubits: %w", target, ErrUnsatisfiableTarget)
	}
	return b.materializeAt(target + idx)
}

// searchBound bounds the register-size search. Each pooling layer
// shrinks the active set by at most its block arity factor, so the
// bound grows by that factor per declared reduction, capped to keep the
// search finite for degenerate declaration chains.
func (b *Builder) searchBound(target int) int {
	const maxRegister = 1 << 16
	bound := target + 2
	for _, d := range b.decls {
		switch d.kind {
		case layerPool:
			k := d.pool.Block.QubitArity()
			bound = bound*k + k
		case layerRepeat:
			reps := d.repeat
			if reps < 0 || reps > 32 {
				reps = 32
			}
			for i := 0; i < reps && bound < maxRegister; i++ {
				bound = bound*2 + 2
			}
		}
		if bound >= maxRegister {
			return maxRegister
		}
	}
	return bound
}

// simulate replays decls on a scratch register of size n and reports
// the resulting active-qubit count.
func simulate(decls []layerDecl, vector string, n int) (int, error) {
	scratch := New(n)
	scratch.alloc.vector = vector
	if err := replay(scratch, decls); err != nil {
		return 0, err
	}
	return len(scratch.track.active), nil
}

// materializeAt fixes the register at n and replays the declaration
// log. The builder is untouched on failure.
func (b *Builder) materializeAt(n int) error {
	scratch := New(n)
	scratch.alloc.vector = b.alloc.vector
	if err := replay(scratch, b.decls); err != nil {
		return err
	}
	b.track = scratch.track
	b.ops = scratch.ops
	b.alloc = scratch.alloc
	b.nextCbit = scratch.nextCbit
	b.finalized = scratch.finalized
	b.deferred = false
	return nil
}

func replay(fw *Builder, decls []layerDecl) error {
	for _, d := range decls {
		var err error
		switch d.kind {
		case layerConv:
			err = fw.Convolution(d.conv)
		case layerPool:
			err = fw.Pooling(d.pool)
		case layerFC:
			if d.fc == nil {
				err = fw.FullyConnected()
			} else {
				err = fw.FullyConnected(d.fc)
			}
		case layerRepeat:
			conv, pool, ok := fw.lastPair()
			if !ok {
				return fmt.Errorf("repeat: no convolution+pooling pair declared yet")
			}
			err = fw.applyRepeat(conv, pool, d.repeat)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
