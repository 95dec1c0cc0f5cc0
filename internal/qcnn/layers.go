package qcnn

import (
	"fmt"

	"github.com/MHagelueken/squlearn/internal/circuit"
)

// ConvOptions configures one convolution layer.
type ConvOptions struct {
	// Block is the template applied across adjacent active qubits.
	// Nil selects DefaultConvolution.
	Block BlockTemplate

	// Alternating applies the block in two sublayers: the even-offset
	// adjacent groups, then the odd-offset ones including the
	// wraparound pair. Without it only the disjoint even-offset groups
	// are applied and a leftover unpaired qubit stays untouched.
	Alternating bool

	// Sharing selects how the layer's block instances bind parameters.
	Sharing ParamSharing
}

// PoolOptions configures one pooling layer.
type PoolOptions struct {
	// Block is the reduction template. Nil selects DefaultPooling.
	Block BlockTemplate

	// Measurement realizes the block as a mid-circuit measurement of
	// the discarded qubit plus classically-conditioned corrections on
	// the survivor, instead of a unitary coupling. The block must
	// implement MeasuredBlock.
	Measurement bool

	// Inputs lists explicit qubit groups to pool. Empty selects the
	// default pairing: disjoint adjacent pairs of the active set.
	Inputs [][]int

	// Outputs lists the surviving qubit per group. Empty keeps the
	// first listed input of every group.
	Outputs [][]int
}

// Convolution appends a convolution layer across the active set. The
// active set is unchanged; every participating qubit is pinned against
// later register shrinks.
func (b *Builder) Convolution(opts ConvOptions) error {
	if b.sealed() {
		return fmt.Errorf("convolution: %w", ErrBuilderFinalized)
	}
	if opts.Block == nil {
		opts.Block = DefaultConvolution()
	}
	if b.deferred {
		b.decls = append(b.decls, layerDecl{kind: layerConv, conv: opts})
		return nil
	}
	if err := b.applyConv(opts); err != nil {
		return err
	}
	b.decls = append(b.decls, layerDecl{kind: layerConv, conv: opts})
	return nil
}

func (b *Builder) applyConv(opts ConvOptions) error {
	block := opts.Block
	active := b.track.activeQubits()
	k := block.QubitArity()
	if len(active) < k {
		return fmt.Errorf("convolution: %d active qubits cannot host a %d-qubit block: %w",
			len(active), k, ErrInvalidAddressing)
	}

	even, odd := convGroups(active, k, opts.Alternating)
	params := b.alloc.layerParams(block.ParamArity(), opts.Sharing)
	for i, g := range even {
		// With alternating adjacency the whole even sublayer shares one
		// parity label; otherwise instances alternate by position.
		parity := i % 2
		if opts.Alternating {
			parity = 0
		}
		b.emitBlock(block.Name(), g, block.Materialize(g, params(parity)))
	}
	for _, g := range odd {
		b.emitBlock(block.Name(), g, block.Materialize(g, params(1)))
	}
	return nil
}

// convGroups computes the adjacency groups of one convolution layer.
// The even sublayer tiles the active set with disjoint consecutive
// groups; the odd sublayer (alternating only) repeats the tiling at an
// offset, with a wraparound pair for two-qubit blocks.
func convGroups(active []int, arity int, alternating bool) (even, odd [][]int) {
	m := len(active)
	for i := 0; i+arity <= m; i += arity {
		even = append(even, append([]int(nil), active[i:i+arity]...))
	}
	if !alternating {
		return even, nil
	}
	if arity == 2 {
		for i := 1; i < m; i += 2 {
			switch {
			case i+1 < m:
				odd = append(odd, []int{active[i], active[i+1]})
			case m%2 == 0:
				odd = append(odd, []int{active[m-1], active[0]})
			}
		}
		return even, odd
	}
	for i := arity / 2; i+arity <= m; i += arity {
		odd = append(odd, append([]int(nil), active[i:i+arity]...))
	}
	return even, odd
}

// Pooling appends a pooling layer, shrinking the active set. Without
// explicit lists the active qubits are paired adjacently and the first
// listed input of every group survives.
func (b *Builder) Pooling(opts PoolOptions) error {
	if b.sealed() {
		return fmt.Errorf("pooling: %w", ErrBuilderFinalized)
	}
	if opts.Block == nil {
		opts.Block = DefaultPooling()
	}
	if len(opts.Outputs) > 0 && len(opts.Outputs) != len(opts.Inputs) {
		return fmt.Errorf("pooling: %d input groups but %d output groups: %w",
			len(opts.Inputs), len(opts.Outputs), ErrInvalidAddressing)
	}
	if b.deferred {
		b.decls = append(b.decls, layerDecl{kind: layerPool, pool: opts})
		return nil
	}
	if err := b.applyPool(opts); err != nil {
		return err
	}
	b.decls = append(b.decls, layerDecl{kind: layerPool, pool: opts})
	return nil
}

func (b *Builder) applyPool(opts PoolOptions) error {
	block := opts.Block
	k := block.QubitArity()
	active := b.track.activeQubits()

	groups := opts.Inputs
	if len(groups) == 0 {
		if len(active) < k {
			return fmt.Errorf("pooling: %d active qubits cannot host a %d-qubit block: %w",
				len(active), k, ErrInvalidAddressing)
		}
		for i := 0; i+k <= len(active); i += k {
			groups = append(groups, append([]int(nil), active[i:i+k]...))
		}
	}

	survivors := opts.Outputs
	if len(survivors) == 0 {
		for _, g := range groups {
			survivors = append(survivors, []int{g[0]})
		}
	}
	if len(survivors) != len(groups) {
		return fmt.Errorf("pooling: %d input groups but %d output groups: %w",
			len(groups), len(survivors), ErrInvalidAddressing)
	}

	for gi, g := range groups {
		if len(g) != k {
			return fmt.Errorf("pooling group %d: %d qubits for a %d-qubit block: %w",
				gi, len(g), k, ErrInvalidAddressing)
		}
		if len(survivors[gi]) != 1 {
			return fmt.Errorf("pooling group %d: exactly one survivor expected, got %d: %w",
				gi, len(survivors[gi]), ErrInvalidAddressing)
		}
	}
	if err := b.track.checkPooling(groups, survivors); err != nil {
		return err
	}

	var measured MeasuredBlock
	if opts.Measurement {
		mb, ok := block.(MeasuredBlock)
		if !ok {
			return fmt.Errorf("pooling: block %q has no measured realization", block.Name())
		}
		measured = mb
	}

	for gi, g := range groups {
		ordered := roleOrder(g, survivors[gi][0])
		params := b.alloc.alloc(block.ParamArity())
		var body []circuit.Op
		if measured != nil {
			cbit := b.nextCbit
			b.nextCbit++
			body = measured.MaterializeMeasured(ordered, params, cbit)
		} else {
			body = block.Materialize(ordered, params)
		}
		b.emitBlock(block.Name(), ordered, body)
	}
	b.track.applyPooling(groups, survivors)
	return nil
}

// roleOrder places the survivor first, keeping the other inputs in
// listed order, matching the survivor-first convention of pooling
// templates.
func roleOrder(group []int, survivor int) []int {
	out := []int{survivor}
	for _, q := range group {
		if q != survivor {
			out = append(out, q)
		}
	}
	return out
}

// RepeatLayers re-applies the most recently declared convolution and
// pooling pair. Without an argument it repeats until the active set can
// no longer host a full block application; with n it runs at most n
// times, also stopping silently at convergence. Explicit pooling lists
// do not generalize across shrinking active sets, so repetitions use
// the default pairing.
func (b *Builder) RepeatLayers(times ...int) error {
	if b.sealed() {
		return fmt.Errorf("repeat: %w", ErrBuilderFinalized)
	}
	n := -1
	if len(times) > 0 {
		if times[0] < 1 {
			return fmt.Errorf("repeat: count must be positive, got %d", times[0])
		}
		n = times[0]
	}
	if b.deferred {
		b.decls = append(b.decls, layerDecl{kind: layerRepeat, repeat: n})
		return nil
	}
	conv, pool, ok := b.lastPair()
	if !ok {
		return fmt.Errorf("repeat: no convolution+pooling pair declared yet")
	}
	return b.applyRepeat(conv, pool, n)
}

// lastPair returns the most recent convolution and pooling declarations.
func (b *Builder) lastPair() (ConvOptions, PoolOptions, bool) {
	var conv *ConvOptions
	var pool *PoolOptions
	for i := len(b.decls) - 1; i >= 0 && (conv == nil || pool == nil); i-- {
		switch b.decls[i].kind {
		case layerConv:
			if conv == nil {
				c := b.decls[i].conv
				conv = &c
			}
		case layerPool:
			if pool == nil {
				p := b.decls[i].pool
				pool = &p
			}
		}
	}
	if conv == nil || pool == nil {
		return ConvOptions{}, PoolOptions{}, false
	}
	return *conv, *pool, true
}

func (b *Builder) applyRepeat(conv ConvOptions, pool PoolOptions, n int) error {
	pool.Inputs = nil
	pool.Outputs = nil
	need := conv.Block.QubitArity()
	if pk := pool.Block.QubitArity(); pk > need {
		need = pk
	}
	for i := 0; n < 0 || i < n; i++ {
		if len(b.track.active) < need {
			break // convergence, not an error
		}
		if err := b.applyConv(conv); err != nil {
			return err
		}
		if err := b.applyPool(pool); err != nil {
			return err
		}
	}
	return nil
}

// FullyConnected applies one final block across every remaining active
// qubit, collapses the active set to its first element, and finalizes
// the builder: any further convolution or pooling fails with
// ErrBuilderFinalized. A supplied block must span exactly the remaining
// active count.
func (b *Builder) FullyConnected(block ...BlockTemplate) error {
	if b.sealed() {
		return fmt.Errorf("fully connected: %w", ErrBuilderFinalized)
	}
	var blk BlockTemplate
	if len(block) > 0 {
		blk = block[0]
	}
	if b.deferred {
		b.decls = append(b.decls, layerDecl{kind: layerFC, fc: blk})
		return nil
	}
	if err := b.applyFC(blk); err != nil {
		return err
	}
	b.decls = append(b.decls, layerDecl{kind: layerFC, fc: blk})
	return nil
}

func (b *Builder) applyFC(blk BlockTemplate) error {
	active := b.track.activeQubits()
	if blk == nil {
		blk = fullyConnectedBlock(len(active))
	} else if blk.QubitArity() != len(active) {
		return fmt.Errorf("fully connected: block spans %d qubits, %d active: %w",
			blk.QubitArity(), len(active), ErrInvalidAddressing)
	}
	params := b.alloc.alloc(blk.ParamArity())
	b.emitBlock(blk.Name(), active, blk.Materialize(active, params))
	b.track.collapse(active[0])
	b.finalized = true
	return nil
}

func (b *Builder) emitBlock(label string, qubits []int, body []circuit.Op) {
	b.ops = append(b.ops, circuit.NewBlock(label, qubits, body))
	b.track.markReferenced(qubits...)
}
