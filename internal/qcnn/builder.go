// Package qcnn implements the QCNN circuit-topology builder.
//
// A Builder alternates parameterized convolution layers with
// qubit-reducing pooling layers over a fixed register, tracks which
// qubits remain active after each reduction, and derives a measurement
// observable over the survivors. It owns no execution backend: the
// finished circuit and observable are handed to an external trainer.
//
// Builders come in two construction modes. Forward mode fixes the
// register size up front and materializes every layer as it is applied.
// Backward mode declares layers against a deferred register; Build then
// resolves the smallest register size that leaves the requested number
// of active qubits, after which forward construction may resume.
//
// A Builder is owned by a single goroutine; mutating calls are not safe
// for concurrent use.
package qcnn

import (
	"fmt"

	"github.com/MHagelueken/squlearn/internal/circuit"
	"github.com/MHagelueken/squlearn/internal/pauli"
)

// Builder accumulates a QCNN topology. The zero value is not usable;
// construct with New or NewDeferred.
type Builder struct {
	track     *tracker
	deferred  bool
	finalized bool

	ops      []circuit.Op
	decls    []layerDecl
	alloc    allocator
	nextCbit int
}

type layerKind int

const (
	layerConv layerKind = iota
	layerPool
	layerFC
	layerRepeat
)

type layerDecl struct {
	kind   layerKind
	conv   ConvOptions
	pool   PoolOptions
	fc     BlockTemplate // nil for the generic default
	repeat int           // -1 for repeat-until-convergence
}

// New creates a forward-mode builder over numQubits register positions,
// all initially active.
func New(numQubits int) *Builder {
	if numQubits < 1 {
		panic(fmt.Sprintf("qcnn.New: register size must be positive, got %d", numQubits))
	}
	return &Builder{
		track: newTracker(numQubits),
		alloc: allocator{vector: circuit.ParamVector},
	}
}

// NewDeferred creates a backward-mode builder: layers are declared
// against an unresolved register and materialized by Build.
func NewDeferred() *Builder {
	return &Builder{
		deferred: true,
		alloc:    allocator{vector: circuit.ParamVector},
	}
}

// WithParamVector renames the builder's trainable parameter vector.
// Builders that will be composed use distinct vector names to keep
// their parameter spaces disjoint.
func (b *Builder) WithParamVector(name string) *Builder {
	b.alloc.vector = name
	return b
}

// NumQubits returns the register size, 0 while deferred.
func (b *Builder) NumQubits() int {
	if b.deferred {
		return 0
	}
	return b.track.size()
}

// ActiveQubits returns the ordered register positions still active.
func (b *Builder) ActiveQubits() []int {
	if b.deferred {
		return nil
	}
	return b.track.activeQubits()
}

// Finalized reports whether a fully-connected layer has collapsed the
// builder.
func (b *Builder) Finalized() bool {
	return b.finalized
}

// sealed reports whether further layers are forbidden. A deferred
// builder seals as soon as a fully-connected layer is declared, before
// materialization ever runs.
func (b *Builder) sealed() bool {
	if b.finalized {
		return true
	}
	if !b.deferred {
		return false
	}
	for _, d := range b.decls {
		if d.kind == layerFC {
			return true
		}
	}
	return false
}

// SetNumQubits resizes the register. Growing appends fresh active
// qubits and is always legal before finalization. Shrinking removes the
// highest positions and fails with ErrIrreversibleReduction when any of
// them was referenced by an applied layer. On a deferred builder the
// call fixes the register at n and materializes the declared layers.
func (b *Builder) SetNumQubits(n int) error {
	if b.finalized {
		return fmt.Errorf("resize to %d: %w", n, ErrBuilderFinalized)
	}
	if n < 1 {
		return fmt.Errorf("resize to %d: register size must be positive", n)
	}
	if b.deferred {
		return b.materializeAt(n)
	}
	switch {
	case n > b.track.size():
		b.track.grow(n)
	case n < b.track.size():
		if err := b.track.shrink(n); err != nil {
			return err
		}
	}
	return nil
}

// Circuit returns the assembled circuit artifact over the current
// register. Deferred builders must Build first.
func (b *Builder) Circuit() (*circuit.Circuit, error) {
	if b.deferred {
		return nil, fmt.Errorf("circuit: register size not resolved; call Build first")
	}
	c := circuit.New(b.track.size())
	c.Append(cloneBuilderOps(b.ops)...)
	return c, nil
}

// Observable synthesizes the default observable: a single weight-1
// non-identity operator (Z unless overridden) on the first active
// qubit, identity elsewhere.
func (b *Builder) Observable(op ...byte) (*pauli.Observable, error) {
	if b.deferred {
		return nil, fmt.Errorf("observable: register size not resolved; call Build first")
	}
	pop := byte('Z')
	if len(op) > 0 {
		pop = op[0]
	}
	active := b.track.activeQubits()
	return pauli.Default(b.track.size(), active[0], pop)
}

// MappedObservable embeds a caller observable onto the active qubits in
// order, identity elsewhere. The caller observable must not span more
// qubits than remain active (pauli.ErrObservableArityMismatch).
func (b *Builder) MappedObservable(user *pauli.Observable) (*pauli.Observable, error) {
	if b.deferred {
		return nil, fmt.Errorf("observable: register size not resolved; call Build first")
	}
	return pauli.Embed(user, b.track.activeQubits(), b.track.size())
}

func cloneBuilderOps(ops []circuit.Op) []circuit.Op {
	out := make([]circuit.Op, len(ops))
	copy(out, ops)
	return out
}
