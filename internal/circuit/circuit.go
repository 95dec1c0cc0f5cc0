// Package circuit implements the parameterized quantum circuit artifact
// assembled by the QCNN builder.
//
// A Circuit is an ordered list of operations over a fixed qubit register.
// Operations carry symbolic arguments referencing named parameter vectors
// (the feature vector "x" and the trainable vector "p"), so a circuit can
// be constructed, composed, and rendered before any value is bound.
// Parameter binding and execution belong to an external trainer and are
// not part of this package.
package circuit

import (
	"fmt"
)

// Reserved parameter vector names.
const (
	// FeatureVector holds the data features fed into an encoding layer.
	FeatureVector = "x"
	// ParamVector holds the trainable parameters issued by the builder.
	ParamVector = "p"
)

// Arg is a single gate argument: either a literal angle or a symbolic
// reference into a named parameter vector.
type Arg struct {
	Vector string // empty for literals
	Index  int
	Value  float64
}

// Lit returns a literal argument.
func Lit(v float64) Arg {
	return Arg{Value: v}
}

// Sym returns a symbolic argument referencing vector[index].
func Sym(vector string, index int) Arg {
	return Arg{Vector: vector, Index: index}
}

// IsSymbol reports whether the argument is a symbolic reference.
func (a Arg) IsSymbol() bool {
	return a.Vector != ""
}

// String renders the argument: "p[3]" for symbols, pi notation or a
// plain number for literals.
func (a Arg) String() string {
	if a.IsSymbol() {
		return fmt.Sprintf("%s[%d]", a.Vector, a.Index)
	}
	return formatAngle(a.Value)
}

// Op is one operation in a circuit. For two-qubit gates the control
// qubit comes first in Qubits and the target last. A non-empty Body
// marks a composite block instance; Decompose expands it.
type Op struct {
	Gate    string // gate mnemonic ("ry", "cx", "measure") or block label
	Qubits  []int
	Args    []Arg
	Cbit    int  // measurement destination bit, -1 if none
	CondBit int  // classical condition bit, -1 if unconditioned
	Body    []Op // sub-ops for composite block instances
}

// NewOp returns an unparameterized operation on the given qubits.
func NewOp(gate string, qubits ...int) Op {
	return Op{Gate: gate, Qubits: qubits, Cbit: -1, CondBit: -1}
}

// NewParamOp returns a parameterized operation on the given qubits.
func NewParamOp(gate string, args []Arg, qubits ...int) Op {
	return Op{Gate: gate, Qubits: qubits, Args: args, Cbit: -1, CondBit: -1}
}

// NewMeasure returns a mid-circuit measurement of qubit into cbit.
func NewMeasure(qubit, cbit int) Op {
	return Op{Gate: "measure", Qubits: []int{qubit}, Cbit: cbit, CondBit: -1}
}

// Conditioned returns a copy of op gated on classical bit cbit being 1.
func Conditioned(op Op, cbit int) Op {
	op.CondBit = cbit
	return op
}

// NewBlock returns a composite operation with the given label and body.
// The label appears in the application-order view; Decompose expands
// the body.
func NewBlock(label string, qubits []int, body []Op) Op {
	return Op{Gate: label, Qubits: qubits, Body: body, Cbit: -1, CondBit: -1}
}

// IsComposite reports whether the op is a composite block instance.
func (o Op) IsComposite() bool {
	return len(o.Body) > 0
}

// References reports whether the op touches the given qubit, including
// qubits referenced inside a composite body.
func (o Op) References(qubit int) bool {
	for _, q := range o.Qubits {
		if q == qubit {
			return true
		}
	}
	for _, sub := range o.Body {
		if sub.References(qubit) {
			return true
		}
	}
	return false
}

// Circuit is an ordered operation list over a fixed register, together
// with the high-water arity of every referenced parameter vector.
type Circuit struct {
	numQubits int
	ops       []Op
	vectors   map[string]int // vector name -> declared length
}

// New creates an empty circuit over numQubits register positions.
func New(numQubits int) *Circuit {
	if numQubits < 1 {
		panic(fmt.Sprintf("circuit.New: register size must be positive, got %d", numQubits))
	}
	return &Circuit{
		numQubits: numQubits,
		vectors:   make(map[string]int),
	}
}

// NumQubits returns the register size.
func (c *Circuit) NumQubits() int {
	return c.numQubits
}

// NumFeatures returns the declared feature-parameter count.
func (c *Circuit) NumFeatures() int {
	return c.vectors[FeatureVector]
}

// NumParameters returns the total trainable-parameter count across all
// non-feature vectors.
func (c *Circuit) NumParameters() int {
	n := 0
	for name, length := range c.vectors {
		if name != FeatureVector {
			n += length
		}
	}
	return n
}

// VectorLen returns the declared length of the named parameter vector,
// 0 if the circuit never references it.
func (c *Circuit) VectorLen(name string) int {
	return c.vectors[name]
}

// Vectors returns the referenced vector names and their lengths.
func (c *Circuit) Vectors() map[string]int {
	out := make(map[string]int, len(c.vectors))
	for k, v := range c.vectors {
		out[k] = v
	}
	return out
}

// Append adds operations in application order. Qubit indices are
// validated against the register; symbolic args grow their vector's
// declared length.
func (c *Circuit) Append(ops ...Op) {
	for _, op := range ops {
		c.checkOp(op)
		c.ops = append(c.ops, op)
	}
}

func (c *Circuit) checkOp(op Op) {
	for _, q := range op.Qubits {
		if q < 0 || q >= c.numQubits {
			panic(fmt.Sprintf("circuit: op %q references qubit %d outside register of size %d", op.Gate, q, c.numQubits))
		}
	}
	c.trackArgs(op)
	for _, sub := range op.Body {
		c.checkOp(sub)
	}
}

func (c *Circuit) trackArgs(op Op) {
	for _, a := range op.Args {
		if a.IsSymbol() && a.Index+1 > c.vectors[a.Vector] {
			c.vectors[a.Vector] = a.Index + 1
		}
	}
}

// Ops returns the operations in application order. Composite block
// instances appear as single entries; use Decompose for primitives.
func (c *Circuit) Ops() []Op {
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

// Len returns the number of top-level operations.
func (c *Circuit) Len() int {
	return len(c.ops)
}

// Decompose returns the primitive-gate view: composite bodies are
// expanded recursively, in application order.
func (c *Circuit) Decompose() []Op {
	var out []Op
	for _, op := range c.ops {
		out = append(out, flatten(op)...)
	}
	return out
}

func flatten(op Op) []Op {
	if !op.IsComposite() {
		return []Op{op}
	}
	var out []Op
	for _, sub := range op.Body {
		out = append(out, flatten(sub)...)
	}
	return out
}

// NumClassicalBits returns the classical register size needed by the
// circuit's measurements and conditions.
func (c *Circuit) NumClassicalBits() int {
	maxBit := -1
	for _, op := range c.Decompose() {
		if op.Cbit > maxBit {
			maxBit = op.Cbit
		}
		if op.CondBit > maxBit {
			maxBit = op.CondBit
		}
	}
	return maxBit + 1
}

// Clone returns a deep copy of the circuit.
func (c *Circuit) Clone() *Circuit {
	out := New(c.numQubits)
	out.ops = cloneOps(c.ops)
	for k, v := range c.vectors {
		out.vectors[k] = v
	}
	return out
}

func cloneOps(ops []Op) []Op {
	out := make([]Op, len(ops))
	for i, op := range ops {
		out[i] = op
		out[i].Qubits = append([]int(nil), op.Qubits...)
		out[i].Args = append([]Arg(nil), op.Args...)
		if op.Body != nil {
			out[i].Body = cloneOps(op.Body)
		}
	}
	return out
}

// RenameVector renames a parameter vector across the whole circuit.
// Renaming onto an existing vector of a different length fails with
// ErrParameterCollision; onto one of equal length the vectors merge.
func (c *Circuit) RenameVector(old, new string) error {
	oldLen, ok := c.vectors[old]
	if !ok {
		return nil
	}
	if newLen, exists := c.vectors[new]; exists && newLen != oldLen {
		return fmt.Errorf("rename %q to %q: arity %d vs %d: %w", old, new, oldLen, newLen, ErrParameterCollision)
	}
	renameOps(c.ops, old, new)
	delete(c.vectors, old)
	if oldLen > c.vectors[new] {
		c.vectors[new] = oldLen
	}
	return nil
}

func renameOps(ops []Op, old, new string) {
	for i := range ops {
		for j := range ops[i].Args {
			if ops[i].Args[j].Vector == old {
				ops[i].Args[j].Vector = new
			}
		}
		renameOps(ops[i].Body, old, new)
	}
}
