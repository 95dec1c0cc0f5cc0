package qcnn

import (
	"fmt"
	"math"
	"sort"

	"github.com/MHagelueken/squlearn/internal/circuit"
)

// BlockTemplate is a reusable parameterized sub-circuit applied across
// groups of active qubits. A template declares its qubit and parameter
// arity up front; Materialize binds it to concrete register positions
// and builder-issued parameter handles.
//
// For pooling templates the surviving qubits come first in the qubits
// slice, followed by the discarded ones.
type BlockTemplate interface {
	// Name labels block instances in the circuit's application-order view.
	Name() string

	// QubitArity returns the number of qubits one instance spans.
	QubitArity() int

	// ParamArity returns the number of parameter handles one instance
	// consumes.
	ParamArity() int

	// Materialize emits the block's primitive operations on the given
	// register positions with the given parameter handles. len(qubits)
	// must equal QubitArity and len(params) ParamArity.
	Materialize(qubits []int, params []circuit.Arg) []circuit.Op
}

// MeasuredBlock is a pooling template that also has a mid-circuit
// measurement realization: the discarded qubit is measured and the
// surviving qubit receives classically-conditioned corrections instead
// of a unitary controlled coupling.
type MeasuredBlock interface {
	BlockTemplate

	// MaterializeMeasured emits the measured realization. The discarded
	// qubit's outcome lands in classical bit cbit.
	MaterializeMeasured(qubits []int, params []circuit.Arg, cbit int) []circuit.Op
}

// convBlock is the default two-qubit convolution template.
type convBlock struct{}

// DefaultConvolution returns the default convolution block: two qubits,
// three parameters, a single entangling coupling framed by rotations.
func DefaultConvolution() BlockTemplate {
	return convBlock{}
}

func (convBlock) Name() string    { return "conv" }
func (convBlock) QubitArity() int { return 2 }
func (convBlock) ParamArity() int { return 3 }

func (convBlock) Materialize(qubits []int, params []circuit.Arg) []circuit.Op {
	a, b := qubits[0], qubits[1]
	return []circuit.Op{
		circuit.NewParamOp("rz", []circuit.Arg{circuit.Lit(-math.Pi / 2)}, b),
		circuit.NewOp("cx", b, a),
		circuit.NewParamOp("rz", []circuit.Arg{params[0]}, a),
		circuit.NewParamOp("ry", []circuit.Arg{params[1]}, b),
		circuit.NewOp("cx", a, b),
		circuit.NewParamOp("ry", []circuit.Arg{params[2]}, b),
		circuit.NewOp("cx", b, a),
		circuit.NewParamOp("rz", []circuit.Arg{circuit.Lit(math.Pi / 2)}, a),
	}
}

// poolBlock is the default two-qubit pooling template.
type poolBlock struct{}

// DefaultPooling returns the default pooling block: two qubits, three
// parameters, coupling the discarded qubit into the survivor. The
// measured realization replaces the coupling with a mid-circuit
// measurement and a conditioned correction.
func DefaultPooling() BlockTemplate {
	return poolBlock{}
}

func (poolBlock) Name() string    { return "pool" }
func (poolBlock) QubitArity() int { return 2 }
func (poolBlock) ParamArity() int { return 3 }

func (poolBlock) Materialize(qubits []int, params []circuit.Arg) []circuit.Op {
	keep, drop := qubits[0], qubits[1]
	return []circuit.Op{
		circuit.NewParamOp("ry", []circuit.Arg{params[0]}, keep),
		circuit.NewParamOp("ry", []circuit.Arg{params[1]}, drop),
		circuit.NewOp("cx", drop, keep),
		circuit.NewParamOp("ry", []circuit.Arg{params[2]}, keep),
	}
}

func (poolBlock) MaterializeMeasured(qubits []int, params []circuit.Arg, cbit int) []circuit.Op {
	keep, drop := qubits[0], qubits[1]
	return []circuit.Op{
		circuit.NewParamOp("ry", []circuit.Arg{params[0]}, keep),
		circuit.NewParamOp("ry", []circuit.Arg{params[1]}, drop),
		circuit.NewMeasure(drop, cbit),
		circuit.Conditioned(circuit.NewOp("x", keep), cbit),
		circuit.NewParamOp("ry", []circuit.Arg{params[2]}, keep),
	}
}

// fcBlock is the generic fully-connected template over k qubits.
type fcBlock struct {
	arity int
}

func fullyConnectedBlock(arity int) BlockTemplate {
	return fcBlock{arity: arity}
}

func (b fcBlock) Name() string    { return "fc" }
func (b fcBlock) QubitArity() int { return b.arity }
func (b fcBlock) ParamArity() int { return b.arity }

func (b fcBlock) Materialize(qubits []int, params []circuit.Arg) []circuit.Op {
	var ops []circuit.Op
	for i := 0; i < len(qubits)-1; i++ {
		ops = append(ops, circuit.NewOp("cx", qubits[i+1], qubits[i]))
	}
	for i, q := range qubits {
		ops = append(ops, circuit.NewParamOp("ry", []circuit.Arg{params[i]}, q))
	}
	return ops
}

// circuitBlock adapts a caller-supplied circuit into a template.
type circuitBlock struct {
	name    string
	circ    *circuit.Circuit
	symbols []circuit.Arg // distinct symbols ordered by vector, then index
}

// BlockFromCircuit wraps a user circuit as a block template. Circuits
// declaring feature parameters are rejected with
// ErrFeatureInjectionNotAllowed; any trainable symbols the circuit
// carries are rebound to builder-issued handles at materialization.
func BlockFromCircuit(name string, c *circuit.Circuit) (BlockTemplate, error) {
	if c.NumFeatures() > 0 {
		return nil, fmt.Errorf("block %q declares %d feature parameters: %w",
			name, c.NumFeatures(), ErrFeatureInjectionNotAllowed)
	}
	return circuitBlock{
		name:    name,
		circ:    c.Clone(),
		symbols: collectSymbols(c.Ops()),
	}, nil
}

// collectSymbols returns the distinct symbolic args of ops, ordered by
// vector name and then index so rebinding is deterministic.
func collectSymbols(ops []circuit.Op) []circuit.Arg {
	seen := make(map[circuit.Arg]bool)
	var out []circuit.Arg
	var walk func(ops []circuit.Op)
	walk = func(ops []circuit.Op) {
		for _, op := range ops {
			for _, a := range op.Args {
				if a.IsSymbol() && !seen[a] {
					seen[a] = true
					out = append(out, a)
				}
			}
			walk(op.Body)
		}
	}
	walk(ops)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Vector != out[j].Vector {
			return out[i].Vector < out[j].Vector
		}
		return out[i].Index < out[j].Index
	})
	return out
}

func (b circuitBlock) Name() string    { return b.name }
func (b circuitBlock) QubitArity() int { return b.circ.NumQubits() }
func (b circuitBlock) ParamArity() int { return len(b.symbols) }

func (b circuitBlock) Materialize(qubits []int, params []circuit.Arg) []circuit.Op {
	rebind := make(map[circuit.Arg]circuit.Arg, len(b.symbols))
	for i, sym := range b.symbols {
		rebind[sym] = params[i]
	}
	return rewriteOps(b.circ.Ops(), qubits, rebind)
}

func rewriteOps(ops []circuit.Op, qubits []int, rebind map[circuit.Arg]circuit.Arg) []circuit.Op {
	out := make([]circuit.Op, len(ops))
	for i, op := range ops {
		out[i] = op
		out[i].Qubits = make([]int, len(op.Qubits))
		for j, q := range op.Qubits {
			out[i].Qubits[j] = qubits[q]
		}
		out[i].Args = make([]circuit.Arg, len(op.Args))
		for j, a := range op.Args {
			if bound, ok := rebind[a]; ok {
				out[i].Args[j] = bound
			} else {
				out[i].Args[j] = a
			}
		}
		if op.Body != nil {
			out[i].Body = rewriteOps(op.Body, qubits, rebind)
		}
	}
	return out
}
