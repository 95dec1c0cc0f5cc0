package qcnn

import "github.com/MHagelueken/squlearn/internal/circuit"

// ParamSharing selects how repeated block instances within one layer
// bind their parameter handles.
type ParamSharing int

const (
	// ShareNone allocates independent handles per block instance.
	ShareNone ParamSharing = iota
	// ShareAll binds one handle set across every instance in the layer.
	ShareAll
	// ShareAlternate binds two handle sets, cycled by the instance's
	// adjacency-position parity.
	ShareAlternate
)

// allocator issues indices from the builder's trainable parameter
// vector. Indices are never reused; the vector's final length is the
// circuit's trainable parameter count.
type allocator struct {
	vector string
	next   int
}

func (a *allocator) alloc(n int) []circuit.Arg {
	out := make([]circuit.Arg, n)
	for i := range out {
		out[i] = circuit.Sym(a.vector, a.next)
		a.next++
	}
	return out
}

// layerParams returns the per-instance handle source for one layer.
// The returned function is called with the instance's adjacency parity
// (0 for the even sublayer, 1 for the odd one).
func (a *allocator) layerParams(arity int, mode ParamSharing) func(parity int) []circuit.Arg {
	switch mode {
	case ShareAll:
		shared := a.alloc(arity)
		return func(int) []circuit.Arg { return shared }
	case ShareAlternate:
		even := a.alloc(arity)
		odd := a.alloc(arity)
		return func(parity int) []circuit.Arg {
			if parity%2 == 0 {
				return even
			}
			return odd
		}
	default:
		return func(int) []circuit.Arg { return a.alloc(arity) }
	}
}
