package circuit

import "fmt"

// Compose concatenates two circuits, sequencing a before b. The result
// spans the larger of the two registers; parameter vectors are unioned,
// with same-named vectors identified when their arities agree.
//
// Both register size and total parameter count are associative under
// Compose, so (a+b)+c and a+(b+c) describe the same artifact.
func Compose(a, b *Circuit) (*Circuit, error) {
	for name, bLen := range b.vectors {
		aLen, shared := a.vectors[name]
		if !shared || aLen == bLen {
			continue
		}
		if name == FeatureVector {
			return nil, fmt.Errorf("compose: left consumes %d features, right %d: %w",
				aLen, bLen, ErrFeatureArityMismatch)
		}
		return nil, fmt.Errorf("compose: vector %q: arity %d vs %d: %w",
			name, aLen, bLen, ErrParameterCollision)
	}

	out := New(max(a.numQubits, b.numQubits))
	out.ops = cloneOps(a.ops)

	// b's classical bits land after a's so mid-circuit measurements on
	// either side stay addressable.
	shift := a.NumClassicalBits()
	bOps := cloneOps(b.ops)
	shiftCbits(bOps, shift)
	out.ops = append(out.ops, bOps...)

	for name, length := range a.vectors {
		out.vectors[name] = length
	}
	for name, length := range b.vectors {
		if length > out.vectors[name] {
			out.vectors[name] = length
		}
	}
	return out, nil
}

// Compose returns the concatenation c followed by other.
func (c *Circuit) Compose(other *Circuit) (*Circuit, error) {
	return Compose(c, other)
}

func shiftCbits(ops []Op, shift int) {
	if shift == 0 {
		return
	}
	for i := range ops {
		if ops[i].Cbit >= 0 {
			ops[i].Cbit += shift
		}
		if ops[i].CondBit >= 0 {
			ops[i].CondBit += shift
		}
		shiftCbits(ops[i].Body, shift)
	}
}
