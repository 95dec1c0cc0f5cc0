// Package pauli implements measurement observables as weighted sums of
// Pauli strings over a fixed qubit register.
//
// The QCNN builder synthesizes observables over the qubits that survive
// pooling: either a default single-qubit measurement on the first
// surviving qubit, or an embedding of a caller-supplied smaller
// observable onto the surviving positions. The resulting Pauli-string
// to weight mapping is what an external trainer consumes.
package pauli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrObservableArityMismatch is returned when a caller observable spans
// more qubits than the active set it should be embedded onto.
var ErrObservableArityMismatch = errors.New("observable spans more qubits than the active set")

// Identity is the Pauli character for an unmeasured qubit.
const Identity = 'I'

// Term is one weighted Pauli string. Paulis has one character per
// register qubit, position 0 first.
type Term struct {
	Paulis string
	Weight float64
}

// Observable is an ordered weighted sum of Pauli strings over a fixed
// register. Term order is preserved by every transformation so that
// embeddings keep the caller's term structure intact.
type Observable struct {
	numQubits int
	terms     []Term
}

// New creates an observable from explicit terms. Every Pauli string
// must be exactly numQubits characters drawn from IXYZ.
func New(numQubits int, terms ...Term) (*Observable, error) {
	obs := &Observable{numQubits: numQubits}
	for _, t := range terms {
		if err := obs.add(t); err != nil {
			return nil, err
		}
	}
	return obs, nil
}

func (o *Observable) add(t Term) error {
	if len(t.Paulis) != o.numQubits {
		return fmt.Errorf("pauli: term %q has %d positions, register has %d",
			t.Paulis, len(t.Paulis), o.numQubits)
	}
	for _, r := range t.Paulis {
		switch r {
		case 'I', 'X', 'Y', 'Z':
		default:
			return fmt.Errorf("pauli: invalid operator %q in term %q", r, t.Paulis)
		}
	}
	o.terms = append(o.terms, t)
	return nil
}

// NumQubits returns the register size the observable is defined over.
func (o *Observable) NumQubits() int {
	return o.numQubits
}

// Terms returns the weighted Pauli strings in declaration order.
func (o *Observable) Terms() []Term {
	out := make([]Term, len(o.terms))
	copy(out, o.terms)
	return out
}

// Map returns the Pauli-string to weight view handed to a trainer.
// Duplicate strings accumulate.
func (o *Observable) Map() map[string]float64 {
	out := make(map[string]float64, len(o.terms))
	for _, t := range o.terms {
		out[t.Paulis] += t.Weight
	}
	return out
}

// String renders the observable as "w*PAULIS" terms joined by " + ".
func (o *Observable) String() string {
	if len(o.terms) == 0 {
		return strings.Repeat(string(Identity), o.numQubits)
	}
	parts := make([]string, len(o.terms))
	for i, t := range o.terms {
		if t.Weight == 1 {
			parts[i] = t.Paulis
		} else {
			parts[i] = fmt.Sprintf("%g*%s", t.Weight, t.Paulis)
		}
	}
	return strings.Join(parts, " + ")
}

// Default synthesizes the default observable: a single weight-1 term
// with op on the given qubit and identity elsewhere.
func Default(numQubits, qubit int, op byte) (*Observable, error) {
	if qubit < 0 || qubit >= numQubits {
		return nil, fmt.Errorf("pauli: qubit %d outside register of size %d", qubit, numQubits)
	}
	paulis := []byte(strings.Repeat(string(Identity), numQubits))
	paulis[qubit] = op
	return New(numQubits, Term{Paulis: string(paulis), Weight: 1})
}

// Embed places a smaller observable onto the active positions of a
// larger register: character i of every term lands at active[i],
// identity fills the rest, weights and term order are preserved.
//
// The user observable's register must not exceed the active set, else
// ErrObservableArityMismatch.
func Embed(user *Observable, active []int, numQubits int) (*Observable, error) {
	if user.numQubits > len(active) {
		return nil, fmt.Errorf("embed: observable spans %d qubits, active set has %d: %w",
			user.numQubits, len(active), ErrObservableArityMismatch)
	}
	for _, q := range active[:user.numQubits] {
		if q < 0 || q >= numQubits {
			return nil, fmt.Errorf("embed: active qubit %d outside register of size %d", q, numQubits)
		}
	}

	out := &Observable{numQubits: numQubits}
	for _, t := range user.terms {
		paulis := []byte(strings.Repeat(string(Identity), numQubits))
		for i := 0; i < user.numQubits; i++ {
			paulis[active[i]] = t.Paulis[i]
		}
		if err := out.add(Term{Paulis: string(paulis), Weight: t.Weight}); err != nil {
			return nil, err
		}
	}
	return out, nil
}
