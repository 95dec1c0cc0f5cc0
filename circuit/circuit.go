// Copyright 2026 sQUlearn Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package circuit

import (
	"github.com/MHagelueken/squlearn/internal/circuit"
)

// Reserved parameter vector names.
const (
	FeatureVector = circuit.FeatureVector
	ParamVector   = circuit.ParamVector
)

// Arg is a gate argument: a literal angle or a symbolic reference into
// a named parameter vector.
type Arg = circuit.Arg

// Lit returns a literal argument.
func Lit(v float64) Arg {
	return circuit.Lit(v)
}

// Sym returns a symbolic argument referencing vector[index].
func Sym(vector string, index int) Arg {
	return circuit.Sym(vector, index)
}

// Op is one operation in a circuit.
type Op = circuit.Op

// NewOp returns an unparameterized operation on the given qubits.
func NewOp(gate string, qubits ...int) Op {
	return circuit.NewOp(gate, qubits...)
}

// NewParamOp returns a parameterized operation on the given qubits.
func NewParamOp(gate string, args []Arg, qubits ...int) Op {
	return circuit.NewParamOp(gate, args, qubits...)
}

// NewMeasure returns a mid-circuit measurement of qubit into cbit.
func NewMeasure(qubit, cbit int) Op {
	return circuit.NewMeasure(qubit, cbit)
}

// Conditioned returns a copy of op gated on classical bit cbit being 1.
func Conditioned(op Op, cbit int) Op {
	return circuit.Conditioned(op, cbit)
}

// NewBlock returns a composite operation with the given label and body.
func NewBlock(label string, qubits []int, body []Op) Op {
	return circuit.NewBlock(label, qubits, body)
}

// Circuit is an ordered operation list over a fixed qubit register.
type Circuit = circuit.Circuit

// New creates an empty circuit over numQubits register positions.
func New(numQubits int) *Circuit {
	return circuit.New(numQubits)
}

// Compose concatenates two circuits, sequencing a before b.
//
// Example:
//
//	encoder := circuit.AngleEncoding(4, "rx")
//	model, err := circuit.Compose(encoder, qcnnCircuit)
func Compose(a, b *Circuit) (*Circuit, error) {
	return circuit.Compose(a, b)
}

// AngleEncoding builds the minimal feature-encoding circuit: one
// rotation gate per qubit, each consuming one feature symbol.
func AngleEncoding(numQubits int, gate string) *Circuit {
	return circuit.AngleEncoding(numQubits, gate)
}

// Composition errors.
var (
	ErrParameterCollision   = circuit.ErrParameterCollision
	ErrFeatureArityMismatch = circuit.ErrFeatureArityMismatch
)
