// Copyright 2026 sQUlearn Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pauli

import (
	"github.com/MHagelueken/squlearn/internal/pauli"
)

// Identity is the Pauli character for an unmeasured qubit.
const Identity = pauli.Identity

// Term is one weighted Pauli string, one character per register qubit.
type Term = pauli.Term

// Observable is an ordered weighted sum of Pauli strings over a fixed
// register.
type Observable = pauli.Observable

// New creates an observable from explicit terms.
//
// Example:
//
//	obs, err := pauli.New(2,
//	    pauli.Term{Paulis: "ZZ", Weight: 1},
//	    pauli.Term{Paulis: "XI", Weight: 0.5},
//	)
func New(numQubits int, terms ...Term) (*Observable, error) {
	return pauli.New(numQubits, terms...)
}

// Default synthesizes the default observable: a single weight-1 term
// with op on the given qubit and identity elsewhere.
func Default(numQubits, qubit int, op byte) (*Observable, error) {
	return pauli.Default(numQubits, qubit, op)
}

// Embed places a smaller observable onto the active positions of a
// larger register, identity elsewhere, preserving weights and term
// order.
func Embed(user *Observable, active []int, numQubits int) (*Observable, error) {
	return pauli.Embed(user, active, numQubits)
}

// ErrObservableArityMismatch is returned when a caller observable spans
// more qubits than the active set it should be embedded onto.
var ErrObservableArityMismatch = pauli.ErrObservableArityMismatch
