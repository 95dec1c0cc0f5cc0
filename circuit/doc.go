// Copyright 2026 sQUlearn Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package circuit exposes the parameterized circuit artifact produced
// by the QCNN builder.
//
// # Overview
//
// A Circuit is an ordered operation list over a fixed qubit register.
// Gate arguments may be literal angles or symbolic references into
// named parameter vectors, so circuits are constructed, composed, and
// rendered before any value is bound. Binding and execution belong to
// an external trainer.
//
// # Basic Usage
//
//	enc := circuit.AngleEncoding(4, "rx")
//
//	c := circuit.New(2)
//	c.Append(circuit.NewParamOp("ry", []circuit.Arg{circuit.Sym("p", 0)}, 0))
//	c.Append(circuit.NewOp("cx", 0, 1))
//
//	model, err := circuit.Compose(enc, c)
//
// # Views
//
// Ops returns the application-order view with composite block instances
// intact; Decompose flattens them to primitive gates; ToQASM renders
// the decomposed circuit as OpenQASM 2.0 text with symbolic arguments
// emitted by name.
package circuit
