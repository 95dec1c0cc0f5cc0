// Copyright 2026 sQUlearn Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package qcnn exposes the QCNN circuit-topology builder.
//
// # Overview
//
// A Builder alternates parameterized convolution blocks with
// qubit-reducing pooling blocks over a register, tracks the active
// qubits surviving each reduction, and derives a measurement observable
// over them. The builder constructs topology only: it never executes,
// simulates, or trains.
//
// # Forward construction
//
//	b := qcnn.New(4)
//	_ = b.Convolution(qcnn.ConvOptions{})
//	_ = b.Pooling(qcnn.PoolOptions{})          // active: {0, 2}
//	_ = b.RepeatLayers()                       // active: {0}
//	c, _ := b.Circuit()
//	obs, _ := b.Observable()                   // Z on qubit 0, identity elsewhere
//
// # Backward construction
//
// Layers may be declared before the register size is known; Build then
// resolves the smallest register leaving the requested active count:
//
//	b := qcnn.NewDeferred()
//	_ = b.Convolution(qcnn.ConvOptions{})
//	_ = b.Pooling(qcnn.PoolOptions{})
//	err := b.Build(2)                          // fixes the register at 3
//
// # Concurrency
//
// A Builder is owned by one goroutine; mutating calls must be
// externally serialized if shared.
package qcnn
