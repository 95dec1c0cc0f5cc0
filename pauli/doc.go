// Copyright 2026 sQUlearn Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pauli exposes measurement observables as weighted sums of
// Pauli strings.
//
// The QCNN builder synthesizes observables over the qubits surviving
// pooling; the Map view (Pauli string to weight) is the artifact an
// external trainer consumes alongside the circuit.
package pauli
