// Copyright 2026 sQUlearn Go. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package qcnn

import (
	"github.com/MHagelueken/squlearn/circuit"
	"github.com/MHagelueken/squlearn/internal/qcnn"
)

// Builder accumulates a QCNN circuit topology.
type Builder = qcnn.Builder

// New creates a forward-mode builder over numQubits register
// positions, all initially active.
//
// Example:
//
//	b := qcnn.New(4)
//	_ = b.Convolution(qcnn.ConvOptions{})
//	_ = b.Pooling(qcnn.PoolOptions{})
//	c, err := b.Circuit()
func New(numQubits int) *Builder {
	return qcnn.New(numQubits)
}

// NewDeferred creates a backward-mode builder: layers are declared
// against an unresolved register and materialized by Build.
func NewDeferred() *Builder {
	return qcnn.NewDeferred()
}

// ConvOptions configures one convolution layer.
type ConvOptions = qcnn.ConvOptions

// PoolOptions configures one pooling layer.
type PoolOptions = qcnn.PoolOptions

// ParamSharing selects how repeated block instances within one layer
// bind their parameter handles.
type ParamSharing = qcnn.ParamSharing

const (
	ShareNone      = qcnn.ShareNone
	ShareAll       = qcnn.ShareAll
	ShareAlternate = qcnn.ShareAlternate
)

// BlockTemplate is a reusable parameterized sub-circuit applied across
// groups of active qubits.
type BlockTemplate = qcnn.BlockTemplate

// MeasuredBlock is a pooling template with a mid-circuit measurement
// realization.
type MeasuredBlock = qcnn.MeasuredBlock

// DefaultConvolution returns the default two-qubit convolution block.
func DefaultConvolution() BlockTemplate {
	return qcnn.DefaultConvolution()
}

// DefaultPooling returns the default two-qubit pooling block.
func DefaultPooling() BlockTemplate {
	return qcnn.DefaultPooling()
}

// BlockFromCircuit wraps a user circuit as a block template. Circuits
// declaring feature parameters are rejected with
// ErrFeatureInjectionNotAllowed.
func BlockFromCircuit(name string, c *circuit.Circuit) (BlockTemplate, error) {
	return qcnn.BlockFromCircuit(name, c)
}

// Builder errors.
var (
	ErrInvalidAddressing          = qcnn.ErrInvalidAddressing
	ErrIrreversibleReduction      = qcnn.ErrIrreversibleReduction
	ErrBuilderFinalized           = qcnn.ErrBuilderFinalized
	ErrUnsatisfiableTarget        = qcnn.ErrUnsatisfiableTarget
	ErrFeatureInjectionNotAllowed = qcnn.ErrFeatureInjectionNotAllowed
)
