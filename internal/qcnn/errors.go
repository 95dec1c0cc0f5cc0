package qcnn

import "errors"

// Builder errors. All are construction-time programming errors: they
// surface synchronously and leave the builder unchanged.
var (
	// ErrInvalidAddressing is returned when a layer references a qubit
	// that is not currently active, or when input/output lists do not
	// match the block's declared arity.
	ErrInvalidAddressing = errors.New("qubit reference not active or lists mismatch block arity")

	// ErrIrreversibleReduction is returned when a register shrink would
	// remove a qubit already consumed or referenced by an applied layer.
	ErrIrreversibleReduction = errors.New("qubit already consumed by an applied layer")

	// ErrBuilderFinalized is returned when a layer is appended after a
	// fully-connected collapse.
	ErrBuilderFinalized = errors.New("builder finalized by fully-connected layer")

	// ErrUnsatisfiableTarget is returned when no register size leaves
	// the requested number of active qubits after the declared layers.
	ErrUnsatisfiableTarget = errors.New("no register size satisfies the declared reduction chain")

	// ErrFeatureInjectionNotAllowed is returned when a caller-supplied
	// block declares feature parameters; feature binding is reserved
	// for the encoding circuit's top level.
	ErrFeatureInjectionNotAllowed = errors.New("feature parameters not allowed in supplied blocks")
)
