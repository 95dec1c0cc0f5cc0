package circuit

import "errors"

// Composition errors.
var (
	// ErrParameterCollision is returned when two composed circuits bind
	// the same parameter vector name with incompatible arities.
	ErrParameterCollision = errors.New("parameter vector bound with incompatible arities")

	// ErrFeatureArityMismatch is returned when two composed circuits
	// declare different feature counts.
	ErrFeatureArityMismatch = errors.New("feature arity mismatch between composed circuits")
)
