// SPDX-License-Identifier: MIT
// Package perturb: sentinel error set. Range violations surface from
// constructors, data-shape violations from Apply. Matched via errors.Is.

package perturb

import "errors"

var (
	// ErrAngleRange indicates a reversed angle range (first bound greater
	// than the second).
	ErrAngleRange = errors.New("perturb: invalid angle range")

	// ErrDistanceRange indicates a reversed or negative distance range.
	ErrDistanceRange = errors.New("perturb: invalid distance range")

	// ErrSigmaNegative indicates a negative noise standard deviation.
	ErrSigmaNegative = errors.New("perturb: sigma must be non-negative")

	// ErrRequires2D indicates a jitter applied to 3D coordinates; the
	// bounding-box clip is defined for 2D only.
	ErrRequires2D = errors.New("perturb: jitter requires 2D coordinates")

	// ErrJointIndex indicates a fixed jitter joint index below -1.
	ErrJointIndex = errors.New("perturb: joint index must be -1 (random) or non-negative")

	// ErrJointOutOfRange indicates a configured joint index outside [0, V).
	ErrJointOutOfRange = errors.New("perturb: joint index out of range")

	// ErrTooFewJoints indicates a swap on a record with fewer than two
	// joints.
	ErrTooFewJoints = errors.New("perturb: at least two joints are required")
)
