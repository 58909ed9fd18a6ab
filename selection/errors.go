// SPDX-License-Identifier: MIT
// Package selection: sentinel error set. Constructors return these for bad
// ranges; per-call data checks surface them from Apply. Matched via errors.Is.

package selection

import "errors"

var (
	// ErrWindowRange indicates max_num smaller than min_num, or a negative
	// minimum, in a random window constructor.
	ErrWindowRange = errors.New("selection: invalid window size range")

	// ErrBorderNegative indicates a negative border width.
	ErrBorderNegative = errors.New("selection: border width must be non-negative")

	// ErrWindowTooLarge indicates a window size exceeding the sequence
	// length of the record being processed.
	ErrWindowTooLarge = errors.New("selection: window size exceeds sequence length")

	// ErrFrameOutOfRange indicates a fixed frame index outside [0, T).
	ErrFrameOutOfRange = errors.New("selection: frame index out of range")

	// ErrJointOutOfRange indicates a movement-scoring joint subset index
	// outside [0, V).
	ErrJointOutOfRange = errors.New("selection: joint index out of range")
)
