// SPDX-License-Identifier: MIT
// Package core: sentinel error set for record validation.
// Algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered conditions.

package core

import "errors"

var (
	// ErrMissingKeypoints indicates a record without a keypoint array reached
	// a pipeline entry point. Keypoints are the one required field.
	ErrMissingKeypoints = errors.New("core: keypoints are required")

	// ErrRaggedKeypoints indicates the keypoint array is not rectangular:
	// every frame must hold the same joint count and every joint the same
	// coordinate count.
	ErrRaggedKeypoints = errors.New("core: keypoints array is not rectangular")

	// ErrBadDims indicates a coordinate dimension other than 2 or 3.
	ErrBadDims = errors.New("core: coordinate dimension must be 2 or 3")

	// ErrMaskShape indicates a supplied Invalid or Perturbation mask whose
	// shape does not match the keypoint array's leading T×V axes.
	ErrMaskShape = errors.New("core: mask shape does not match keypoints")
)
