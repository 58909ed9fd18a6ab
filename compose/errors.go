// SPDX-License-Identifier: MIT
// Package compose: sentinel error set. Constructors return these for usage
// violations; tests match them via errors.Is.

package compose

import "errors"

var (
	// ErrNoTransforms indicates a weighted combinator was built with no
	// children; an empty categorical distribution cannot be sampled.
	ErrNoTransforms = errors.New("compose: at least one transform is required")

	// ErrNegativeWeight indicates a child reported a negative probability;
	// weights must be non-negative.
	ErrNegativeWeight = errors.New("compose: transform probabilities must be non-negative")

	// ErrZeroWeightSum indicates all child probabilities are zero, leaving
	// nothing to normalize into a categorical distribution.
	ErrZeroWeightSum = errors.New("compose: transform probabilities sum to zero")

	// ErrSampleSize indicates a SomeOf sample size below 1, or above the
	// child count when sampling without replacement.
	ErrSampleSize = errors.New("compose: invalid sample size")
)
