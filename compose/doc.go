// SPDX-License-Identifier: MIT

// Package compose assembles skelaug operations into probabilistic pipelines.
//
// Compose is the root: it validates and normalizes the record once, runs
// every child in order, then (by default) zeroes the coordinates of invalid
// joints. The remaining combinators nest inside it:
//
//	Sequential — one draw against p; success runs all children in order
//	OneOf      — weighted random pick of exactly one child, forced
//	SomeOf     — weighted random pick of n children (with or without
//	             replacement), each forced, in draw order
//	OneOrOther — binary branch: one draw picks the first or second child, forced
//	NoOp       — the identity operation (useful as a weighted "do nothing" arm)
//
// Child probabilities double as weights: OneOf and SomeOf normalize the
// children's Probability() values into a categorical distribution at
// construction, and reject an all-zero weight sum there rather than dividing
// by zero at call time.
//
// Every combinator draws from the *rand.Rand passed to Apply; none keeps
// random state of its own.
package compose
