// SPDX-License-Identifier: MIT

package core

import "golang.org/x/exp/rand"

// Applier is the single contract every skelaug operation satisfies —
// transforms, temporal selections and combinators alike — so composition
// code treats any child uniformly.
//
// Apply mutates rec in place and returns it. forceApply bypasses the
// operation's own probability gate; a parent passes true once it has
// committed to running this specific child. rng is the sole randomness
// source; *rand.Rand is not goroutine-safe, so concurrent pipelines must use
// independent streams (DeriveRand).
type Applier interface {
	Apply(rng *rand.Rand, rec *Record, forceApply bool) (*Record, error)

	// Probability reports the operation's own apply probability. Weighted
	// combinators read it as the child's selection weight.
	Probability() float64
}

// Gate implements the shared probability gate of the transform contract.
// Concrete transforms embed it and consult Hit before running their effect.
type Gate struct {
	// P is the apply probability in [0,1]. Values ≥ 1 always pass.
	P float64

	// AlwaysApply bypasses the draw regardless of P.
	AlwaysApply bool
}

// Hit reports whether the gated effect should run. At most one uniform draw
// is consumed per invocation; forceApply and AlwaysApply short-circuit it.
func (g Gate) Hit(rng *rand.Rand, forceApply bool) bool {
	return forceApply || g.AlwaysApply || rng.Float64() < g.P
}

// Probability returns P, the gate's apply probability.
func (g Gate) Probability() float64 { return g.P }
