// SPDX-License-Identifier: MIT

package compose

import (
	"log/slog"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// OneOrOther branches between exactly two children. One draw against p:
// success runs the first child, failure the second — either way with
// forceApply=true, so the chosen branch always runs.
type OneOrOther struct {
	p             float64
	first, second core.Applier
}

// NewOneOrOther builds the binary branch. p is the probability of taking
// first.
func NewOneOrOther(first, second core.Applier, p float64) *OneOrOther {
	return &OneOrOther{p: p, first: first, second: second}
}

// NewOneOrOtherFrom adapts a child list into a binary branch. The list is
// expected to hold exactly two children; any other arity is corrected
// silently (first and last entry are used) and logged rather than rejected.
// An empty list is the one unrecoverable case.
func NewOneOrOtherFrom(transforms []core.Applier, p float64) (*OneOrOther, error) {
	if len(transforms) == 0 {
		return nil, ErrNoTransforms
	}
	if len(transforms) != 2 {
		slog.Warn("compose: OneOrOther expects exactly two transforms",
			"got", len(transforms))
	}
	return NewOneOrOther(transforms[0], transforms[len(transforms)-1], p), nil
}

// Apply implements core.Applier. The branch draw happens on every call;
// forceApply cannot skip it because both outcomes run a child regardless.
func (o *OneOrOther) Apply(rng *rand.Rand, rec *core.Record, _ bool) (*core.Record, error) {
	if rng.Float64() < o.p {
		return o.first.Apply(rng, rec, true)
	}
	return o.second.Apply(rng, rec, true)
}

// Probability implements core.Applier.
func (o *OneOrOther) Probability() float64 { return o.p }
