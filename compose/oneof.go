// SPDX-License-Identifier: MIT

package compose

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/skelaug/core"
)

// OneOf applies exactly one of its children, picked from the categorical
// distribution formed by the children's probabilities (normalized to one at
// construction). The picked child runs with forceApply=true, so its own gate
// never vetoes the pick.
type OneOf struct {
	p          float64
	transforms []core.Applier
	weights    []float64
}

// NewOneOf builds the combinator. p is the probability that any child runs
// at all. Construction fails on an empty child list, a negative child
// probability, or an all-zero weight sum.
func NewOneOf(transforms []core.Applier, p float64) (*OneOf, error) {
	weights, err := childWeights(transforms)
	if err != nil {
		return nil, err
	}
	return &OneOf{p: p, transforms: transforms, weights: weights}, nil
}

// Apply implements core.Applier. One draw against p (skipped under
// forceApply), then one categorical draw to pick the child.
func (o *OneOf) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !forceApply && rng.Float64() >= o.p {
		return rec, nil
	}
	idx := int(distuv.NewCategorical(o.weights, rng).Rand())
	return o.transforms[idx].Apply(rng, rec, true)
}

// Probability implements core.Applier.
func (o *OneOf) Probability() float64 { return o.p }

// Len returns the number of children.
func (o *OneOf) Len() int { return len(o.transforms) }
