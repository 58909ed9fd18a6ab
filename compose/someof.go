// SPDX-License-Identifier: MIT

package compose

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/skelaug/core"
)

// SomeOf applies n of its children, sampled from the categorical
// distribution formed by the children's probabilities. Sampling is with or
// without replacement per configuration; sampled children run in draw order
// with forceApply=true.
type SomeOf struct {
	p          float64
	transforms []core.Applier
	weights    []float64
	n          int
	replace    bool
}

// NewSomeOf builds the combinator. p is the probability that any sampling
// happens at all. n must be ≥ 1, and ≤ len(transforms) when replace is
// false. Weight validation matches NewOneOf.
func NewSomeOf(transforms []core.Applier, n int, replace bool, p float64) (*SomeOf, error) {
	weights, err := childWeights(transforms)
	if err != nil {
		return nil, err
	}
	if n < 1 || (!replace && n > len(transforms)) {
		return nil, ErrSampleSize
	}
	return &SomeOf{p: p, transforms: transforms, weights: weights, n: n, replace: replace}, nil
}

// Apply implements core.Applier. One draw against p (skipped under
// forceApply), then n weighted draws; each picked child runs immediately, so
// later picks see earlier picks' output.
func (s *SomeOf) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !forceApply && rng.Float64() >= s.p {
		return rec, nil
	}

	var err error
	if s.replace {
		cat := distuv.NewCategorical(s.weights, rng)
		for i := 0; i < s.n; i++ {
			idx := int(cat.Rand())
			if rec, err = s.transforms[idx].Apply(rng, rec, true); err != nil {
				return nil, err
			}
		}
		return rec, nil
	}

	// Without replacement: each Take removes the drawn child's weight.
	w := sampleuv.NewWeighted(s.weights, rng)
	for i := 0; i < s.n; i++ {
		idx, ok := w.Take()
		if !ok {
			// Zero-weight children are never drawn; stop once only those remain.
			break
		}
		if rec, err = s.transforms[idx].Apply(rng, rec, true); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Probability implements core.Applier.
func (s *SomeOf) Probability() float64 { return s.p }

// Len returns the number of children.
func (s *SomeOf) Len() int { return len(s.transforms) }
