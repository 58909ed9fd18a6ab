// SPDX-License-Identifier: MIT

package compose

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// Sequential runs all of its children in order, gated by a single draw:
// below p, every child runs unconditionally (no forceApply); otherwise the
// record passes through unchanged.
//
// Sequential is not a replacement for Compose — it nests inside one, the
// same way OneOf or OneOrOther do, to make a whole block probabilistic.
type Sequential struct {
	p          float64
	transforms []core.Applier
}

// NewSequential builds the gated sub-pipeline.
func NewSequential(transforms []core.Applier, p float64) *Sequential {
	return &Sequential{p: p, transforms: transforms}
}

// Apply implements core.Applier. The gate draws on every call; children are
// applied unforced so each keeps its own probability.
func (s *Sequential) Apply(rng *rand.Rand, rec *core.Record, _ bool) (*core.Record, error) {
	if rng.Float64() >= s.p {
		return rec, nil
	}
	var err error
	for _, t := range s.transforms {
		if rec, err = t.Apply(rng, rec, false); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Probability implements core.Applier.
func (s *Sequential) Probability() float64 { return s.p }

// Len returns the number of children.
func (s *Sequential) Len() int { return len(s.transforms) }

// NoOp is the identity operation: it never touches the record. Its
// probability still matters as a weight, making it a natural "do nothing"
// arm inside OneOf or SomeOf.
type NoOp struct {
	p float64
}

// NewNoOp builds the identity operation with the given weight.
func NewNoOp(p float64) *NoOp { return &NoOp{p: p} }

// Apply implements core.Applier; the record is returned untouched.
func (n *NoOp) Apply(_ *rand.Rand, rec *core.Record, _ bool) (*core.Record, error) {
	return rec, nil
}

// Probability implements core.Applier.
func (n *NoOp) Probability() float64 { return n.p }
