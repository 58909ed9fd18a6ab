// SPDX-License-Identifier: MIT

package compose

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSetInvalidToZero controls whether Compose zeroes the coordinates
	// of invalid joints after all children have run.
	DefaultSetInvalidToZero = true
)

// Option mutates Compose configuration. Safe to apply repeatedly.
type Option func(*Compose)

// WithSetInvalidToZero overrides the final invalid-to-zero pass.
// Pass false to keep the (stale) coordinates of invalid joints.
func WithSetInvalidToZero(enabled bool) Option {
	return func(c *Compose) { c.setInvalidToZero = enabled }
}

// Compose is the pipeline root.
//
// Apply validates and normalizes the record (keypoints required, nil masks
// defaulted, shapes checked), runs every child in list order — each child
// receiving the previous child's output — and finally zeroes the coordinates
// of every invalid joint unless disabled via WithSetInvalidToZero(false).
//
// Compose itself never gates on a probability: its children always run.
// Wrap children in Sequential when the whole block should be probabilistic.
type Compose struct {
	transforms       []core.Applier
	setInvalidToZero bool
}

// New builds the pipeline root over the given children.
func New(transforms []core.Applier, opts ...Option) *Compose {
	c := &Compose{
		transforms:       transforms,
		setInvalidToZero: DefaultSetInvalidToZero,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Apply implements core.Applier. forceApply is accepted for contract
// uniformity and ignored: the root always runs.
func (c *Compose) Apply(rng *rand.Rand, rec *core.Record, _ bool) (*core.Record, error) {
	if err := rec.Normalize(); err != nil {
		return nil, err
	}

	var err error
	for _, t := range c.transforms {
		if rec, err = t.Apply(rng, rec, false); err != nil {
			return nil, err
		}
	}

	if c.setInvalidToZero {
		rec.ZeroInvalid()
	}
	return rec, nil
}

// Probability implements core.Applier; the root always applies.
func (c *Compose) Probability() float64 { return 1 }

// Len returns the number of children.
func (c *Compose) Len() int { return len(c.transforms) }
