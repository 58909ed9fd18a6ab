// SPDX-License-Identifier: MIT

package perturb

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// Mirror exchanges the coordinate columns of configured opposite-joint pairs
// (left wrist ↔ right wrist, etc.) across the whole sequence, simulating a
// left/right labeling error.
type Mirror struct {
	core.Gate
	pairs [][2]int
}

// NewMirror builds the transform from the list of opposite pairs. Negative
// indices are rejected here; the upper bound is checked per call.
func NewMirror(pairs [][2]int, p float64) (*Mirror, error) {
	for _, pair := range pairs {
		if pair[0] < 0 || pair[1] < 0 {
			return nil, ErrJointOutOfRange
		}
	}
	return &Mirror{Gate: core.Gate{P: p}, pairs: pairs}, nil
}

// Apply implements core.Applier.
func (m *Mirror) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !m.Hit(rng, forceApply) {
		return rec, nil
	}
	v := rec.Joints()
	for _, pair := range m.pairs {
		if pair[0] >= v || pair[1] >= v {
			return nil, ErrJointOutOfRange
		}
	}
	for _, pair := range m.pairs {
		swapColumns(rec, pair[0], pair[1])
	}
	return rec, nil
}
