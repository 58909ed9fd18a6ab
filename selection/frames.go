// SPDX-License-Identifier: MIT

package selection

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// Frames selects a caller-supplied list of frame indices. The child
// transforms run only on those frames.
type Frames struct {
	runner
	frames []int
}

// NewFrames builds the fixed selection. Negative indices are rejected
// immediately; the upper bound depends on the record and is checked per
// call.
func NewFrames(transforms []core.Applier, frames []int, p float64) (*Frames, error) {
	for _, f := range frames {
		if f < 0 {
			return nil, ErrFrameOutOfRange
		}
	}
	return &Frames{runner: runner{p: p, transforms: transforms}, frames: frames}, nil
}

// Selection returns the configured index list after bounds-checking it
// against the record's frame count.
func (s *Frames) Selection(_ *rand.Rand, rec *core.Record) ([]int, error) {
	t := rec.Frames()
	for _, f := range s.frames {
		if f >= t {
			return nil, ErrFrameOutOfRange
		}
	}
	return s.frames, nil
}

// Apply implements core.Applier.
func (s *Frames) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if s.skip(rng, forceApply) {
		return rec, nil
	}
	ids, err := s.Selection(rng, rec)
	if err != nil {
		return nil, err
	}
	return s.run(rng, rec, ids)
}
