// SPDX-License-Identifier: MIT

package selection

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// RandomWithBorder selects a random contiguous window with a fixed number of
// border frames on each side. The inner window size is drawn ONCE at
// construction, so the total window size (inner + 2·border) is constant for
// the lifetime of the instance; only the window's start offset is redrawn
// per call. This keeps the inner sub-pipeline's frame geometry stable.
//
// The child pipeline is assembled at construction as
//
//	[Frames(innerTransforms, interior offsets), outerTransforms...]
//
// so innerTransforms see only the interior of the window while
// outerTransforms run afterwards on the whole window, border included.
type RandomWithBorder struct {
	runner
	size      int
	borderNum int
}

// NewRandomWithBorder builds the selection and draws the inner window size
// from rng. Requires 0 ≤ minNum ≤ maxNum and borderNum ≥ 0.
func NewRandomWithBorder(rng *rand.Rand, innerTransforms, outerTransforms []core.Applier, p float64, minNum, maxNum, borderNum int) (*RandomWithBorder, error) {
	if minNum < 0 || maxNum < minNum {
		return nil, ErrWindowRange
	}
	if borderNum < 0 {
		return nil, ErrBorderNegative
	}

	innerSize := minNum + rng.Intn(maxNum-minNum+1)
	interior := make([]int, innerSize)
	for i := range interior {
		interior[i] = borderNum + i
	}
	inner, err := NewFrames(innerTransforms, interior, 1)
	if err != nil {
		return nil, err
	}

	combined := make([]core.Applier, 0, len(outerTransforms)+1)
	combined = append(combined, inner)
	combined = append(combined, outerTransforms...)

	return &RandomWithBorder{
		runner:    runner{p: p, transforms: combined},
		size:      innerSize + 2*borderNum,
		borderNum: borderNum,
	}, nil
}

// Size returns the fixed total window size (inner + 2·border).
func (s *RandomWithBorder) Size() int { return s.size }

// Selection draws the window start for this call. Errors with
// ErrWindowTooLarge when the fixed window no longer fits the record.
func (s *RandomWithBorder) Selection(rng *rand.Rand, rec *core.Record) ([]int, error) {
	t := rec.Frames()
	if s.size > t {
		return nil, ErrWindowTooLarge
	}
	start := rng.Intn(t - s.size + 1)
	ids := make([]int, s.size)
	for i := range ids {
		ids[i] = start + i
	}
	return ids, nil
}

// Apply implements core.Applier.
func (s *RandomWithBorder) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if s.skip(rng, forceApply) {
		return rec, nil
	}
	ids, err := s.Selection(rng, rec)
	if err != nil {
		return nil, err
	}
	return s.run(rng, rec, ids)
}
