// SPDX-License-Identifier: MIT

package selection

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// RandomFrames selects a random window of frames. The window size is
// redrawn uniformly from [minNum, maxNum] on every call; contiguous windows
// additionally draw a start offset, non-contiguous ones sample distinct
// frame indices without replacement.
type RandomFrames struct {
	runner
	minNum, maxNum int
	contiguous     bool
}

// NewRandomFrames builds the random selection. Requires 0 ≤ minNum ≤ maxNum.
func NewRandomFrames(transforms []core.Applier, p float64, minNum, maxNum int, contiguous bool) (*RandomFrames, error) {
	if minNum < 0 || maxNum < minNum {
		return nil, ErrWindowRange
	}
	return &RandomFrames{
		runner:     runner{p: p, transforms: transforms},
		minNum:     minNum,
		maxNum:     maxNum,
		contiguous: contiguous,
	}, nil
}

// Selection draws the window for this call. Errors with ErrWindowTooLarge
// when the drawn size exceeds the record's frame count.
func (s *RandomFrames) Selection(rng *rand.Rand, rec *core.Record) ([]int, error) {
	t := rec.Frames()
	size := s.minNum + rng.Intn(s.maxNum-s.minNum+1)
	if size > t {
		return nil, ErrWindowTooLarge
	}

	if s.contiguous {
		start := rng.Intn(t - size + 1)
		ids := make([]int, size)
		for i := range ids {
			ids[i] = start + i
		}
		return ids, nil
	}
	return rng.Perm(t)[:size], nil
}

// Apply implements core.Applier.
func (s *RandomFrames) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if s.skip(rng, forceApply) {
		return rec, nil
	}
	ids, err := s.Selection(rng, rec)
	if err != nil {
		return nil, err
	}
	return s.run(rng, rec, ids)
}
