// SPDX-License-Identifier: MIT

package perturb

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// Swap exchanges the coordinate columns of two distinct randomly chosen
// joints across the whole sequence. The validity mask is not swapped: the
// detections land on the wrong joints, which is the point.
type Swap struct {
	core.Gate
}

// NewSwap builds the transform.
func NewSwap(p float64) *Swap { return &Swap{Gate: core.Gate{P: p}} }

// Apply implements core.Applier.
func (s *Swap) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !s.Hit(rng, forceApply) {
		return rec, nil
	}
	v := rec.Joints()
	if v < 2 {
		return nil, ErrTooFewJoints
	}

	i1, i2 := rng.Intn(v), rng.Intn(v)
	for i1 == i2 {
		i1, i2 = rng.Intn(v), rng.Intn(v)
	}
	swapColumns(rec, i1, i2)
	return rec, nil
}

// swapColumns exchanges the keypoint columns of joints a and b in place.
func swapColumns(rec *core.Record, a, b int) {
	for t := range rec.Keypoints {
		rec.Keypoints[t][a], rec.Keypoints[t][b] = rec.Keypoints[t][b], rec.Keypoints[t][a]
	}
}
