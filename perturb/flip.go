// SPDX-License-Identifier: MIT

package perturb

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// HorizontalFlip reflects every keypoint about the vertical line x = axis:
// x ← 2·axis − x. Pair it with Mirror to keep left/right joint labels
// consistent after the reflection.
type HorizontalFlip struct {
	core.Gate
	axis float64
}

// NewHorizontalFlip builds the transform. axis is the x position of the
// line to flip around (typically half the image width).
func NewHorizontalFlip(axis, p float64) *HorizontalFlip {
	return &HorizontalFlip{Gate: core.Gate{P: p}, axis: axis}
}

// Apply implements core.Applier.
func (h *HorizontalFlip) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !h.Hit(rng, forceApply) {
		return rec, nil
	}
	for t := range rec.Keypoints {
		for v := range rec.Keypoints[t] {
			rec.Keypoints[t][v][0] = 2*h.axis - rec.Keypoints[t][v][0]
		}
	}
	return rec, nil
}
