// SPDX-License-Identifier: MIT

package occlusion

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/skelaug/core"
)

// Interpolate refills occluded joints by piecewise-linear interpolation
// between their valid detections, and marks the refilled frames valid.
//
// Per joint: fewer than two valid frames means nothing to interpolate
// through — the joint is skipped. Only invalid frames lying strictly between
// the joint's first and last valid frame are replaced; the transform never
// extrapolates past either end.
type Interpolate struct {
	core.Gate
}

// NewInterpolate builds the transform.
func NewInterpolate(p float64) *Interpolate {
	return &Interpolate{Gate: core.Gate{P: p}}
}

// Apply implements core.Applier. Complexity: O(T·V·C).
func (o *Interpolate) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !o.Hit(rng, forceApply) {
		return rec, nil
	}

	t, v, c := rec.Frames(), rec.Joints(), rec.Dims()
	xs := make([]float64, 0, t)
	ys := make([][]float64, c)

	for j := 0; j < v; j++ {
		xs = xs[:0]
		for d := 0; d < c; d++ {
			ys[d] = ys[d][:0]
		}
		for f := 0; f < t; f++ {
			if rec.Invalid[f][j] {
				continue
			}
			xs = append(xs, float64(f))
			for d := 0; d < c; d++ {
				ys[d] = append(ys[d], rec.Keypoints[f][j][d])
			}
		}
		// At least two valid samples are needed to interpolate in between.
		if len(xs) < 2 {
			continue
		}

		fits := make([]interp.PiecewiseLinear, c)
		for d := 0; d < c; d++ {
			if err := fits[d].Fit(xs, ys[d]); err != nil {
				return nil, err
			}
		}

		first, last := int(xs[0]), int(xs[len(xs)-1])
		for f := first + 1; f < last; f++ {
			if !rec.Invalid[f][j] {
				continue
			}
			for d := 0; d < c; d++ {
				rec.Keypoints[f][j][d] = fits[d].Predict(float64(f))
			}
			rec.Invalid[f][j] = false
		}
	}
	return rec, nil
}
