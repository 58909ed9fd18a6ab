// SPDX-License-Identifier: MIT

package perturb

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/skelaug/core"
)

// Move adds independent Gaussian noise N(0, sigma²) to every coordinate of
// the selected joints. Invalid joints are left untouched, and the
// Perturbation mask records which joints were displaced.
type Move struct {
	core.Gate
	sigma  float64
	joints []int
}

// NewMove builds the transform. joints restricts the noise to the given
// joint indices; nil or empty means all joints. sigma must be non-negative.
func NewMove(sigma float64, joints []int, p float64) (*Move, error) {
	if sigma < 0 {
		return nil, ErrSigmaNegative
	}
	for _, j := range joints {
		if j < 0 {
			return nil, ErrJointOutOfRange
		}
	}
	return &Move{Gate: core.Gate{P: p}, sigma: sigma, joints: joints}, nil
}

// Apply implements core.Applier. Complexity: O(T·V·C).
func (m *Move) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !m.Hit(rng, forceApply) {
		return rec, nil
	}

	v := rec.Joints()
	joints := m.joints
	if len(joints) == 0 {
		joints = make([]int, v)
		for i := range joints {
			joints[i] = i
		}
	} else {
		for _, j := range joints {
			if j >= v {
				return nil, ErrJointOutOfRange
			}
		}
	}

	noise := distuv.Normal{Mu: 0, Sigma: m.sigma, Src: rng}
	for t := range rec.Keypoints {
		for _, j := range joints {
			if rec.Invalid[t][j] {
				continue
			}
			for c := range rec.Keypoints[t][j] {
				rec.Keypoints[t][j][c] += noise.Rand()
			}
			rec.Perturbation[t][j] = true
		}
	}
	return rec, nil
}
