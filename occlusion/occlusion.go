// SPDX-License-Identifier: MIT

package occlusion

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// Random occludes random joints throughout the sequence: one coin flip per
// joint, and a hit masks that joint invalid in every frame.
type Random struct {
	core.Gate
	chance   float64
	perJoint []float64
}

// NewRandom builds the transform with a single occlusion chance shared by
// all joints. p is the apply probability of the transform itself.
func NewRandom(chance, p float64) *Random {
	return &Random{Gate: core.Gate{P: p}, chance: chance}
}

// NewRandomPerJoint builds the transform with one occlusion chance per
// joint; the list length must match the record's joint count (checked per
// call).
func NewRandomPerJoint(chances []float64, p float64) *Random {
	return &Random{Gate: core.Gate{P: p}, perJoint: chances}
}

// Apply implements core.Applier.
func (o *Random) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !o.Hit(rng, forceApply) {
		return rec, nil
	}
	v := rec.Joints()
	if o.perJoint != nil && len(o.perJoint) != v {
		return nil, ErrChanceLength
	}

	for j := 0; j < v; j++ {
		chance := o.chance
		if o.perJoint != nil {
			chance = o.perJoint[j]
		}
		if rng.Float64() >= chance {
			continue
		}
		for t := range rec.Invalid {
			rec.Invalid[t][j] = true
		}
	}
	return rec, nil
}

// Whole occludes the entire sequence: every joint in every frame is marked
// invalid.
type Whole struct {
	core.Gate
}

// NewWhole builds the transform.
func NewWhole(p float64) *Whole { return &Whole{Gate: core.Gate{P: p}} }

// Apply implements core.Applier.
func (o *Whole) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !o.Hit(rng, forceApply) {
		return rec, nil
	}
	for t := range rec.Invalid {
		for v := range rec.Invalid[t] {
			rec.Invalid[t][v] = true
		}
	}
	return rec, nil
}

// Specific occludes a fixed set of joints throughout the sequence.
type Specific struct {
	core.Gate
	joints []int
}

// NewSpecific builds the transform. Negative indices are rejected here; the
// upper bound is checked against the record per call.
func NewSpecific(joints []int, p float64) (*Specific, error) {
	for _, j := range joints {
		if j < 0 {
			return nil, ErrJointOutOfRange
		}
	}
	return &Specific{Gate: core.Gate{P: p}, joints: joints}, nil
}

// Apply implements core.Applier.
func (o *Specific) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !o.Hit(rng, forceApply) {
		return rec, nil
	}
	v := rec.Joints()
	for _, j := range o.joints {
		if j >= v {
			return nil, ErrJointOutOfRange
		}
	}
	for _, j := range o.joints {
		for t := range rec.Invalid {
			rec.Invalid[t][j] = true
		}
	}
	return rec, nil
}
