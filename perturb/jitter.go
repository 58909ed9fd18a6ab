// SPDX-License-Identifier: MIT

package perturb

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// RandomJoint configures Jitter to redraw its target joint on every frame.
const RandomJoint = -1

// Jitter displaces one joint per frame in a random direction with a random
// magnitude, keeping the result inside the skeleton's axis-aligned bounding
// box. 2D coordinates only.
//
// The bounding box of a frame spans the currently valid joints of that
// frame; a frame with no valid joint gets the origin box. A displaced point
// falling outside the box is pulled back onto the boundary along the same
// direction vector, so the chosen displacement direction is preserved.
type Jitter struct {
	core.Gate
	minAngle, maxAngle float64 // radians
	minDist, maxDist   float64
	joint              int
}

// NewJitter builds the transform. angles is the angular range in degrees,
// distance the magnitude range; both are inclusive and must be ordered.
// joint is the index of the joint to displace, or RandomJoint to redraw it
// uniformly per frame.
func NewJitter(angles, distance [2]float64, joint int, p float64) (*Jitter, error) {
	if angles[0] > angles[1] {
		return nil, ErrAngleRange
	}
	if distance[0] > distance[1] || distance[0] < 0 {
		return nil, ErrDistanceRange
	}
	if joint < RandomJoint {
		return nil, ErrJointIndex
	}
	return &Jitter{
		Gate:     core.Gate{P: p},
		minAngle: angles[0] * math.Pi / 180,
		maxAngle: angles[1] * math.Pi / 180,
		minDist:  distance[0],
		maxDist:  distance[1],
		joint:    joint,
	}, nil
}

// Apply implements core.Applier. Complexity: O(T·V).
func (j *Jitter) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if !j.Hit(rng, forceApply) {
		return rec, nil
	}
	if rec.Dims() != 2 {
		return nil, ErrRequires2D
	}
	v := rec.Joints()
	if j.joint >= v {
		return nil, ErrJointOutOfRange
	}

	for t := range rec.Keypoints {
		lo, hi := frameBox(rec, t)

		target := j.joint
		if target == RandomJoint {
			target = rng.Intn(v)
		}
		if rec.Invalid[t][target] {
			continue
		}

		angle := j.minAngle + rng.Float64()*(j.maxAngle-j.minAngle)
		dir := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}
		dist := j.minDist + rng.Float64()*(j.maxDist-j.minDist)

		point := mgl64.Vec2{rec.Keypoints[t][target][0], rec.Keypoints[t][target][1]}
		point = clipToBox(point.Add(dir.Mul(dist)), lo, hi, dir)
		rec.Keypoints[t][target][0] = point.X()
		rec.Keypoints[t][target][1] = point.Y()
		rec.Perturbation[t][target] = true
	}
	return rec, nil
}

// frameBox computes the axis-aligned bounding box over the frame's valid
// joints. No valid joints ⇒ the origin box.
func frameBox(rec *core.Record, t int) (lo, hi mgl64.Vec2) {
	lo = mgl64.Vec2{math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec2{math.Inf(-1), math.Inf(-1)}
	any := false
	for v, joint := range rec.Keypoints[t] {
		if rec.Invalid[t][v] {
			continue
		}
		any = true
		lo = mgl64.Vec2{math.Min(lo.X(), joint[0]), math.Min(lo.Y(), joint[1])}
		hi = mgl64.Vec2{math.Max(hi.X(), joint[0]), math.Max(hi.Y(), joint[1])}
	}
	if !any {
		return mgl64.Vec2{}, mgl64.Vec2{}
	}
	return lo, hi
}

// clipToBox pulls a displaced point back onto the bounding box along its
// displacement direction. Per axis the overshoot past either box side is
// divided by the direction component (a zero component constrains nothing);
// the maximum such backward distance over both axes and both sides is then
// subtracted along dir, landing the point on or inside the box.
func clipToBox(point, lo, hi, dir mgl64.Vec2) mgl64.Vec2 {
	inside := point.X() >= lo.X() && point.Y() >= lo.Y() &&
		point.X() <= hi.X() && point.Y() <= hi.Y()
	if inside {
		return point
	}

	back := 0.0
	for axis := 0; axis < 2; axis++ {
		d := dir[axis]
		if d == 0 {
			continue
		}
		if under := point[axis] - lo[axis]; under < 0 {
			back = math.Max(back, under/d)
		}
		if over := point[axis] - hi[axis]; over > 0 {
			back = math.Max(back, over/d)
		}
	}
	return point.Sub(dir.Mul(back))
}
