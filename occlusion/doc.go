// SPDX-License-Identifier: MIT

// Package occlusion provides transforms that mark joints invalid — simulating
// lost or hidden detections — and the inverse repair: gap-bounded linear
// interpolation of occluded joints.
//
//	Random      — per-joint coin flip; hit joints are occluded for the whole sequence
//	Whole       — every joint in every frame occluded
//	Specific    — a fixed joint set occluded for the whole sequence
//	Interpolate — refill occluded joints lying strictly between two valid
//	              detections with piecewise-linear interpolation (never
//	              extrapolates past the first or last valid frame)
//
// All transforms satisfy the core.Applier contract and share the embedded
// probability gate.
package occlusion
