// SPDX-License-Identifier: MIT

// Package perturb provides positional transforms: they displace, exchange or
// reflect keypoint coordinates while leaving the validity mask alone.
//
//	Jitter         — per frame, one joint is pushed in a random direction by a
//	                 random distance, clipped back onto the skeleton's
//	                 bounding box along the same direction (2D only)
//	Move           — additive Gaussian noise on every coordinate of the
//	                 selected joints; invalid joints are left untouched
//	Swap           — two distinct random joints exchange their whole columns
//	Mirror         — configured opposite-joint pairs exchange their columns
//	HorizontalFlip — x ← 2·axis − x for every keypoint
//
// All transforms satisfy the core.Applier contract and share the embedded
// probability gate.
package perturb
