// Package skelaug is an in-memory toolkit for randomized augmentation of
// skeletal keypoint sequences — occlusion, positional perturbation and
// temporal re-processing, assembled into probabilistic pipelines.
//
// 🚀 What is skelaug?
//
//	A library for diversifying pose-sequence training data. A sequence is a
//	T×V×C array of joint coordinates (time × joint × 2D/3D coordinate) plus a
//	T×V validity mask; skelaug mutates it through composable operations:
//		• Occlusion: mask whole skeletons, specific joints or random joints
//		• Perturbation: Gaussian noise, bounded polar jitter, joint swap/mirror, flips
//		• Repair: gap-bounded linear interpolation of occluded joints
//		• Temporal selection: restrict any sub-pipeline to a frame window
//		• Combinators: sequential, weighted one-of / some-of, either/or
//
// ✨ Why choose skelaug?
//
//   - Deterministic – no global randomness; every draw comes from an
//     explicitly injected *rand.Rand (see core.NewRand / core.DeriveRand)
//   - Shape-safe – every operation preserves T, V and C; masks are validated
//     once at pipeline entry
//   - Uniform – transforms, selections and combinators all satisfy the single
//     core.Applier contract and nest arbitrarily
//
// Everything is organized under five subpackages:
//
//	core/      — the Record type, the Applier contract, probability gate, RNG helpers
//	compose/   — pipeline root and probabilistic combinators
//	selection/ — temporal window strategies (fixed, random, border, high-movement)
//	occlusion/ — validity-mask transforms and occlusion interpolation
//	perturb/   — positional transforms (jitter, noise, swap, mirror, flip)
//
// Quick sketch:
//
//	rng := core.NewRand(42)
//	pipe := compose.New([]core.Applier{
//	    occlusion.NewRandom(0.1, 0.5),
//	    perturb.NewHorizontalFlip(960, 0.5),
//	})
//	rec, err := pipe.Apply(rng, &core.Record{Keypoints: kp}, false)
//
// Dive into the package docs for the exact probability and window semantics.
package skelaug
