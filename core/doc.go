// SPDX-License-Identifier: MIT

// Package core defines the data model and the call contract shared by every
// skelaug operation.
//
// The Record is the sole value passed between operations: a T×V×C keypoint
// array (time × joint × coordinate, C ∈ {2,3}) plus two T×V boolean masks.
// Invalid marks joints with no usable position; Perturbation marks joints
// already displaced during the current pipeline run.
//
// Every transform, selection and combinator satisfies the Applier interface:
//
//	Apply(rng *rand.Rand, rec *Record, forceApply bool) (*Record, error)
//	Probability() float64
//
// forceApply bypasses the operation's own probability gate; parents use it
// after they have already committed to running a specific child. Probability
// doubles as the child's weight inside the weighted combinators.
//
// Design rules enforced here:
//   - No global randomness: all draws come from the injected *rand.Rand
//     (golang.org/x/exp/rand, the source type gonum samplers consume).
//     NewRand and DeriveRand provide deterministic seeding and independent
//     substreams.
//   - In-place mutation: operations mutate the record they receive and also
//     return it; callers must treat the returned record as authoritative.
//   - Shape preservation: no operation may change T, V or C. Gather/Scatter
//     implement the extract-copy / write-back discipline used at selection
//     boundaries.
package core
