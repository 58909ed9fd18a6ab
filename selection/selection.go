// SPDX-License-Identifier: MIT

package selection

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/skelaug/core"
)

// runner holds what every selection strategy shares: the apply probability
// and the child pipeline, plus the extract-copy / run / scatter-back engine.
type runner struct {
	p          float64
	transforms []core.Applier
}

// Probability implements the weight half of core.Applier for all strategies.
func (r *runner) Probability() float64 { return r.p }

// skip performs the selection gate: true means pass the record through
// untouched. At most one uniform draw per invocation; forceApply
// short-circuits it.
func (r *runner) skip(rng *rand.Rand, forceApply bool) bool {
	return !(forceApply || rng.Float64() < r.p)
}

// run executes the engine for an already-validated index list: Gather a deep
// copy of the selected frames, apply the child transforms to the reduced
// record, Scatter the result back at the same indices.
//
// The reduced record is a copy by contract — inner transforms never see the
// original arrays, and the original changes only at scatter time.
//
// Complexity: O(len(ids)·V·C) plus the children's own cost.
func (r *runner) run(rng *rand.Rand, rec *core.Record, ids []int) (*core.Record, error) {
	sub := rec.Gather(ids)

	var err error
	for _, t := range r.transforms {
		if sub, err = t.Apply(rng, sub, false); err != nil {
			return nil, err
		}
	}

	rec.Scatter(ids, sub)
	return rec, nil
}
