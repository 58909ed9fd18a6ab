// SPDX-License-Identifier: MIT

package compose

import "github.com/katalvlaran/skelaug/core"

// childWeights reads the children's probabilities and normalizes them to sum
// one, forming the categorical distribution the weighted combinators sample.
// Rejects an empty child list, negative weights, and an all-zero sum at
// construction time — never at call time.
//
// Complexity: O(n).
func childWeights(transforms []core.Applier) ([]float64, error) {
	if len(transforms) == 0 {
		return nil, ErrNoTransforms
	}
	weights := make([]float64, len(transforms))
	sum := 0.0
	for i, t := range transforms {
		w := t.Probability()
		if w < 0 {
			return nil, ErrNegativeWeight
		}
		weights[i] = w
		sum += w
	}
	if sum == 0 {
		return nil, ErrZeroWeightSum
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights, nil
}
