// SPDX-License-Identifier: MIT

package selection

import (
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/skelaug/core"
)

// HighMovement selects the frames with the highest mean keypoint movement,
// where movement is the Euclidean distance a joint travels between two
// consecutive frames. The window size is drawn ONCE at construction; the
// window itself is recomputed from the data on every call.
//
// Scoring: for each frame gap f ∈ [0, T−1), average over the (optionally
// restricted) joint set the distance ‖kp[f+1,v] − kp[f,v]‖₂, zeroing any
// term whose endpoint frames mark the joint invalid.
//
// Contiguous mode slides the fixed-size window over the gap scores and keeps
// the strictly greatest sum — ties keep the earliest window. Non-contiguous
// mode takes the `size` highest-scoring gap indices (stable ascending sort,
// top tail), with no contiguity guarantee.
type HighMovement struct {
	runner
	size       int
	part       []int
	contiguous bool
}

// NewHighMovement builds the selection and draws the window size from rng.
// part restricts movement scoring to the given joint indices; nil means all
// joints. Requires 0 ≤ minNum ≤ maxNum.
func NewHighMovement(rng *rand.Rand, transforms []core.Applier, p float64, minNum, maxNum int, part []int, contiguous bool) (*HighMovement, error) {
	if minNum < 0 || maxNum < minNum {
		return nil, ErrWindowRange
	}
	for _, v := range part {
		if v < 0 {
			return nil, ErrJointOutOfRange
		}
	}
	return &HighMovement{
		runner:     runner{p: p, transforms: transforms},
		size:       minNum + rng.Intn(maxNum-minNum+1),
		part:       part,
		contiguous: contiguous,
	}, nil
}

// Size returns the fixed window size.
func (s *HighMovement) Size() int { return s.size }

// Selection scores the record's frame gaps and returns the chosen window.
//
// Complexity: O(T·V·C) scoring plus O(T·size) contiguous scan or
// O(T log T) sort.
func (s *HighMovement) Selection(_ *rand.Rand, rec *core.Record) ([]int, error) {
	t := rec.Frames()
	if s.size > t {
		return nil, ErrWindowTooLarge
	}

	scores, err := s.gapScores(rec)
	if err != nil {
		return nil, err
	}

	if s.contiguous {
		return s.bestWindow(scores), nil
	}
	return s.topGaps(scores), nil
}

// Apply implements core.Applier.
func (s *HighMovement) Apply(rng *rand.Rand, rec *core.Record, forceApply bool) (*core.Record, error) {
	if s.skip(rng, forceApply) {
		return rec, nil
	}
	ids, err := s.Selection(rng, rec)
	if err != nil {
		return nil, err
	}
	return s.run(rng, rec, ids)
}

// gapScores computes one mean-movement score per frame-to-frame gap
// (length T−1). Terms with an invalid endpoint contribute zero but still
// count toward the mean's denominator.
func (s *HighMovement) gapScores(rec *core.Record) ([]float64, error) {
	// An empty part list means all joints.
	joints := s.part
	if len(joints) == 0 {
		joints = make([]int, rec.Joints())
		for v := range joints {
			joints[v] = v
		}
	} else {
		for _, v := range joints {
			if v >= rec.Joints() {
				return nil, ErrJointOutOfRange
			}
		}
	}

	scores := make([]float64, rec.Frames()-1)
	for f := range scores {
		sum := 0.0
		for _, v := range joints {
			if rec.Invalid[f][v] || rec.Invalid[f+1][v] {
				continue
			}
			sum += floats.Distance(rec.Keypoints[f][v], rec.Keypoints[f+1][v], 2)
		}
		scores[f] = sum / float64(len(joints))
	}
	return scores, nil
}

// bestWindow scans start offsets for the strictly greatest windowed score
// sum. The strict > against a running maximum seeded at offset 0 makes the
// earliest window win ties; an all-zero score vector selects offset 0.
func (s *HighMovement) bestWindow(scores []float64) []int {
	maxSum := 0.0
	maxIdx := 0
	for i := 0; i < len(scores)+1-s.size; i++ {
		if sum := floats.Sum(scores[i : i+s.size]); sum > maxSum {
			maxSum = sum
			maxIdx = i
		}
	}

	ids := make([]int, s.size)
	for i := range ids {
		ids[i] = maxIdx + i
	}
	return ids
}

// topGaps returns the gap indices with the largest scores: stable ascending
// argsort, top tail. When size exceeds the gap count (size == T), every gap
// index is returned.
func (s *HighMovement) topGaps(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] < scores[order[j]] })

	n := s.size
	if n > len(order) {
		n = len(order)
	}
	return order[len(order)-n:]
}
