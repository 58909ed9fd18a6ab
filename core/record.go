// SPDX-License-Identifier: MIT

package core

// Record is the unit of data every operation consumes and returns.
//
// Keypoints is indexed [frame][joint][coordinate]. Invalid and Perturbation
// are indexed [frame][joint]; Invalid[t][v] == true means joint v carries no
// usable position at frame t. Nil masks are permitted on entry and are
// defaulted to all-false by Normalize.
//
// The arrays are owned by the caller. Operations mutate them in place and
// return the same record; callers needing the original untouched must Clone
// first.
type Record struct {
	Keypoints    [][][]float64 // T×V×C
	Invalid      [][]bool      // T×V
	Perturbation [][]bool      // T×V
}

// Frames returns T, the number of frames.
func (r *Record) Frames() int { return len(r.Keypoints) }

// Joints returns V, the number of joints per frame (0 for an empty record).
func (r *Record) Joints() int {
	if len(r.Keypoints) == 0 {
		return 0
	}
	return len(r.Keypoints[0])
}

// Dims returns C, the coordinate dimension (0 for an empty record).
func (r *Record) Dims() int {
	if r.Joints() == 0 {
		return 0
	}
	return len(r.Keypoints[0][0])
}

// Normalize validates the record once at pipeline entry and defaults the
// optional masks.
//
// Checks performed:
//   - Keypoints present (ErrMissingKeypoints),
//   - rectangular T×V×C shape (ErrRaggedKeypoints),
//   - C ∈ {2,3} (ErrBadDims),
//   - supplied masks match T×V exactly (ErrMaskShape).
//
// Nil masks are replaced with all-false T×V arrays. Complexity: O(T·V).
func (r *Record) Normalize() error {
	if r.Keypoints == nil {
		return ErrMissingKeypoints
	}
	t, v, c := r.Frames(), r.Joints(), r.Dims()
	if c != 2 && c != 3 {
		return ErrBadDims
	}
	for _, frame := range r.Keypoints {
		if len(frame) != v {
			return ErrRaggedKeypoints
		}
		for _, joint := range frame {
			if len(joint) != c {
				return ErrRaggedKeypoints
			}
		}
	}

	var err error
	if r.Invalid, err = normalizeMask(r.Invalid, t, v); err != nil {
		return err
	}
	r.Perturbation, err = normalizeMask(r.Perturbation, t, v)
	return err
}

// normalizeMask defaults a nil mask to all-false T×V and rejects any shape
// drift in a supplied one.
func normalizeMask(mask [][]bool, t, v int) ([][]bool, error) {
	if mask == nil {
		mask = make([][]bool, t)
		for i := range mask {
			mask[i] = make([]bool, v)
		}
		return mask, nil
	}
	if len(mask) != t {
		return nil, ErrMaskShape
	}
	for _, row := range mask {
		if len(row) != v {
			return nil, ErrMaskShape
		}
	}
	return mask, nil
}

// Clone returns a deep copy of the record. Complexity: O(T·V·C).
func (r *Record) Clone() *Record {
	out := &Record{}
	if r.Keypoints != nil {
		out.Keypoints = make([][][]float64, len(r.Keypoints))
		for t, frame := range r.Keypoints {
			out.Keypoints[t] = cloneFrame(frame)
		}
	}
	out.Invalid = cloneMask(r.Invalid)
	out.Perturbation = cloneMask(r.Perturbation)
	return out
}

// Gather builds a reduced record holding deep copies of the given frames, in
// the given order. Mutating the result leaves the receiver untouched until
// Scatter writes it back. Indices must be valid; callers validate.
func (r *Record) Gather(ids []int) *Record {
	sub := &Record{
		Keypoints:    make([][][]float64, len(ids)),
		Invalid:      make([][]bool, len(ids)),
		Perturbation: make([][]bool, len(ids)),
	}
	for i, t := range ids {
		sub.Keypoints[i] = cloneFrame(r.Keypoints[t])
		sub.Invalid[i] = cloneRow(r.Invalid[t])
		sub.Perturbation[i] = cloneRow(r.Perturbation[t])
	}
	return sub
}

// Scatter writes the reduced record's frames back into the receiver at the
// same indices used to Gather it. Values are copied; no rows are aliased.
func (r *Record) Scatter(ids []int, sub *Record) {
	for i, t := range ids {
		for v := range sub.Keypoints[i] {
			copy(r.Keypoints[t][v], sub.Keypoints[i][v])
		}
		copy(r.Invalid[t], sub.Invalid[i])
		copy(r.Perturbation[t], sub.Perturbation[i])
	}
}

// ZeroInvalid sets every coordinate of every invalid joint to zero.
func (r *Record) ZeroInvalid() {
	for t, row := range r.Invalid {
		for v, bad := range row {
			if !bad {
				continue
			}
			for c := range r.Keypoints[t][v] {
				r.Keypoints[t][v][c] = 0
			}
		}
	}
}

func cloneFrame(frame [][]float64) [][]float64 {
	out := make([][]float64, len(frame))
	for v, joint := range frame {
		out[v] = append([]float64(nil), joint...)
	}
	return out
}

func cloneRow(row []bool) []bool { return append([]bool(nil), row...) }

func cloneMask(mask [][]bool) [][]bool {
	if mask == nil {
		return nil
	}
	out := make([][]bool, len(mask))
	for i, row := range mask {
		out[i] = cloneRow(row)
	}
	return out
}
