package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skelaug/core"
)

// onesRecord builds a T×V×C record of all-one coordinates with nil masks.
func onesRecord(t, v, c int) *core.Record {
	kp := make([][][]float64, t)
	for i := range kp {
		kp[i] = make([][]float64, v)
		for j := range kp[i] {
			row := make([]float64, c)
			for k := range row {
				row[k] = 1
			}
			kp[i][j] = row
		}
	}
	return &core.Record{Keypoints: kp}
}

// TestNormalize_DefaultsMasks verifies that nil masks become all-false
// arrays of the keypoints' leading shape.
func TestNormalize_DefaultsMasks(t *testing.T) {
	rec := onesRecord(10, 4, 3)
	require.NoError(t, rec.Normalize())

	require.Len(t, rec.Invalid, 10)
	require.Len(t, rec.Perturbation, 10)
	for i := 0; i < 10; i++ {
		assert.Len(t, rec.Invalid[i], 4)
		for _, b := range rec.Invalid[i] {
			assert.False(t, b)
		}
	}
}

// TestNormalize_MissingKeypoints verifies the required-field check.
func TestNormalize_MissingKeypoints(t *testing.T) {
	rec := &core.Record{}
	assert.ErrorIs(t, rec.Normalize(), core.ErrMissingKeypoints)
}

// TestNormalize_MaskShapeMismatch verifies that a supplied mask of the wrong
// shape is rejected rather than silently replaced.
func TestNormalize_MaskShapeMismatch(t *testing.T) {
	rec := onesRecord(10, 4, 3)
	rec.Invalid = make([][]bool, 9) // wrong T
	for i := range rec.Invalid {
		rec.Invalid[i] = make([]bool, 4)
	}
	assert.ErrorIs(t, rec.Normalize(), core.ErrMaskShape)
}

// TestNormalize_Ragged verifies rectangularity enforcement.
func TestNormalize_Ragged(t *testing.T) {
	rec := onesRecord(5, 4, 2)
	rec.Keypoints[3] = rec.Keypoints[3][:2] // drop joints from one frame
	assert.ErrorIs(t, rec.Normalize(), core.ErrRaggedKeypoints)
}

// TestNormalize_BadDims verifies that C outside {2,3} is rejected.
func TestNormalize_BadDims(t *testing.T) {
	rec := onesRecord(5, 4, 4)
	assert.ErrorIs(t, rec.Normalize(), core.ErrBadDims)
}

// TestGatherScatter verifies the extract-copy / write-back discipline:
// mutating the gathered record must not touch the original until Scatter.
func TestGatherScatter(t *testing.T) {
	rec := onesRecord(10, 2, 2)
	require.NoError(t, rec.Normalize())

	ids := []int{3, 7}
	sub := rec.Gather(ids)
	sub.Keypoints[0][0][0] = 42
	sub.Invalid[1][1] = true

	// Original untouched before scatter.
	assert.Equal(t, 1.0, rec.Keypoints[3][0][0])
	assert.False(t, rec.Invalid[7][1])

	rec.Scatter(ids, sub)
	assert.Equal(t, 42.0, rec.Keypoints[3][0][0])
	assert.True(t, rec.Invalid[7][1])
	// Neighbouring frames stay clean.
	assert.Equal(t, 1.0, rec.Keypoints[4][0][0])
	assert.False(t, rec.Invalid[6][1])
}

// TestZeroInvalid verifies that exactly the invalid joints are zeroed.
func TestZeroInvalid(t *testing.T) {
	rec := onesRecord(4, 3, 3)
	require.NoError(t, rec.Normalize())
	rec.Invalid[1][2] = true
	rec.Invalid[3][0] = true

	rec.ZeroInvalid()

	assert.Equal(t, []float64{0, 0, 0}, rec.Keypoints[1][2])
	assert.Equal(t, []float64{0, 0, 0}, rec.Keypoints[3][0])
	assert.Equal(t, []float64{1, 1, 1}, rec.Keypoints[1][1])
	assert.Equal(t, []float64{1, 1, 1}, rec.Keypoints[0][0])
}

// TestClone verifies deep-copy semantics.
func TestClone(t *testing.T) {
	rec := onesRecord(3, 2, 2)
	require.NoError(t, rec.Normalize())

	cp := rec.Clone()
	cp.Keypoints[0][0][0] = 9
	cp.Invalid[2][1] = true

	assert.Equal(t, 1.0, rec.Keypoints[0][0][0])
	assert.False(t, rec.Invalid[2][1])
}
