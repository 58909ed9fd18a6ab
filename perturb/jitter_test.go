package perturb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skelaug/core"
	"github.com/katalvlaran/skelaug/perturb"
)

// boxRecord builds frames whose joints 1..4 pin the bounding box to
// [0,10]×[0,10] while joint 0 sits at the center as the jitter target.
func boxRecord(t *testing.T, frames int) *core.Record {
	t.Helper()
	kp := make([][][]float64, frames)
	for i := range kp {
		kp[i] = [][]float64{
			{5, 5},
			{0, 0},
			{0, 10},
			{10, 0},
			{10, 10},
		}
	}
	rec := &core.Record{Keypoints: kp}
	require.NoError(t, rec.Normalize())
	return rec
}

// TestJitter_StaysInBox verifies the displaced joint never leaves the
// skeleton's bounding box even when the drawn distance far exceeds it.
func TestJitter_StaysInBox(t *testing.T) {
	jit, err := perturb.NewJitter([2]float64{0, 360}, [2]float64{0, 50}, 0, 1)
	require.NoError(t, err)

	rec, err := jit.Apply(core.NewRand(1998), boxRecord(t, 200), false)
	require.NoError(t, err)

	const eps = 1e-9 // clipping lands on the boundary up to rounding
	for f := 0; f < 200; f++ {
		x, y := rec.Keypoints[f][0][0], rec.Keypoints[f][0][1]
		assert.GreaterOrEqual(t, x, 0.0-eps)
		assert.LessOrEqual(t, x, 10.0+eps)
		assert.GreaterOrEqual(t, y, 0.0-eps)
		assert.LessOrEqual(t, y, 10.0+eps)
		assert.True(t, rec.Perturbation[f][0])

		// Box corners stay put: only the target joint moves.
		assert.Equal(t, []float64{0, 0}, rec.Keypoints[f][1])
		assert.Equal(t, []float64{10, 10}, rec.Keypoints[f][4])
	}
}

// TestJitter_SkipsInvalidTarget verifies invalid target joints are left
// alone.
func TestJitter_SkipsInvalidTarget(t *testing.T) {
	rec := boxRecord(t, 10)
	for f := 0; f < 10; f++ {
		rec.Invalid[f][0] = true
	}

	jit, err := perturb.NewJitter([2]float64{0, 360}, [2]float64{1, 2}, 0, 1)
	require.NoError(t, err)
	rec, err = jit.Apply(core.NewRand(4), rec, false)
	require.NoError(t, err)

	for f := 0; f < 10; f++ {
		assert.Equal(t, []float64{5, 5}, rec.Keypoints[f][0])
		assert.False(t, rec.Perturbation[f][0])
	}
}

// TestJitter_Requires2D verifies the coordinate-dimension check.
func TestJitter_Requires2D(t *testing.T) {
	jit, err := perturb.NewJitter([2]float64{0, 360}, [2]float64{0, 1}, perturb.RandomJoint, 1)
	require.NoError(t, err)

	_, err = jit.Apply(core.NewRand(1), onesRecord(t, 5, 4, 3), false)
	assert.ErrorIs(t, err, perturb.ErrRequires2D)
}

// TestJitter_ConstructorErrors verifies range validation.
func TestJitter_ConstructorErrors(t *testing.T) {
	_, err := perturb.NewJitter([2]float64{90, 0}, [2]float64{0, 1}, 0, 1)
	assert.ErrorIs(t, err, perturb.ErrAngleRange)

	_, err = perturb.NewJitter([2]float64{0, 360}, [2]float64{2, 1}, 0, 1)
	assert.ErrorIs(t, err, perturb.ErrDistanceRange)

	_, err = perturb.NewJitter([2]float64{0, 360}, [2]float64{0, 1}, -2, 1)
	assert.ErrorIs(t, err, perturb.ErrJointIndex)
}

// TestJitter_TargetOutOfRange verifies the fixed joint index is checked
// against the record.
func TestJitter_TargetOutOfRange(t *testing.T) {
	jit, err := perturb.NewJitter([2]float64{0, 360}, [2]float64{0, 1}, 9, 1)
	require.NoError(t, err)

	_, err = jit.Apply(core.NewRand(1), boxRecord(t, 3), false)
	assert.ErrorIs(t, err, perturb.ErrJointOutOfRange)
}
