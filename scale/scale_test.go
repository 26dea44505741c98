package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pursuit/scale"
)

// sample returns a small matrix with distinct column means and spreads.
func sample() *mat.Dense {
	return mat.NewDense(4, 3, []float64{
		1, 10, -2,
		2, 20, -2,
		3, 30, -2,
		4, 40, -2,
	})
}

// TestFit_TransformStandardizes verifies zero mean and unit population
// variance per column after a full standardization.
func TestFit_TransformStandardizes(t *testing.T) {
	s, err := scale.Fit(sample(), true, true)
	require.NoError(t, err, "fitting on a valid matrix must succeed")

	out, err := s.Transform(sample())
	require.NoError(t, err, "transforming compatible data must succeed")

	n, d := out.Dims()
	for j := 0; j < d; j++ {
		var mean, variance float64
		for i := 0; i < n; i++ {
			mean += out.At(i, j)
		}
		mean /= float64(n)
		for i := 0; i < n; i++ {
			dev := out.At(i, j) - mean
			variance += dev * dev
		}
		variance /= float64(n)

		assert.InDelta(t, 0.0, mean, 1e-12, "column %d must be centered", j)
		if j < 2 {
			assert.InDelta(t, 1.0, variance, 1e-12, "column %d must have unit variance", j)
		} else {
			// Constant column: centered to zero, scaled by the guard std of 1.
			assert.InDelta(t, 0.0, variance, 1e-12, "constant column must stay constant")
		}
	}
}

// TestInverse_RoundTrip verifies that Inverse undoes Transform exactly
// for every centering/scaling policy.
func TestInverse_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name           string
		center, scaled bool
	}{
		{"center+scale", true, true},
		{"center only", true, false},
		{"scale only", false, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := scale.Fit(sample(), tc.center, tc.scaled)
			require.NoError(t, err)

			forward, err := s.Transform(sample())
			require.NoError(t, err)
			back, err := s.Inverse(forward)
			require.NoError(t, err)

			assert.True(t, mat.EqualApprox(sample(), back, 1e-12), "inverse must restore the original matrix")
		})
	}
}

// TestFit_EmptyInput verifies the empty-input sentinels.
func TestFit_EmptyInput(t *testing.T) {
	_, err := scale.Fit(nil, true, true)
	assert.ErrorIs(t, err, scale.ErrEmptyInput, "nil matrix must be rejected")

	_, err = scale.Fit(&mat.Dense{}, true, true)
	assert.ErrorIs(t, err, scale.ErrEmptyInput, "zero-sized matrix must be rejected")
}

// TestTransform_DimMismatch verifies the feature-count guard.
func TestTransform_DimMismatch(t *testing.T) {
	s, err := scale.Fit(sample(), true, true)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Features(), "scaler must remember its feature count")

	_, err = s.Transform(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	assert.ErrorIs(t, err, scale.ErrDimMismatch, "a narrower matrix must be rejected")
}
