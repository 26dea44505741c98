package pursuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pursuit"
)

// TestEvaluate_BlobsDistanceDistortion is the end-to-end scenario for the
// distance-distortion objective: 100 samples, 10 features, 3 separated
// Gaussian blobs projected to 2-D must preserve neighborhoods and keep
// the blobs separated.
func TestEvaluate_BlobsDistanceDistortion(t *testing.T) {
	x, labels := blobs(1, 100, 10, 3, 10)

	pp, err := pursuit.New(
		pursuit.WithNComponents(2),
		pursuit.WithObjective(pursuit.DistanceDistortion),
		pursuit.WithSeed(42),
		pursuit.WithNInit(2),
	)
	require.NoError(t, err)
	require.NoError(t, pp.Fit(x), "fitting the blob data must succeed")

	report, err := pp.Evaluate(x, labels, 5)
	require.NoError(t, err)

	assert.Greater(t, report.Trustworthiness, 0.8, "separated blobs must keep trustworthy neighborhoods")
	require.True(t, report.HasSilhouette(), "labels were supplied, so the silhouette must be defined")
	assert.Greater(t, report.Silhouette, 0.5, "the projected blobs must stay separated")
	assert.GreaterOrEqual(t, report.ReconstructionError, 0.0, "errors are mean squares")
	assert.GreaterOrEqual(t, report.DistanceDistortion, 0.0, "distortion is a mean square")
}

// TestEvaluate_BlobsReconstruction is the end-to-end scenario for the
// reconstruction objective: the optimized 2-D projection must
// reconstruct strictly better than projecting onto the first two raw
// feature columns.
func TestEvaluate_BlobsReconstruction(t *testing.T) {
	x, _ := blobs(1, 100, 10, 3, 10)

	pp, err := pursuit.New(
		pursuit.WithNComponents(2),
		pursuit.WithObjective(pursuit.Reconstruction),
		pursuit.WithSeed(42),
		pursuit.WithNInit(2),
	)
	require.NoError(t, err)
	require.NoError(t, pp.Fit(x))

	got, err := pp.ReconstructionError(x)
	require.NoError(t, err)

	assert.Less(t, got, rawAxisBaselineError(x, 2),
		"the optimized projection must beat a raw two-column projection")
}

// rawAxisBaselineError reconstructs x keeping only its first k raw
// feature columns (all other columns replaced by their means — the best
// constant guess) and returns the mean squared error.
func rawAxisBaselineError(x *mat.Dense, k int) float64 {
	n, d := x.Dims()

	means := make([]float64, d)
	for j := k; j < d; j++ {
		for i := 0; i < n; i++ {
			means[j] += x.At(i, j)
		}
		means[j] /= float64(n)
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		for j := k; j < d; j++ {
			diff := x.At(i, j) - means[j]
			sum += diff * diff
		}
	}

	return sum / float64(n*d)
}

// TestSilhouette_SingletonLabelIsNaN verifies the degenerate-label
// policy: a warning and NaN, not an error.
func TestSilhouette_SingletonLabelIsNaN(t *testing.T) {
	x, _ := blobs(11, 21, 4, 3, 8)

	pp, err := pursuit.New(pursuit.WithSeed(3), pursuit.WithNInit(1), pursuit.WithMaxIter(80))
	require.NoError(t, err)
	require.NoError(t, pp.Fit(x))

	labels := make([]int, 21)
	labels[20] = 99 // one singleton class

	got, err := pp.Silhouette(x, labels)
	require.NoError(t, err, "a singleton class is a warning, not an error")
	assert.True(t, got != got, "the silhouette must be NaN when undefined")

	report, err := pp.Evaluate(x, labels, 3)
	require.NoError(t, err)
	assert.False(t, report.HasSilhouette(), "the report must flag the undefined silhouette")
}

// TestEvaluate_LabelLengthMismatch verifies the label guard.
func TestEvaluate_LabelLengthMismatch(t *testing.T) {
	x, _ := blobs(17, 20, 4, 2, 8)

	pp, err := pursuit.New(pursuit.WithSeed(6), pursuit.WithNInit(0), pursuit.WithMaxIter(60))
	require.NoError(t, err)
	require.NoError(t, pp.Fit(x))

	_, err = pp.Silhouette(x, []int{0, 1})
	assert.ErrorIs(t, err, pursuit.ErrBadLabels, "short label slices must be rejected")
}

// TestDistanceDistortion_LowOnNearIsometricData verifies the summary is
// finite and non-negative on fitted data.
func TestDistanceDistortion_LowOnNearIsometricData(t *testing.T) {
	x, _ := blobs(23, 30, 5, 3, 8)

	pp, err := pursuit.New(pursuit.WithSeed(10), pursuit.WithNInit(1), pursuit.WithMaxIter(120))
	require.NoError(t, err)
	require.NoError(t, pp.Fit(x))

	got, err := pp.DistanceDistortion(x)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got, 0.0, "distortion is a mean of squares")
	assert.False(t, got != got, "distortion must be finite")
}
