package pursuit

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pursuit/metric"
)

// ReconstructionError returns the mean squared error between x and its
// reconstruction, measured in the original (unscaled) feature space.
func (p *ProjectionPursuit) ReconstructionError(x *mat.Dense) (float64, error) {
	var xhat, err = p.Reconstruct(x)
	if err != nil {
		return 0, err
	}

	var (
		n, d = x.Dims()
		sum  float64
		diff float64
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			diff = x.At(i, j) - xhat.At(i, j)
			sum += diff * diff
		}
	}

	return sum / float64(n*d), nil
}

// DistanceDistortion returns the mean squared difference between the
// pairwise distances of the standardized input and those of its
// projection.
func (p *ProjectionPursuit) DistanceDistortion(x *mat.Dense) (float64, error) {
	var xs, err = p.prepared(x)
	if err != nil {
		return 0, err
	}

	var z *mat.Dense
	if z, err = p.Transform(x); err != nil {
		return 0, err
	}

	return metric.Distortion(xs, z)
}

// Trustworthiness returns the neighborhood-preservation score of the
// projection of x, in [0, 1], using nNeighbors-sized neighborhoods
// compared against the standardized original space.
func (p *ProjectionPursuit) Trustworthiness(x *mat.Dense, nNeighbors int) (float64, error) {
	var xs, err = p.prepared(x)
	if err != nil {
		return 0, err
	}

	var z *mat.Dense
	if z, err = p.Transform(x); err != nil {
		return 0, err
	}

	return metric.Trustworthiness(xs, z, nNeighbors)
}

// Silhouette returns the cluster-separation score of the projection of x
// under the given labels, in [-1, 1]. When some label class has fewer
// than two members the score is undefined and NaN is returned with a
// logged warning (non-fatal, mirroring the degenerate-input policy).
func (p *ProjectionPursuit) Silhouette(x *mat.Dense, labels []int) (float64, error) {
	var z, err = p.Transform(x)
	if err != nil {
		return 0, err
	}

	var n, _ = z.Dims()
	if len(labels) != n {
		return 0, ErrBadLabels
	}

	if hasSingletonClass(labels) {
		p.opts.Logger.Warn().
			Msg("pursuit: some labels have fewer than 2 samples; silhouette is undefined")

		return math.NaN(), nil
	}

	return metric.Silhouette(z, labels)
}

// Evaluate aggregates the post-fit quality metrics into one report:
// distance distortion, reconstruction error, trustworthiness, and — when
// labels are supplied — the silhouette score (NaN when undefined).
func (p *ProjectionPursuit) Evaluate(x *mat.Dense, labels []int, nNeighbors int) (EvalReport, error) {
	var report = EvalReport{Silhouette: math.NaN()}

	var distortion, err = p.DistanceDistortion(x)
	if err != nil {
		return EvalReport{}, err
	}
	report.DistanceDistortion = distortion

	if report.ReconstructionError, err = p.ReconstructionError(x); err != nil {
		return EvalReport{}, err
	}

	if report.Trustworthiness, err = p.Trustworthiness(x, nNeighbors); err != nil {
		return EvalReport{}, err
	}

	if labels != nil {
		if report.Silhouette, err = p.Silhouette(x, labels); err != nil {
			return EvalReport{}, err
		}
	}

	return report, nil
}

// hasSingletonClass reports whether any label value occurs fewer than
// two times.
func hasSingletonClass(labels []int) bool {
	var counts = make(map[int]int, len(labels))
	for _, lab := range labels {
		counts[lab]++
	}
	for _, c := range counts {
		if c < 2 {
			return true
		}
	}

	return false
}
