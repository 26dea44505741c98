package objective

import "gonum.org/v1/gonum/mat"

// weightShift is the additive constant applied to distances before
// inversion when building inverse-distance weights. It keeps the weight
// of coincident points finite.
const weightShift = 0.1

// distFloor is the smallest projected pairwise distance that still
// contributes to the gradient. Below it, the distance derivative
// (z_i - z_j)/‖z_i - z_j‖ is numerically undefined and the pair is
// skipped in the gradient (its loss term is still counted).
const distFloor = 1e-12

// Objective scores a candidate loadings matrix A against standardized
// data X. Implementations are immutable configuration; the data-dependent
// precomputations live in PairwiseInputs and are supplied per call.
type Objective interface {
	// LossGrad evaluates the scalar loss and its gradient with respect to A.
	// The returned gradient has the same k×d shape as A. in may be nil for
	// objectives that need no pairwise precomputations.
	LossGrad(X, A *mat.Dense, in *PairwiseInputs) (float64, *mat.Dense)

	// Reconstruct maps X through encode and decode back to the
	// (standardized) feature space.
	Reconstruct(X, A *mat.Dense) *mat.Dense

	// Alpha returns the ridge steepness this objective was built with.
	Alpha() float64
}

// PairwiseInputs carries the per-fit precomputed quantities consumed by
// the DistanceDistortion objective. Both matrices are n×n, symmetric,
// with zero diagonal, and must not be mutated while a fit is running.
//
// Weights == nil means uniform weighting over all off-diagonal ordered
// pairs, i.e. an unweighted mean.
type PairwiseInputs struct {
	// Dist holds original-space pairwise Euclidean distances.
	Dist *mat.Dense

	// Weights holds normalized inverse-distance weights, or nil.
	Weights *mat.Dense
}

// WeightsFromDistances builds the normalized inverse-distance weight
// matrix W from a pairwise distance matrix D:
//
//	W_ij = 1/(D_ij + 0.1), W_ii = 0, then W is scaled to sum to one.
//
// The additive constant avoids division by zero for coincident points.
// The input is not modified.
//
// Complexity: O(n²) time, O(n²) space.
func WeightsFromDistances(dist *mat.Dense) *mat.Dense {
	var (
		n, _ = dist.Dims()
		w    = mat.NewDense(n, n, nil)
		sum  float64
		i    int
		j    int
		v    float64
	)

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // self-distances carry no weight
			}
			v = 1.0 / (dist.At(i, j) + weightShift)
			w.Set(i, j, v)
			sum += v
		}
	}

	if sum > 0 {
		w.Scale(1.0/sum, w)
	}

	return w
}
