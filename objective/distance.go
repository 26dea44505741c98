package objective

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// distanceDistortion scores how well pairwise Euclidean distances of the
// original data are preserved by the projected codes.
//
// Loss:
//
//	L(A) = Σ_{i≠j} w_ij · (D_ij - D̂_ij)²
//
// over ordered pairs, where D is the precomputed original-space distance
// matrix, D̂ is the pairwise distance matrix of Z = g(X·Aᵀ, alpha), and
// w_ij is either the supplied normalized weight or the uniform
// 1/(n·(n-1)). The loss is symmetric in (i,j) and zero when distances are
// perfectly preserved.
type distanceDistortion struct {
	alpha float64
}

// NewDistanceDistortion returns the distance-distortion objective with the
// given ridge steepness.
func NewDistanceDistortion(alpha float64) Objective {
	return &distanceDistortion{alpha: alpha}
}

// Alpha returns the ridge steepness.
func (o *distanceDistortion) Alpha() float64 { return o.alpha }

// LossGrad evaluates the weighted squared distance distortion and its
// gradient with respect to A.
//
// Gradient derivation: each unordered pair {i,j} contributes
// 2·w_ij·(D_ij - D̂_ij)² (both ordered pairs), so
//
//	∂L/∂z_i = Σ_{j≠i} 4·w_ij·(D̂_ij - D_ij)·(z_i - z_j)/D̂_ij,
//
// which is chained through g' at the raw projections and finally through
// the linear map S = X·Aᵀ, giving ∂L/∂A = (∂L/∂S)ᵀ·X.
//
// in.Dist must be the n×n distance matrix of X; in.Weights may be nil.
//
// Complexity: O(n²·k + n·k·d) time, O(n·k) space.
func (o *distanceDistortion) LossGrad(X, A *mat.Dense, in *PairwiseInputs) (float64, *mat.Dense) {
	var (
		n, _ = X.Dims()
		k, d = A.Dims()
	)

	// Fewer than two samples: nothing to distort.
	if n < 2 {
		return 0, mat.NewDense(k, d, nil)
	}

	var (
		s = project(X, A) // raw projections, n×k
		z = mat.DenseCopyOf(s)
	)
	applyRidgeInPlace(z, o.alpha)

	var (
		uniform = 2.0 / float64(n*(n-1)) // both ordered pairs of {i,j}
		loss    float64
		gz      = mat.NewDense(n, k, nil) // ∂L/∂Z
		i, j, c int
		zi, zj  []float64
		dij     float64
		w       float64
		diff    float64
		coef    float64
		delta   float64
	)

	for i = 0; i < n; i++ {
		zi = z.RawRowView(i)
		for j = i + 1; j < n; j++ {
			zj = z.RawRowView(j)
			dij = floats.Distance(zi, zj, 2)

			if in.Weights != nil {
				w = 2 * in.Weights.At(i, j)
			} else {
				w = uniform
			}

			diff = dij - in.Dist.At(i, j)
			loss += w * diff * diff

			// The distance derivative is undefined for coincident codes;
			// such pairs contribute loss but no descent direction.
			if dij < distFloor {
				continue
			}
			coef = 2 * w * diff / dij
			for c = 0; c < k; c++ {
				delta = coef * (zi[c] - zj[c])
				gz.Set(i, c, gz.At(i, c)+delta)
				gz.Set(j, c, gz.At(j, c)-delta)
			}
		}
	}

	// Chain through the ridge: ∂L/∂S = ∂L/∂Z ⊙ g'(S).
	for i = 0; i < n; i++ {
		for c = 0; c < k; c++ {
			gz.Set(i, c, gz.At(i, c)*RidgePrime(s.At(i, c), o.alpha))
		}
	}

	// ∂L/∂A = (∂L/∂S)ᵀ · X, shape k×d.
	grad := mat.NewDense(k, d, nil)
	grad.Mul(gz.T(), X)

	return loss, grad
}

// Reconstruct approximates samples from their codes by applying the
// loadings transposed as a linear decoder: X̂ = g(X·Aᵀ)·A.
//
// This is a fallback, not a trained decoder; it is expected to carry a
// higher reconstruction error than the Reconstruction objective's decode.
func (o *distanceDistortion) Reconstruct(X, A *mat.Dense) *mat.Dense {
	var xhat mat.Dense
	xhat.Mul(Codes(X, A, o.alpha), A)

	return &xhat
}
