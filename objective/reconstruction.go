package objective

import "gonum.org/v1/gonum/mat"

// reconstruction scores how well the original samples can be recovered
// from their codes through a tied linear decoder:
//
//	Z = g(X·Aᵀ, alpha),  X̂ = Z·A,  L(A) = mean((X - X̂)²)
//
// over all samples and features. The decoder reuses the encoder loadings
// (tied weights); encode and decode are therefore always paired
// consistently within one instance.
type reconstruction struct {
	alpha float64
}

// NewReconstruction returns the reconstruction objective with the given
// ridge steepness.
func NewReconstruction(alpha float64) Objective {
	return &reconstruction{alpha: alpha}
}

// Alpha returns the ridge steepness.
func (o *reconstruction) Alpha() float64 { return o.alpha }

// LossGrad evaluates the mean squared reconstruction error and its
// gradient with respect to A.
//
// A enters the loss twice — through the encoder S = X·Aᵀ and through the
// decoder X̂ = Z·A — so the gradient is the sum of both paths:
//
//	∂L/∂A = (∂L/∂S)ᵀ·X + Zᵀ·(∂L/∂X̂)
//
// with ∂L/∂X̂ = 2·(X̂ - X)/(n·d) and ∂L/∂S = (∂L/∂X̂·Aᵀ) ⊙ g'(S).
//
// in is ignored; this objective needs no pairwise precomputations.
//
// Complexity: O(n·k·d) time, O(n·d) space.
func (o *reconstruction) LossGrad(X, A *mat.Dense, in *PairwiseInputs) (float64, *mat.Dense) {
	_ = in // no pairwise inputs for reconstruction

	var (
		n, d = X.Dims()
		k, _ = A.Dims()
		s    = project(X, A) // raw projections, n×k
		z    = mat.DenseCopyOf(s)
	)
	applyRidgeInPlace(z, o.alpha)

	// Residual R = X̂ - X and loss = Σ R² / (n·d).
	var xhat mat.Dense
	xhat.Mul(z, A)

	var (
		resid = mat.NewDense(n, d, nil)
		inv   = 1.0 / float64(n*d)
		loss  float64
		i, j  int
		r     float64
	)
	resid.Sub(&xhat, X)
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			r = resid.At(i, j)
			loss += r * r
		}
	}
	loss *= inv

	// ∂L/∂X̂ = 2·inv·R (reuse resid in place).
	resid.Scale(2*inv, resid)

	// Decoder path: Zᵀ·(∂L/∂X̂), shape k×d.
	var gradDecode mat.Dense
	gradDecode.Mul(z.T(), resid)

	// Encoder path: ∂L/∂S = (∂L/∂X̂·Aᵀ) ⊙ g'(S).
	var gs mat.Dense
	gs.Mul(resid, A.T())

	var c int
	for i = 0; i < n; i++ {
		for c = 0; c < k; c++ {
			gs.Set(i, c, gs.At(i, c)*RidgePrime(s.At(i, c), o.alpha))
		}
	}

	grad := mat.NewDense(k, d, nil)
	grad.Mul(gs.T(), X)
	grad.Add(grad, &gradDecode)

	return loss, grad
}

// Reconstruct decodes the codes back to feature space: X̂ = g(X·Aᵀ)·A.
func (o *reconstruction) Reconstruct(X, A *mat.Dense) *mat.Dense {
	var xhat mat.Dense
	xhat.Mul(Codes(X, A, o.alpha), A)

	return &xhat
}
