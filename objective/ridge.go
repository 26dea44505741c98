package objective

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Ridge is the saturating nonlinearity g(z) = tanh(alpha·z).
//
// For any finite z the result lies in (-1, 1); large |alpha·z| saturates
// toward ±1 without overflow because math.Tanh is used rather than an
// explicit exponential ratio. g(0) = 0 and g is strictly increasing in z
// for alpha > 0.
//
// Complexity: O(1).
func Ridge(z, alpha float64) float64 {
	return math.Tanh(alpha * z)
}

// RidgePrime is the derivative of Ridge with respect to z:
// g'(z) = alpha·(1 - g(z)²). Needed to propagate gradients through the
// projection. Always positive for alpha > 0 and finite z.
//
// Complexity: O(1).
func RidgePrime(z, alpha float64) float64 {
	g := math.Tanh(alpha * z)

	return alpha * (1 - g*g)
}

// Codes computes the projected codes Z = g(X·Aᵀ, alpha), shape n×k.
// X is n×d data, A is k×d loadings.
//
// Complexity: O(n·k·d) time, O(n·k) space.
func Codes(X, A *mat.Dense, alpha float64) *mat.Dense {
	s := project(X, A)
	applyRidgeInPlace(s, alpha)

	return s
}

// project computes the raw (pre-nonlinearity) projections S = X·Aᵀ.
func project(X, A *mat.Dense) *mat.Dense {
	var s mat.Dense
	s.Mul(X, A.T())

	return &s
}

// applyRidgeInPlace overwrites every entry of s with Ridge(entry, alpha).
func applyRidgeInPlace(s *mat.Dense, alpha float64) {
	var (
		r, c = s.Dims()
		i    int
		j    int
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			s.Set(i, j, Ridge(s.At(i, j), alpha))
		}
	}
}
