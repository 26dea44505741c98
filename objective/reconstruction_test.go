package objective_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pursuit/objective"
)

// TestReconstruction_ZeroLossOnExactReconstruction verifies that the loss
// vanishes when the decode reproduces the input exactly. A zero matrix
// encodes and decodes to itself regardless of the loadings.
func TestReconstruction_ZeroLossOnExactReconstruction(t *testing.T) {
	x := mat.NewDense(4, 3, nil) // all zeros
	a := mat.NewDense(2, 3, []float64{
		1, 0, 0,
		0, 1, 0,
	})
	obj := objective.NewReconstruction(1.0)

	loss, grad := obj.LossGrad(x, a, nil)
	assert.Equal(t, 0.0, loss, "exact reconstruction must have zero loss")
	assert.True(t, mat.Equal(grad, mat.NewDense(2, 3, nil)), "gradient must vanish at a perfect fit")
}

// TestReconstruction_GradientMatchesFiniteDifference validates the
// two-path gradient (encoder and decoder both depend on A) against
// central differences.
func TestReconstruction_GradientMatchesFiniteDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	x := randomMatrix(rng, 6, 4)
	a := randomMatrix(rng, 2, 4)
	obj := objective.NewReconstruction(0.8)

	_, analytic := obj.LossGrad(x, a, nil)
	numeric := numericalGrad(obj, x, a, nil)

	k, d := a.Dims()
	for i := 0; i < k; i++ {
		for j := 0; j < d; j++ {
			assert.InDelta(t, numeric.At(i, j), analytic.At(i, j), 1e-5,
				"gradient entry (%d,%d) disagrees with finite difference", i, j)
		}
	}
}

// TestReconstruction_DecodeIsTied verifies that Reconstruct pairs the
// encoder with the tied linear decoder X-hat = Z·A.
func TestReconstruction_DecodeIsTied(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	x := randomMatrix(rng, 5, 3)
	a := randomMatrix(rng, 2, 3)
	obj := objective.NewReconstruction(1.1)

	xhat := obj.Reconstruct(x, a)

	var want mat.Dense
	want.Mul(objective.Codes(x, a, 1.1), a)
	assert.True(t, mat.EqualApprox(xhat, &want, 1e-12), "decode must be the tied Z·A")

	r, c := xhat.Dims()
	assert.Equal(t, 5, r, "reconstruction must keep the sample count")
	assert.Equal(t, 3, c, "reconstruction must return to feature space")
}

// TestReconstruction_LossDecreasesTowardFit sanity-checks that the loss
// at a variance-aligned loadings matrix is lower than at an orthogonal
// one for strongly axis-aligned data.
func TestReconstruction_LossDecreasesTowardFit(t *testing.T) {
	// Data varies only along the first feature.
	x := mat.NewDense(4, 3, []float64{
		0.9, 0, 0,
		-0.9, 0, 0,
		0.5, 0, 0,
		-0.5, 0, 0,
	})
	obj := objective.NewReconstruction(1.0)

	aligned := mat.NewDense(1, 3, []float64{1, 0, 0})
	orthogonal := mat.NewDense(1, 3, []float64{0, 1, 0})

	lossAligned, _ := obj.LossGrad(x, aligned, nil)
	lossOrthogonal, _ := obj.LossGrad(x, orthogonal, nil)
	assert.Less(t, lossAligned, lossOrthogonal,
		"loadings aligned with the data variance must reconstruct better")
}
