package pursuit_test

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// blobs generates n samples in d dimensions drawn from `clusters`
// well-separated Gaussian blobs, returning the data and the true labels.
// Centers are placed deterministically far apart relative to the unit
// noise, and the stream is fully seeded so every test run sees the same
// data.
func blobs(seedVal int64, n, d, clusters int, spread float64) (*mat.Dense, []int) {
	rng := rand.New(rand.NewSource(seedVal))

	// One fixed center per cluster, offset in every dimension so no pair
	// of raw feature columns separates the blobs on its own.
	centers := make([][]float64, clusters)
	for c := range centers {
		centers[c] = make([]float64, d)
		for j := 0; j < d; j++ {
			centers[c][j] = spread * (rng.Float64()*2 - 1)
		}
	}

	x := mat.NewDense(n, d, nil)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		c := i % clusters
		labels[i] = c
		for j := 0; j < d; j++ {
			x.Set(i, j, centers[c][j]+rng.NormFloat64())
		}
	}

	return x, labels
}
