package seed

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyInput indicates a nil or zero-sized data matrix.
	ErrEmptyInput = errors.New("seed: input matrix must be non-empty")

	// ErrBadComponents indicates a component count outside [1, n_features].
	ErrBadComponents = errors.New("seed: component count must be in [1, n_features]")

	// ErrFactorization indicates that the SVD failed to converge.
	ErrFactorization = errors.New("seed: singular value decomposition failed")
)

// LinearBaseline returns a deterministic k×d seed loadings matrix whose
// rows are the k leading right singular vectors of the column-centered
// copy of x (the principal directions). Rows are unit-norm by
// construction. If k exceeds min(n, d), the surplus rows are standard
// basis directions e_(r mod d).
//
// The input is never mutated.
func LinearBaseline(x *mat.Dense, k int) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrEmptyInput
	}
	var n, d = x.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyInput
	}
	if k < 1 || k > d {
		return nil, ErrBadComponents
	}

	// Center columns; the SVD of the centered matrix yields principal
	// directions regardless of the caller's own standardization policy.
	var (
		centered = mat.DenseCopyOf(x)
		col      = make([]float64, n)
		mean     float64
		i, j     int
	)
	for j = 0; j < d; j++ {
		mat.Col(col, j, centered)
		mean = stat.Mean(col, nil)
		for i = 0; i < n; i++ {
			centered.Set(i, j, centered.At(i, j)-mean)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return nil, ErrFactorization
	}

	// V is d×min(n,d); its columns are unit-norm principal directions.
	var v mat.Dense
	svd.VTo(&v)

	var (
		_, avail = v.Dims()
		a        = mat.NewDense(k, d, nil)
		r        int
	)
	for r = 0; r < k; r++ {
		if r < avail {
			for j = 0; j < d; j++ {
				a.Set(r, j, v.At(j, r))
			}
			continue
		}
		// Degenerate request (k > rank of the thin SVD): fall back to a
		// standard basis direction, which is unit-norm as required.
		a.Set(r, r%d, 1)
	}

	return a, nil
}
