package scale

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyInput indicates a nil or zero-sized input matrix.
	ErrEmptyInput = errors.New("scale: input matrix must be non-empty")

	// ErrDimMismatch indicates a feature-count mismatch with the fitted scaler.
	ErrDimMismatch = errors.New("scale: feature count differs from fitted scaler")
)

// Scaler holds fitted per-column statistics and the centering/scaling
// policy it was fitted with. The zero value is not usable; obtain one
// from Fit.
type Scaler struct {
	center bool
	scale  bool
	mean   []float64
	std    []float64
}

// Fit computes per-column mean and population standard deviation of x
// and returns a Scaler applying the requested policy. Zero-variance
// columns get std 1 so Transform never divides by zero.
func Fit(x *mat.Dense, center, scale bool) (*Scaler, error) {
	if x == nil {
		return nil, ErrEmptyInput
	}
	var n, d = x.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyInput
	}

	var (
		s = &Scaler{
			center: center,
			scale:  scale,
			mean:   make([]float64, d),
			std:    make([]float64, d),
		}
		col = make([]float64, n)
		j   int
		i   int
		dev float64
		sum float64
	)

	for j = 0; j < d; j++ {
		mat.Col(col, j, x)
		s.mean[j] = stat.Mean(col, nil)

		// Population variance (divisor n).
		sum = 0
		for i = 0; i < n; i++ {
			dev = col[i] - s.mean[j]
			sum += dev * dev
		}
		s.std[j] = math.Sqrt(sum / float64(n))
		if s.std[j] == 0 {
			s.std[j] = 1 // constant column passes through unchanged
		}
	}

	return s, nil
}

// Features returns the number of columns the scaler was fitted on.
func (s *Scaler) Features() int { return len(s.mean) }

// Transform returns a standardized copy of x according to the fitted
// policy: (x - mean)/std with each half applied only when requested.
func (s *Scaler) Transform(x *mat.Dense) (*mat.Dense, error) {
	var n, d, err = s.check(x)
	if err != nil {
		return nil, err
	}

	var (
		out  = mat.NewDense(n, d, nil)
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			v = x.At(i, j)
			if s.center {
				v -= s.mean[j]
			}
			if s.scale {
				v /= s.std[j]
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// Inverse maps standardized values back to the original feature space.
// It is the exact inverse of Transform for the fitted policy.
func (s *Scaler) Inverse(x *mat.Dense) (*mat.Dense, error) {
	var n, d, err = s.check(x)
	if err != nil {
		return nil, err
	}

	var (
		out  = mat.NewDense(n, d, nil)
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			v = x.At(i, j)
			if s.scale {
				v *= s.std[j]
			}
			if s.center {
				v += s.mean[j]
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// check validates shape against the fitted feature count.
func (s *Scaler) check(x *mat.Dense) (n, d int, err error) {
	if x == nil {
		return 0, 0, ErrEmptyInput
	}
	n, d = x.Dims()
	if n == 0 || d == 0 {
		return 0, 0, ErrEmptyInput
	}
	if d != len(s.mean) {
		return 0, 0, ErrDimMismatch
	}

	return n, d, nil
}
