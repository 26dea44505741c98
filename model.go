package pursuit

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pursuit/objective"
	"github.com/katalvlaran/pursuit/optimizer"
	"github.com/katalvlaran/pursuit/scale"
)

// ProjectionPursuit is the fitted-model facade: it owns the learned
// loadings matrix A (k×d), the fitted scaler, and the diagnostics of the
// winning local search.
//
// Lifecycle: a model is either fully unfitted or fully fitted — Fit
// commits all state at once and flips the fitted flag last, so a failed
// Fit leaves the model unfitted with no partial state. After a
// successful Fit the stored state is never mutated; Transform,
// Reconstruct and the evaluation methods only read it and are safe for
// concurrent use. Concurrent Fit calls on one instance are not
// supported.
type ProjectionPursuit struct {
	opts Options
	obj  objective.Objective

	fitted    bool
	features  int
	nComp     int
	loadings  *mat.Dense
	scaler    *scale.Scaler
	bestLoss  float64
	lossCurve []float64
	report    optimizer.Report
	fitTime   time.Duration
}

// New constructs an unfitted model from DefaultOptions plus the given
// overrides. The concrete objective instance is chosen here, once, for
// the lifetime of the model.
//
// Returns ErrBadOption on any invalid configuration value.
func New(opts ...Option) (*ProjectionPursuit, error) {
	var o = DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	var obj objective.Objective
	switch o.Objective {
	case Reconstruction:
		obj = objective.NewReconstruction(o.Alpha)
	default:
		obj = objective.NewDistanceDistortion(o.Alpha)
	}

	return &ProjectionPursuit{opts: o, obj: obj}, nil
}

// Transform projects x into the learned low-dimensional space:
// Z = g(X_scaled·Aᵀ, alpha), shape n×k.
//
// Returns ErrNotFitted before a successful Fit, ErrBadInput on a nil,
// empty, or feature-incompatible matrix.
func (p *ProjectionPursuit) Transform(x *mat.Dense) (*mat.Dense, error) {
	var xs, err = p.prepared(x)
	if err != nil {
		return nil, err
	}

	return objective.Codes(xs, p.loadings, p.obj.Alpha()), nil
}

// FitTransform fits the model on x and returns its projection, exactly
// equivalent to Fit followed by Transform.
func (p *ProjectionPursuit) FitTransform(x *mat.Dense) (*mat.Dense, error) {
	if err := p.Fit(x); err != nil {
		return nil, err
	}

	return p.Transform(x)
}

// Reconstruct maps x through the learned projection and the active
// objective's decode rule back to the original feature space, undoing
// standardization when it was applied at fit time.
func (p *ProjectionPursuit) Reconstruct(x *mat.Dense) (*mat.Dense, error) {
	var xs, err = p.prepared(x)
	if err != nil {
		return nil, err
	}

	var xhat = p.obj.Reconstruct(xs, p.loadings)
	if p.scaler != nil {
		return p.scaler.Inverse(xhat)
	}

	return xhat, nil
}

// Loadings returns a copy of the learned k×d projection matrix.
func (p *ProjectionPursuit) Loadings() (*mat.Dense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}

	return mat.DenseCopyOf(p.loadings), nil
}

// NComponents returns the effective component count, which may be lower
// than requested when it was clamped to the feature count at fit time.
func (p *ProjectionPursuit) NComponents() (int, error) {
	if !p.fitted {
		return 0, ErrNotFitted
	}

	return p.nComp, nil
}

// BestLoss returns the loss of the winning local search.
func (p *ProjectionPursuit) BestLoss() (float64, error) {
	if !p.fitted {
		return 0, ErrNotFitted
	}

	return p.bestLoss, nil
}

// LossCurve returns a copy of the best-so-far losses, one entry per new
// global best found across the seed list. It is non-increasing.
func (p *ProjectionPursuit) LossCurve() ([]float64, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}

	return append([]float64(nil), p.lossCurve...), nil
}

// OptimizerReport returns the solver diagnostics of the winning run.
func (p *ProjectionPursuit) OptimizerReport() (optimizer.Report, error) {
	if !p.fitted {
		return optimizer.Report{}, ErrNotFitted
	}

	return p.report, nil
}

// FitTime returns the wall-clock duration of the last successful Fit.
func (p *ProjectionPursuit) FitTime() (time.Duration, error) {
	if !p.fitted {
		return 0, ErrNotFitted
	}

	return p.fitTime, nil
}

// prepared gates on fitted state, validates x and applies the stored
// scaler when one was fitted.
func (p *ProjectionPursuit) prepared(x *mat.Dense) (*mat.Dense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	var _, d, err = checkInput(x)
	if err != nil {
		return nil, err
	}
	if d != p.features {
		return nil, ErrBadInput
	}
	if p.scaler != nil {
		return p.scaler.Transform(x)
	}

	return x, nil
}

// checkInput validates that x is a usable non-empty 2-D matrix with
// finite entries.
func checkInput(x *mat.Dense) (n, d int, err error) {
	if x == nil {
		return 0, 0, ErrBadInput
	}
	n, d = x.Dims()
	if n == 0 || d == 0 {
		return 0, 0, ErrBadInput
	}
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			v := x.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, ErrBadInput
			}
		}
	}

	return n, d, nil
}
