// Package pursuit - the multi-start fitting procedure.
//
// Fit prepares the objective-specific precomputed inputs, runs one local
// search from the deterministic PCA-style seed and one per randomized
// restart, and keeps the strictly best result. Strict improvement is
// required to replace the incumbent, so the deterministic seed wins ties
// over random restarts and earlier restarts win ties over later ones —
// the seed order is normative and any parallel reimplementation would
// have to merge in this order.
package pursuit

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pursuit/metric"
	"github.com/katalvlaran/pursuit/objective"
	"github.com/katalvlaran/pursuit/optimizer"
	"github.com/katalvlaran/pursuit/scale"
	"github.com/katalvlaran/pursuit/seed"
)

// Fit learns the projection matrix for x (n samples × d features).
//
// Stages:
//  1. Validate x; clamp NComponents to d with a logged warning when it
//     exceeds the feature count (non-fatal).
//  2. Standardize when centering or scaling is requested.
//  3. Distance-distortion only: precompute the pairwise distance matrix
//     once, plus the normalized inverse-distance weights when enabled.
//  4. Local search from the deterministic seed, then from NInit
//     randomized unit-row seeds; fold the runs into one best result.
//  5. Commit loadings, best loss, winning diagnostics, loss curve and
//     elapsed time; flip the fitted flag last.
//
// On any error the model stays unfitted with no partial state.
//
// Complexity: O((NInit+1) · MaxIter · cost(LossGrad)) plus O(n²·d) for
// the pairwise precomputation under the distance-distortion objective.
func (p *ProjectionPursuit) Fit(x *mat.Dense) error {
	var start = time.Now()

	var _, d, err = checkInput(x)
	if err != nil {
		return err
	}

	var k = p.opts.NComponents
	if k > d {
		p.opts.Logger.Warn().
			Int("n_components", k).
			Int("n_features", d).
			Msg("pursuit: n_components exceeds feature count; clamping")
		k = d
	}

	// Standardize if requested; otherwise fit on the data as-is.
	var (
		sc *scale.Scaler
		xs *mat.Dense
	)
	if p.opts.Center || p.opts.Scale {
		if sc, err = scale.Fit(x, p.opts.Center, p.opts.Scale); err != nil {
			return err
		}
		if xs, err = sc.Transform(x); err != nil {
			return err
		}
	} else {
		xs = x
	}

	// Objective-specific precomputation, once per fit.
	var in *objective.PairwiseInputs
	if p.opts.Objective == DistanceDistortion {
		var dist = metric.Pairwise(xs)
		var weights *mat.Dense
		if p.opts.WeightByDistance {
			weights = objective.WeightsFromDistances(dist)
		}
		in = &objective.PairwiseInputs{Dist: dist, Weights: weights}
	}

	var cfg = optimizer.Config{MaxIter: p.opts.MaxIter, Tol: p.opts.Tol}

	// Deterministic seed run establishes the incumbent.
	var a0 *mat.Dense
	if a0, err = seed.LinearBaseline(xs, k); err != nil {
		return err
	}

	var best optimizer.Result
	if best, err = optimizer.Minimize(p.obj, xs, a0, in, cfg); err != nil {
		return err
	}
	var curve = []float64{best.Loss}

	p.opts.Logger.Debug().
		Float64("loss", best.Loss).
		Bool("converged", best.Report.Converged).
		Msg("pursuit: deterministic seed optimized")

	// Randomized restarts; strict improvement replaces the incumbent.
	var (
		i   int
		res optimizer.Result
	)
	for i = 0; i < p.opts.NInit; i++ {
		var ar = randomLoadings(restartRNG(p.opts.Seed, i), k, d)
		if res, err = optimizer.Minimize(p.obj, xs, ar, in, cfg); err != nil {
			return err
		}

		p.opts.Logger.Debug().
			Int("restart", i+1).
			Int("restarts", p.opts.NInit).
			Float64("loss", res.Loss).
			Bool("converged", res.Report.Converged).
			Msg("pursuit: random restart optimized")

		if res.Loss < best.Loss {
			best = res
			curve = append(curve, res.Loss)
		}
	}

	p.opts.Logger.Debug().
		Float64("best_loss", best.Loss).
		Str("objective", p.opts.Objective.String()).
		Msg("pursuit: fit complete")

	// Commit the fold result wholesale; fitted flag flips last.
	p.features = d
	p.nComp = k
	p.scaler = sc
	p.loadings = best.Loadings
	p.bestLoss = best.Loss
	p.lossCurve = curve
	p.report = best.Report
	p.fitTime = time.Since(start)
	p.fitted = true

	return nil
}
