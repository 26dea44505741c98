package optimizer

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/pursuit/objective"
)

// ErrEmptyStart indicates that the initial loadings matrix has no entries.
var ErrEmptyStart = errors.New("optimizer: initial loadings matrix must be non-empty")

// functionConvergeWindow is the number of consecutive near-equal function
// values after which the search is declared function-converged.
const functionConvergeWindow = 15

// Config bounds one local search.
type Config struct {
	// MaxIter caps the number of major L-BFGS iterations.
	MaxIter int

	// Tol is the convergence tolerance, applied both to the gradient norm
	// and to the absolute function-value change.
	Tol float64
}

// Report carries solver diagnostics for one local search.
type Report struct {
	// Iterations is the number of major iterations performed.
	Iterations int

	// FuncEvals and GradEvals count objective evaluations.
	FuncEvals int
	GradEvals int

	// Converged is false when the search stopped on its iteration budget
	// or on a solver-internal failure rather than a convergence criterion.
	Converged bool

	// Status is the solver's termination message.
	Status string
}

// Result is the outcome of one local search.
type Result struct {
	// Loadings is the locally optimal k×d matrix.
	Loadings *mat.Dense

	// Loss is the objective value at Loadings.
	Loss float64

	// Report holds the solver diagnostics.
	Report Report
}

// Minimize runs one L-BFGS local search for obj from the initial loadings
// a0 (k×d) over standardized data x (n×d). in carries the objective's
// precomputed pairwise inputs and may be nil (reconstruction objective).
//
// Contracts:
//   - a0 must be non-empty; shapes of x, a0 and in must agree (the caller
//     validates them once, before the multi-start loop).
//   - Non-convergence within cfg.MaxIter is not an error: the best point
//     found is returned with Report.Converged == false.
//
// Complexity: O(cfg.MaxIter · cost(LossGrad)).
func Minimize(obj objective.Objective, x, a0 *mat.Dense, in *objective.PairwiseInputs, cfg Config) (Result, error) {
	var k, d = a0.Dims()
	if k == 0 || d == 0 {
		return Result{}, ErrEmptyStart
	}

	// Flatten the start matrix row-major.
	var (
		x0 = make([]float64, k*d)
		i  int
		j  int
	)
	for i = 0; i < k; i++ {
		for j = 0; j < d; j++ {
			x0[i*d+j] = a0.At(i, j)
		}
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			loss, _ := obj.LossGrad(x, mat.NewDense(k, d, p), in)

			return loss
		},
		Grad: func(grad, p []float64) {
			_, g := obj.LossGrad(x, mat.NewDense(k, d, p), in)
			copy(grad, g.RawMatrix().Data)
		},
	}

	settings := &optimize.Settings{
		MajorIterations:   cfg.MaxIter,
		GradientThreshold: cfg.Tol,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.Tol,
			Iterations: functionConvergeWindow,
		},
	}

	res, err := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if res == nil {
		// The solver failed before producing a point; score the start so
		// the orchestrator can still rank this run.
		loss, _ := obj.LossGrad(x, a0, in)

		return Result{
			Loadings: mat.DenseCopyOf(a0),
			Loss:     loss,
			Report:   Report{Converged: false, Status: err.Error()},
		}, nil
	}

	report := Report{
		Iterations: res.Stats.MajorIterations,
		FuncEvals:  res.Stats.FuncEvaluations,
		GradEvals:  res.Stats.GradEvaluations,
		Converged:  err == nil && terminatedByConvergence(res.Status),
		Status:     res.Status.String(),
	}
	if err != nil {
		report.Status = err.Error()
	}

	return Result{
		Loadings: mat.NewDense(k, d, append([]float64(nil), res.X...)),
		Loss:     res.F,
		Report:   report,
	}, nil
}

// terminatedByConvergence reports whether the status corresponds to an
// actual convergence criterion rather than a budget or failure stop.
func terminatedByConvergence(s optimize.Status) bool {
	switch s {
	case optimize.GradientThreshold, optimize.FunctionConvergence, optimize.FunctionThreshold, optimize.StepConvergence, optimize.Success:
		return true
	default:
		return false
	}
}
