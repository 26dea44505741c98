// Package optimizer drives one gradient-based local search for projection
// pursuit: from a single initial loadings matrix to a local optimum of the
// supplied objective, using gonum's L-BFGS quasi-Newton method.
//
// The loadings matrix is treated as a flat row-major parameter vector; the
// objective's loss and gradient are re-shaped at the boundary. A search
// that exhausts its iteration budget is NOT an error — the best point
// found so far is returned with Report.Converged == false, and callers
// (the multi-start orchestrator) absorb it as a quality signal in their
// best-of selection.
//
// Errors are reserved for genuinely broken invocations (empty start
// matrix); solver-internal stagnation is always mapped into Report.
//
// Complexity: O(iter · cost(LossGrad)) time; O(k·d) extra space.
package optimizer
