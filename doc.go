// Package pursuit is an optimization-driven dimensionality reducer:
// instead of a closed-form linear decomposition, it searches directly for
// a small set of projection directions that score best under a chosen
// fidelity criterion.
//
// 🚀 What is pursuit?
//
//	A deterministic, multi-start projection-pursuit library that brings together:
//		• Ridge projections: Z = g(X·Aᵀ) with g(z) = tanh(alpha·z)
//		• Two objectives: distance distortion & reconstruction error
//		• Multi-start L-BFGS: one PCA-style seed + n randomized restarts
//		• Evaluation: trustworthiness, silhouette, distortion, reconstruction
//
// ✨ Why choose pursuit?
//
//   - Deterministic – explicit seeds, per-restart derived RNG streams, no global state
//   - Honest diagnostics – loss curve, winning-run solver report, fit duration
//   - Familiar API – Fit / Transform / Reconstruct / Evaluate on gonum matrices
//   - Extensible – objectives are an interface; supply precomputed pairwise inputs
//
// Under the hood, everything is organized into focused subpackages:
//
//	objective/ — ridge nonlinearity, loss/gradient semantics of both criteria
//	optimizer/ — L-BFGS local-search wrapper (gonum/optimize)
//	scale/     — column standardization and its exact inverse
//	seed/      — deterministic PCA-style seed directions (thin SVD)
//	metric/    — pairwise distances, trustworthiness, silhouette, distortion
//
// Quick start:
//
//	pp, err := pursuit.New(
//	    pursuit.WithNComponents(2),
//	    pursuit.WithObjective(pursuit.DistanceDistortion),
//	    pursuit.WithSeed(42),
//	)
//	if err != nil { ... }
//	if err = pp.Fit(X); err != nil { ... }
//	Z, err := pp.Transform(X)
//
// The fitted model is immutable after Fit returns: Transform, Reconstruct
// and the evaluation helpers only read the stored loadings and scaler.
// Concurrent Fit calls on one instance are not supported; concurrent
// read-only calls after fitting are safe.
package pursuit
