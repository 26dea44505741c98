// Package objective defines the fidelity criteria that projection pursuit
// optimizes: loss and gradient evaluation for a candidate loadings matrix,
// plus the decode rule used to map codes back to feature space.
//
// Two concrete objectives are provided:
//
//   - DistanceDistortion — scores how well pairwise Euclidean distances of
//     the original (standardized) data survive in the projected codes.
//     Requires precomputed pairwise distances (and optionally a normalized
//     inverse-distance weight matrix), carried in PairwiseInputs.
//
//   - Reconstruction — scores how well the original samples can be recovered
//     from their codes through a tied linear decoder X̂ = g(X·Aᵀ)·A.
//
// Both objectives share the ridge nonlinearity g(z) = tanh(alpha·z) applied
// elementwise to the raw projections. Objective instances are immutable
// configuration (alpha only); data-dependent precomputations are passed
// alongside each call, never stored.
//
// Contracts:
//   - X is n×d standardized data, A is k×d loadings; callers guarantee shapes.
//   - LossGrad is pure: no retained references, no mutation of its inputs.
//   - All functions are safe for concurrent use on distinct inputs.
//
// Complexity:
//   - DistanceDistortion LossGrad: O(n²·k + n·k·d) time, O(n·k) space.
//   - Reconstruction LossGrad:     O(n·k·d) time, O(n·d) space.
package objective
