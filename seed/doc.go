// Package seed produces the deterministic starting point for projection
// pursuit: principal-component-style directions obtained from a thin SVD
// of the (internally centered) data matrix.
//
// The seed is purely an initialization heuristic — the optimizer is free
// to move far away from it — but starting from the leading variance
// directions reliably beats random starts on the first restart. Rows of
// the returned matrix are unit-norm by construction (right singular
// vectors); when more components are requested than the SVD can supply
// (k > min(n, d)), the remaining rows are filled with standard basis
// directions so the optimizer still receives a full-rank-ish start.
//
// Errors (sentinel):
//   - ErrEmptyInput    — nil or zero-sized data matrix.
//   - ErrBadComponents — requested component count < 1 or > feature count.
//   - ErrFactorization — the SVD failed to converge (pathological input).
//
// Complexity: O(n·d·min(n,d)) time for the thin SVD, O(d·min(n,d)) space.
package seed
