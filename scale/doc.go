// Package scale provides column-wise standardization of sample matrices:
// centering to zero mean and/or scaling to unit variance, plus the exact
// inverse transform.
//
// A Scaler is fitted once on training data and then applied to any matrix
// with the same feature count. Columns with zero variance are scaled by 1
// so that constant features pass through unchanged instead of producing
// NaN. The standard deviation is the population one (divisor n), matching
// the usual standardization convention for preprocessing.
//
// Errors (sentinel):
//   - ErrEmptyInput   — nil or zero-sized input matrix.
//   - ErrDimMismatch  — feature count differs from the fitted one.
//
// Complexity: Fit, Transform and Inverse are all O(n·d) time, O(n·d) space
// for the returned copy; the input matrices are never mutated.
package scale
