// Package metric provides the numeric evaluation utilities consumed by
// projection pursuit: pairwise Euclidean distances, the distance
// distortion between an original and an embedded point set,
// neighborhood trustworthiness, and the silhouette cluster-separation
// score.
//
// Conventions:
//   - All point sets are row-major: one sample per row.
//   - Pairwise distance matrices are symmetric with a zero diagonal.
//   - Distortion averages the squared entrywise difference over the full
//     n×n distance matrices (diagonal included, where both are zero).
//   - Trustworthiness follows the standard rank-based definition and lies
//     in [0, 1]; 1 means every embedded neighborhood is faithful.
//   - Silhouette lies in [-1, 1]; singleton clusters contribute 0 for
//     their member.
//
// Errors (sentinel):
//   - ErrEmptyInput   — nil or zero-sized point set.
//   - ErrDimMismatch  — the two point sets disagree on sample count.
//   - ErrBadNeighbors — neighbor count outside [1, (n-1)/2] for
//     trustworthiness (the normalization constant must stay positive).
//   - ErrBadLabels    — label slice length mismatch, or fewer than two
//     distinct labels for silhouette.
//
// Complexity: all functions are O(n²·d) or O(n²·log n) time, O(n²) space.
package metric
