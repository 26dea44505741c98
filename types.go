package pursuit

import (
	"errors"
	"math"
)

// Sentinel errors returned by the pursuit facade.
var (
	// ErrNotFitted indicates that Transform, Reconstruct or an evaluation
	// method was called before a successful Fit.
	ErrNotFitted = errors.New("pursuit: model is not fitted; call Fit first")

	// ErrBadInput indicates a nil, empty, or dimensionally incompatible
	// input matrix.
	ErrBadInput = errors.New("pursuit: input must be a non-empty 2-D matrix with compatible feature count")

	// ErrBadOption indicates an invalid configuration value detected at
	// construction time.
	ErrBadOption = errors.New("pursuit: invalid option value")

	// ErrBadLabels indicates a label slice whose length does not match the
	// sample count.
	ErrBadLabels = errors.New("pursuit: labels must match the sample count")
)

// ObjectiveKind selects which fidelity criterion a model optimizes.
type ObjectiveKind int

const (
	// DistanceDistortion preserves pairwise original-space distances in
	// the projected space.
	DistanceDistortion ObjectiveKind = iota

	// Reconstruction recovers the original samples from their projected
	// codes through a tied linear decoder.
	Reconstruction
)

// String implements fmt.Stringer for logs and diagnostics.
func (k ObjectiveKind) String() string {
	switch k {
	case DistanceDistortion:
		return "distance_distortion"
	case Reconstruction:
		return "reconstruction"
	default:
		return "unknown"
	}
}

// EvalReport aggregates the post-fit quality metrics produced by
// Evaluate.
//
// Silhouette is math.NaN() when labels were not supplied or when some
// label class has fewer than two members (the score is undefined there);
// check HasSilhouette before consuming it.
type EvalReport struct {
	// DistanceDistortion is the mean squared difference between the
	// standardized-space and projected-space pairwise distance matrices.
	DistanceDistortion float64

	// ReconstructionError is the mean squared reconstruction error in the
	// original (unscaled) feature space.
	ReconstructionError float64

	// Trustworthiness is the neighborhood-preservation score in [0, 1].
	Trustworthiness float64

	// Silhouette is the cluster-separation score in [-1, 1], or NaN.
	Silhouette float64
}

// HasSilhouette reports whether the Silhouette field holds a defined value.
func (r EvalReport) HasSilhouette() bool {
	return !math.IsNaN(r.Silhouette)
}
