package pursuit

import "github.com/rs/zerolog"

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultNComponents is the number of projection directions.
	DefaultNComponents = 2

	// DefaultAlpha is the ridge steepness g(z) = tanh(alpha·z).
	DefaultAlpha = 1.0

	// DefaultMaxIter caps major iterations of each local search.
	DefaultMaxIter = 500

	// DefaultTol is the convergence tolerance of each local search.
	DefaultTol = 1e-6

	// DefaultNInit is the number of randomized restarts run after the
	// deterministic PCA-style seed.
	DefaultNInit = 3
)

// Options configures a ProjectionPursuit model.
//
// Fields:
//   - NComponents — number of projection directions (rows of A).
//   - Objective   — DistanceDistortion or Reconstruction.
//   - Alpha       — ridge steepness; must be > 0.
//   - MaxIter     — iteration budget per local search; must be ≥ 1.
//   - Tol         — convergence tolerance per local search; must be > 0.
//   - Seed        — base random seed; 0 selects a fixed default stream,
//     so equal seeds always reproduce equal fits.
//   - NInit       — randomized restarts after the deterministic seed; ≥ 0.
//   - Center      — subtract per-column means before fitting.
//   - Scale       — divide by per-column standard deviations before fitting.
//   - WeightByDistance — weight the distance-distortion loss by normalized
//     inverse original distances (close pairs matter more).
//   - Logger      — progress/warning sink; defaults to a no-op logger.
type Options struct {
	NComponents      int
	Objective        ObjectiveKind
	Alpha            float64
	MaxIter          int
	Tol              float64
	Seed             int64
	NInit            int
	Center           bool
	Scale            bool
	WeightByDistance bool
	Logger           zerolog.Logger
}

// Option is a functional option for configuring a model.
type Option func(*Options)

// WithNComponents sets the number of projection directions.
func WithNComponents(k int) Option {
	return func(o *Options) { o.NComponents = k }
}

// WithObjective selects the fidelity criterion to optimize.
func WithObjective(kind ObjectiveKind) Option {
	return func(o *Options) { o.Objective = kind }
}

// WithAlpha sets the ridge steepness.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithMaxIter caps the major iterations of each local search.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithTol sets the convergence tolerance of each local search.
func WithTol(tol float64) Option {
	return func(o *Options) { o.Tol = tol }
}

// WithSeed sets the base random seed. Equal seeds on equal data yield
// bit-identical fits; 0 selects a fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithNInit sets the number of randomized restarts run after the
// deterministic seed.
func WithNInit(n int) Option {
	return func(o *Options) { o.NInit = n }
}

// WithCenter toggles mean-centering of the input before fitting.
func WithCenter(on bool) Option {
	return func(o *Options) { o.Center = on }
}

// WithScale toggles unit-variance scaling of the input before fitting.
func WithScale(on bool) Option {
	return func(o *Options) { o.Scale = on }
}

// WithDistanceWeighting enables inverse-distance weighting of the
// distance-distortion loss. Ignored by the reconstruction objective.
func WithDistanceWeighting() Option {
	return func(o *Options) { o.WeightByDistance = true }
}

// WithLogger sets the progress/warning sink. The default is zerolog.Nop,
// which keeps the library silent.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the Options a model is built with before any
// functional overrides: 2 components, distance distortion, alpha 1,
// 500 iterations, tolerance 1e-6, seed 0, 3 restarts, centering and
// scaling on, uniform pair weighting, silent logger.
func DefaultOptions() Options {
	return Options{
		NComponents: DefaultNComponents,
		Objective:   DistanceDistortion,
		Alpha:       DefaultAlpha,
		MaxIter:     DefaultMaxIter,
		Tol:         DefaultTol,
		Seed:        0,
		NInit:       DefaultNInit,
		Center:      true,
		Scale:       true,
		Logger:      zerolog.Nop(),
	}
}

// validate checks internal consistency of the options in one place, the
// only source of ErrBadOption.
func (o Options) validate() error {
	if o.NComponents < 1 {
		return ErrBadOption
	}
	if o.Objective != DistanceDistortion && o.Objective != Reconstruction {
		return ErrBadOption
	}
	if o.Alpha <= 0 {
		return ErrBadOption
	}
	if o.MaxIter < 1 {
		return ErrBadOption
	}
	if o.Tol <= 0 {
		return ErrBadOption
	}
	if o.NInit < 0 {
		return ErrBadOption
	}

	return nil
}
