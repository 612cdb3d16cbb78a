package pairhmm

// PROB_SCALE analogue: ProbScale is the integer scale posterior match
// probabilities are quantised to.
const ProbScale = 1000000

// Parameters bundles every tunable knob of the anchored banded aligner and
// its surrounding anchor/split pipeline. All fields are required; use
// DefaultParameters for the reference defaults.
type Parameters struct {
	// Threshold is the posterior probability below which aligned pairs
	// are discarded.
	Threshold float64
	// MinDiagsBetweenTraceBack is the minimum antidiagonal distance
	// between traceback checkpoints.
	MinDiagsBetweenTraceBack int
	// TraceBackDiagonals is how far the backward sweep extends past the
	// eligible region at each checkpoint.
	TraceBackDiagonals int
	// DiagonalExpansion is the band halfwidth added around each anchor;
	// must be even and non-negative.
	DiagonalExpansion int
	// ConstraintDiagonalTrim shrinks each anchor run by this many bases
	// at each end; runs of length < 2*trim contribute nothing.
	ConstraintDiagonalTrim int
	// AnchorMatrixBiggerThanThis is the lX*lY area above which top-level
	// anchoring is attempted at all.
	AnchorMatrixBiggerThanThis int64
	// RepeatMaskMatrixBiggerThanThis is the inner-rectangle area above
	// which a non-repeat-masked anchoring pass is added.
	RepeatMaskMatrixBiggerThanThis int64
	// SplitMatrixBiggerThanThis is the maximum DP rectangle area per
	// split.
	SplitMatrixBiggerThanThis int64
	// AlignAmbiguityCharacters is reserved; the core does not consume it.
	AlignAmbiguityCharacters bool
}

// DefaultParameters returns the reference parameter set.
func DefaultParameters() Parameters {
	return Parameters{
		Threshold:                      0.01,
		MinDiagsBetweenTraceBack:       1000,
		TraceBackDiagonals:             40,
		DiagonalExpansion:              20,
		ConstraintDiagonalTrim:         14,
		AnchorMatrixBiggerThanThis:     250000,
		RepeatMaskMatrixBiggerThanThis: 250000,
		SplitMatrixBiggerThanThis:      9000000,
		AlignAmbiguityCharacters:       false,
	}
}

// Validate checks the preconditions the banded posterior engine requires.
func (p Parameters) Validate() error {
	switch {
	case p.TraceBackDiagonals < 1:
		return errf(BadParameters, "traceBackDiagonals must be >= 1, got %d", p.TraceBackDiagonals)
	case p.Threshold < 0 || p.Threshold > 1:
		return errf(BadParameters, "threshold must be in [0,1], got %v", p.Threshold)
	case p.DiagonalExpansion < 0 || p.DiagonalExpansion%2 != 0:
		return errf(BadParameters, "diagonalExpansion must be even and non-negative, got %d", p.DiagonalExpansion)
	case p.MinDiagsBetweenTraceBack < 2:
		return errf(BadParameters, "minDiagsBetweenTraceBack must be >= 2, got %d", p.MinDiagsBetweenTraceBack)
	case p.TraceBackDiagonals+1 >= p.MinDiagsBetweenTraceBack:
		return errf(BadParameters, "traceBackDiagonals+1 must be < minDiagsBetweenTraceBack (%d+1 >= %d)",
			p.TraceBackDiagonals, p.MinDiagsBetweenTraceBack)
	}
	return nil
}

// AlignedPair is a posterior-decoded aligned pair: P(match at (X,Y)),
// quantised to an integer in [0, ProbScale], and the zero-based sequence
// coordinates.
type AlignedPair struct {
	Prob int
	X, Y int
}
