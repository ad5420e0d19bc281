package terra

import "fmt"

// Kind tags the class of failure an orchestrator call can report, following
// SPEC_FULL.md §7's "tagged result variant" design realized as a small
// exported enum plus errors.Is/errors.As support, in place of the teacher's
// own plain-sentinel-error convention (grid.ErrInvalidGrid) where a single
// kind would not do.
type Kind int

const (
	// InvalidGrid means width or height fell below the minimum grid size.
	InvalidGrid Kind = iota
	// InvalidParam means a GlobalParams slider left [0,1] or otherwise
	// failed validation before any stage ran.
	InvalidParam
	// NumericFailure means a stage produced a non-finite heightfield cell.
	NumericFailure
	// MissingReferenceData means a metric was requested against a terrain
	// class with no embedded empirical reference band.
	MissingReferenceData
)

func (k Kind) String() string {
	switch k {
	case InvalidGrid:
		return "InvalidGrid"
	case InvalidParam:
		return "InvalidParam"
	case NumericFailure:
		return "NumericFailure"
	case MissingReferenceData:
		return "MissingReferenceData"
	default:
		return "Unknown"
	}
}

// Error is the orchestrator's tagged error: a Kind, the failing operation,
// and (optionally) the underlying cause. errors.Is compares by Kind alone,
// so callers can write errors.Is(err, terra.ErrInvalidParam) without caring
// which stage or message produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("terra: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("terra: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is implements errors.Is by Kind: any two *Error values with the same Kind
// are considered equal, regardless of Op/Err, so the exported sentinels
// below (which carry no Op/Err) can be used as match targets.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is(err, terra.ErrXxx) comparisons.
var (
	ErrInvalidGrid          = &Error{Kind: InvalidGrid}
	ErrInvalidParam         = &Error{Kind: InvalidParam}
	ErrNumericFailure       = &Error{Kind: NumericFailure}
	ErrMissingReferenceData = &Error{Kind: MissingReferenceData}
)

func wrapErr(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}
