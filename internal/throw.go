package internal

import "github.com/pkg/errors"

// Recoverable failures are returned as plain errors wrapping one of the
// sentinels below. Internal consistency failures during insertion would need
// to be threaded through every helper, so instead they panic via fatalf, and
// the engine recovers at its method boundary to convert back to an error.

var (
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	ErrDuplicatePoint     = errors.New("duplicate point")
	ErrInsertionInvariant = errors.New("insertion invariant violated")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrOutsideBounds      = errors.New("point outside super-triangle")
	ErrNonFinitePoint     = errors.New("non-finite point")
	ErrFinalized          = errors.New("triangulation already finalized")
	ErrNotFinalized       = errors.New("mesh still contains super-triangle")
	ErrInvalidResult      = errors.New("invalid triangulation")
)

type TriangulateError error

// Panic with a TriangulateError wrapping ErrInsertionInvariant.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError(errors.Wrapf(ErrInsertionInvariant, format, args...)))
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		// Runtime errors also satisfy the error interface, so only our own
		// violations are converted.
		if triangulateError, ok := r.(TriangulateError); ok && errors.Is(triangulateError, ErrInsertionInvariant) {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
