package roots

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/polyroots/utils/bignum"
)

var (
	// ErrDuplicateRoots is returned when two approximations become equal after rounding,
	// which collapses the Durand-Kerner divisor to zero. It wraps [bignum.ErrDivisionByZero].
	ErrDuplicateRoots = fmt.Errorf("duplicate roots: %w", bignum.ErrDivisionByZero)

	// ErrDegenerateInput is returned for polynomials with fewer than two coefficients
	// or with a zero leading coefficient.
	ErrDegenerateInput = errors.New("degenerate polynomial")

	// ErrNotConverged is matched by [*NotConvergedError].
	ErrNotConverged = errors.New("not converged")

	// ErrSnapshotMismatch is returned when resuming from a [Snapshot] taken on another polynomial.
	ErrSnapshotMismatch = errors.New("snapshot does not match the polynomial")
)

// DuplicateRootsError reports the pair of roots that collapsed at a given iteration.
type DuplicateRootsError struct {
	Iteration int
	I, J      int
	Root      bignum.Complex
}

func (e *DuplicateRootsError) Error() string {
	return fmt.Sprintf("iteration %d: roots %d and %d are both %s: %s", e.Iteration, e.I, e.J, e.Root, ErrDuplicateRoots)
}

func (e *DuplicateRootsError) Unwrap() error {
	return ErrDuplicateRoots
}

// NotConvergedError is returned when the iteration cap is reached or the
// context is done before the residuals fall below the threshold.
// Snapshot holds the last root set and can be passed to [Solver.Resume].
type NotConvergedError struct {
	Snapshot Snapshot
	State    ConvergenceState
	// Cause is the context error, nil if the iteration cap was reached.
	Cause error
}

func (e *NotConvergedError) Error() string {
	msg := fmt.Sprintf("%s after %d iterations", ErrNotConverged, e.Snapshot.Iteration)
	if r, ok := e.State.MaxResidual(); ok {
		msg += fmt.Sprintf(" (max residual %s)", r.Text('E'))
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Is returns true if target is [ErrNotConverged].
func (e *NotConvergedError) Is(target error) bool {
	return target == ErrNotConverged
}

func (e *NotConvergedError) Unwrap() error {
	return e.Cause
}
