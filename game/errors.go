package game

import "github.com/pkg/errors"

// PositionStatus is the outcome of validating a candidate move.
type PositionStatus int

const (
	// StatusOK means the move is legal.
	StatusOK PositionStatus = iota
	// StatusNotEmpty means the point is already occupied.
	StatusNotEmpty
	// StatusSuicide means the move would leave the newly formed group
	// with zero liberties and capture nothing.
	StatusSuicide
	// StatusKo means the move would recreate the position prohibited by
	// simple ko.
	StatusKo
)

func (s PositionStatus) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNotEmpty:
		return "NOT_EMPTY"
	case StatusSuicide:
		return "SUICIDE"
	case StatusKo:
		return "KO"
	default:
		return "UNKNOWN"
	}
}

// OutOfBoundsError reports a point outside [0,W)x[0,H). It is a
// programmer error: every caller is expected to operate within the
// board's declared dimensions.
type OutOfBoundsError struct {
	Point Point
	Dims  Dims

	cause error
}

func (e *OutOfBoundsError) Error() string { return e.cause.Error() }

// Unwrap exposes the pkg/errors-constructed cause so errors.Is/As and
// %+v formatting can still reach its stack trace.
func (e *OutOfBoundsError) Unwrap() error { return e.cause }

func newOutOfBoundsError(p Point, d Dims) *OutOfBoundsError {
	return &OutOfBoundsError{
		Point: p,
		Dims:  d,
		cause: errors.Errorf("point %v out of bounds for %dx%d board", p, d.W, d.H),
	}
}

// IllegalMoveError reports a Place call whose point did not validate as
// StatusOK. Callers are expected to pre-check with GetPosStatus.
type IllegalMoveError struct {
	Point  Point
	Player Player
	Status PositionStatus

	cause error
}

func (e *IllegalMoveError) Error() string { return e.cause.Error() }

// Unwrap exposes the pkg/errors-constructed cause so errors.Is/As and
// %+v formatting can still reach its stack trace.
func (e *IllegalMoveError) Unwrap() error { return e.cause }

func newIllegalMoveError(p Point, player Player, status PositionStatus) *IllegalMoveError {
	return &IllegalMoveError{
		Point:  p,
		Player: player,
		Status: status,
		cause:  errors.Errorf("illegal move: %s at %v for %s", status, p, player),
	}
}

// InvariantViolation reports an internal inconsistency — liberty drift, a
// dangling handle, a group whose stone count doesn't match its points.
// There is no defined recovery: it indicates a bug in the engine, so
// callers encounter it only as a panic value, never as a returned error.
type InvariantViolation struct {
	cause error
}

func (e *InvariantViolation) Error() string { return e.cause.Error() }

// Unwrap exposes the pkg/errors-constructed cause so errors.Is/As and
// %+v formatting can still reach its stack trace.
func (e *InvariantViolation) Unwrap() error { return e.cause }

// panicInvariant raises an InvariantViolation wrapping a pkg/errors value so
// the panic carries a stack trace pointing at the engine code that detected
// the inconsistency.
func panicInvariant(format string, args ...interface{}) {
	panic(&InvariantViolation{cause: errors.Errorf(format, args...)})
}
