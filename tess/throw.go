package tess

import "github.com/pkg/errors"

// Threading errors through every event handler and span operation of the
// sweep would add a ton of plumbing to the hot path. Instead the engine
// panics with a typed error and the public API recovers it back into a plain
// error return.

// ErrorKind classifies a tessellation failure.
type ErrorKind int

const (
	// DegenerateInput means the caller's geometry contains duplicate or
	// exactly-collinear points that the event classifier cannot place. The
	// input is at fault and the call can be retried with cleaned geometry.
	DegenerateInput ErrorKind = iota + 1

	// InvariantViolation means an internal consistency check failed. This is
	// a defect in the engine, not in the input.
	InvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case DegenerateInput:
		return "degenerate input"
	case InvariantViolation:
		return "invariant violation"
	}
	return "unknown"
}

// Error is the typed failure surfaced at the tessellation boundary.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// throwf panics with a typed Error; FillPath's callers recover it.
func throwf(kind ErrorKind, format string, args ...interface{}) {
	panic(&Error{Kind: kind, Err: errors.Errorf(format, args...)})
}

// HandleFillPanicRecover converts a recovered panic value back into the
// typed error the engine threw. Foreign panics are re-raised untouched.
//
//	defer func() {
//		err = tess.HandleFillPanicRecover(recover())
//	}()
func HandleFillPanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(*Error); ok {
		return err
	}
	panic(r)
}
