package field

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRegistry is returned when a controller has no form to report to.
	ErrNoRegistry = errors.New("field: controller used outside of a form")

	// ErrRegistryClosed is returned when attaching to a form that has been closed.
	ErrRegistryClosed = fmt.Errorf("%w: form is no longer mounted", ErrNoRegistry)

	// ErrNilElement is returned when Attach receives a nil element.
	ErrNilElement = errors.New("field: nil element")
)

// TransitionError reports a lifecycle event that is not allowed in the current state.
type TransitionError struct {
	State State
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("field: cannot %s while %s", e.Event, e.State)
}

// IsTransitionError reports whether err is a *TransitionError.
func IsTransitionError(err error) bool {
	var e *TransitionError
	return errors.As(err, &e)
}
