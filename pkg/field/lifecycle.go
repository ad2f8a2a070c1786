package field

// State is a controller lifecycle state.
type State string

const (
	StateUnattached State = "unattached"
	StateAttached   State = "attached"
	StateDetached   State = "detached"
)

type event string

const (
	eventAttach event = "attach"
	eventDetach event = "detach"
)

// transitions is indexed [from][event] -> to.
var transitions = map[State]map[event]State{
	StateUnattached: {eventAttach: StateAttached},
	StateAttached:   {eventDetach: StateDetached},
	StateDetached:   {eventAttach: StateAttached},
}

type lifecycle struct {
	current State
}

// fire runs action and moves to the target state only when action succeeds.
// Callers hold the controller lock.
func (l *lifecycle) fire(ev event, action func() error) error {
	to, ok := transitions[l.current][ev]
	if !ok {
		return &TransitionError{State: l.current, Event: string(ev)}
	}
	if action != nil {
		if err := action(); err != nil {
			return err
		}
	}
	l.current = to
	return nil
}
