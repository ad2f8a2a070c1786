package field

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/formrules/pkg/element"
	"github.com/dmitrymomot/formrules/pkg/identity"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/registry"
	"github.com/dmitrymomot/formrules/pkg/rules"
)

// Controller validates one input and publishes the outcome to its form.
type Controller struct {
	reg     registry.Registrar
	rules   []rules.Rule
	ids     identity.Provider
	logger  *slog.Logger
	onFault func(error)

	mu     sync.Mutex
	lc     lifecycle
	el     element.Input
	key    string
	cancel func()
	// gen changes on every run so recheck callbacks from older runs are ignored.
	gen     uint64
	failed  bool
	message string
	visible bool
}

// FieldState is a point-in-time copy of a controller's state.
type FieldState struct {
	Key          string
	State        State
	Rules        int
	Valid        bool
	ErrorMessage string
	HasMessage   bool
	HasError     bool
}

// New creates a controller reporting to reg. A nil reg is a configuration
// error: the controller could never report its validity.
func New(reg registry.Registrar, rs []rules.Rule, opts ...Option) (*Controller, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}

	c := &Controller{
		reg:    reg,
		rules:  slices.Clone(rs),
		ids:    identity.Default,
		logger: logger.Nop(),
		lc:     lifecycle{current: StateUnattached},
	}
	c.onFault = c.panicOnFault
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is New that panics on error.
func MustNew(reg registry.Registrar, rs []rules.Rule, opts ...Option) *Controller {
	c, err := New(reg, rs, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create field controller: %v", err))
	}
	return c
}

// Attach binds the controller to el, validates it and starts observing it.
// On error the controller stays unattached and nothing is registered.
// el must be a usable element; a typed nil pointer is not detected.
func (c *Controller) Attach(el element.Input) error {
	if el == nil {
		return ErrNilElement
	}
	if cl, ok := c.reg.(registry.Closer); ok && cl.Closed() {
		return ErrRegistryClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lc.fire(eventAttach, func() error {
		if el.ID() == "" {
			el.SetID(c.ids.NextID())
		}
		c.el, c.key = el, el.ID()
		c.failed, c.message, c.visible = false, "", false

		if err := c.validateLocked(); err != nil {
			c.reg.Unregister(c.key)
			c.el, c.key = nil, ""
			c.failed = false
			return err
		}

		c.cancel = el.Observe(c.onChange)
		c.logger.Debug("field attached", logger.FieldKey(c.key), logger.Valid(!c.failed))
		return nil
	})
}

// Ref attaches el and returns the matching detach func. It is the handle a
// host keeps next to the concrete element.
func (c *Controller) Ref(el element.Input) (func(), error) {
	if err := c.Attach(el); err != nil {
		return func() {}, err
	}
	return c.Detach, nil
}

// Detach stops observing the element and removes its registry entry.
// Calls on a controller that is not attached do nothing.
func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.lc.fire(eventDetach, func() error {
		if c.cancel != nil {
			c.cancel()
			c.cancel = nil
		}
		c.reg.Unregister(c.key)
		c.logger.Debug("field detached", logger.FieldKey(c.key))

		c.el = nil
		c.gen++
		c.failed, c.message, c.visible = false, "", false
		return nil
	})
	if err != nil {
		c.logger.Debug("detach ignored", logger.State(string(c.lc.current)))
	}
}

// Revalidate runs the rules against the element's current value and
// publishes the result. It does nothing unless the controller is attached.
func (c *Controller) Revalidate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lc.current != StateAttached {
		return nil
	}
	return c.validateLocked()
}

func (c *Controller) onChange() {
	if err := c.Revalidate(); err != nil {
		c.onFault(err)
	}
}

func (c *Controller) validateLocked() error {
	// Follow an id the host changed after attach; the old entry must not linger.
	if id := c.el.ID(); id != "" && id != c.key {
		c.reg.Unregister(c.key)
		c.key = id
	}

	verdict, err := rules.Evaluate(c.el.Value(), c.rules)
	c.gen++
	if err != nil {
		// A faulted run must never leave a passing verdict behind.
		c.failed, c.message, c.visible = true, "", false
		c.reg.Register(c.key, false, nil)
		return fmt.Errorf("field %q: %w", c.key, err)
	}

	if verdict.Valid {
		c.failed, c.message, c.visible = false, "", false
		c.reg.Register(c.key, true, nil)
	} else {
		c.failed, c.message = true, verdict.Message
		gen := c.gen
		c.reg.Register(c.key, false, func() { c.reveal(gen) })
	}

	c.logger.Debug("field validated", logger.FieldKey(c.key), logger.Valid(verdict.Valid))
	return nil
}

// reveal raises the visible error flag if run gen is still the latest.
func (c *Controller) reveal(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen == c.gen && c.failed && c.lc.current == StateAttached {
		c.visible = true
	}
}

func (c *Controller) panicOnFault(err error) {
	c.logger.Error("rule fault", logger.FieldKey(c.Key()), logger.Error(err))
	panic(err)
}

// HasError reports whether the input should be displayed as failing.
func (c *Controller) HasError() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasErrorLocked()
}

func (c *Controller) hasErrorLocked() bool {
	return len(c.rules) > 0 && c.failed && c.visible
}

// ErrorMessage returns the latest failure message. ok is false while the
// input passes or has not been validated.
func (c *Controller) ErrorMessage() (msg string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message, c.failed
}

// Key returns the registry key, empty until the first attach.
func (c *Controller) Key() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.key
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lc.current
}

// Snapshot returns a copy of the controller state.
func (c *Controller) Snapshot() FieldState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return FieldState{
		Key:          c.key,
		State:        c.lc.current,
		Rules:        len(c.rules),
		Valid:        !c.failed,
		ErrorMessage: c.message,
		HasMessage:   c.failed,
		HasError:     c.hasErrorLocked(),
	}
}
