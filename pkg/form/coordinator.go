package form

import (
	"log/slog"

	"github.com/dmitrymomot/formrules/pkg/element"
	"github.com/dmitrymomot/formrules/pkg/field"
	"github.com/dmitrymomot/formrules/pkg/identity"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/registry"
	"github.com/dmitrymomot/formrules/pkg/rules"
)

// Coordinator owns the registry of one form and aggregates it on submit.
type Coordinator struct {
	tree   element.Tree
	reg    *registry.Registry
	ids    identity.Provider
	logger *slog.Logger
	name   string

	fieldOpts []field.Option

	selectOnError bool
	scrollOnError bool
	onSubmit      Handler
	onError       Handler
}

// New mounts a coordinator over tree with a fresh registry. Only a nil
// interface is rejected; a typed nil tree is the caller's bug.
func New(tree element.Tree, opts ...Option) (*Coordinator, error) {
	if tree == nil {
		return nil, ErrNilTree
	}

	cfg := DefaultConfig()
	c := &Coordinator{
		tree:          tree,
		ids:           identity.Default,
		logger:        logger.Nop(),
		selectOnError: cfg.SelectOnError,
		scrollOnError: cfg.ScrollOnError,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.name != "" {
		c.logger = c.logger.With(logger.Form(c.name))
	}
	c.reg = registry.New(registry.WithLogger(c.logger))

	return c, nil
}

// Registrar returns the capability field controllers report to.
func (c *Coordinator) Registrar() registry.Registrar {
	return c.reg
}

// Field creates a controller bound to this form.
func (c *Coordinator) Field(rs ...rules.Rule) (*field.Controller, error) {
	if c.reg.Closed() {
		return nil, ErrClosed
	}
	opts := append([]field.Option{
		field.WithIdentity(c.ids),
		field.WithLogger(c.logger),
	}, c.fieldOpts...)
	return field.New(c.reg, rs, opts...)
}

// Tracked returns the number of registered inputs.
func (c *Coordinator) Tracked() int {
	return c.reg.Len()
}

// Close unmounts the form. Every registry entry is dropped and later
// attaches fail. Safe to call more than once.
func (c *Coordinator) Close() {
	c.reg.Close()
}

// Submit runs the submit algorithm for ev and calls OnSubmit or OnError.
// Validation failures are reported through the Result, not the error.
func (c *Coordinator) Submit(ev element.Event) (Result, error) {
	if ev == nil {
		return Result{}, ErrNilEvent
	}
	ev.PreventDefault()
	if c.reg.Closed() {
		return Result{}, ErrClosed
	}

	identified := c.identified()
	if len(identified) == 0 {
		res := Result{}
		c.logger.Debug("submit without identified elements")
		c.call(c.onSubmit, ev, res)
		return res, nil
	}

	res := Result{
		Verdicts:  make([]Verdict, 0, len(identified)),
		Validated: true,
	}
	for _, el := range identified {
		valid := true
		if entry, ok := c.reg.Lookup(el.ID()); ok {
			valid = entry.Valid
			if entry.OnRecheck != nil {
				entry.OnRecheck()
			}
		}
		res.Verdicts = append(res.Verdicts, Verdict{Element: el, Valid: valid})
	}

	first, invalid := res.FirstInvalid()
	if !invalid {
		c.logger.Debug("submit accepted", logger.Count(len(res.Verdicts)))
		c.call(c.onSubmit, ev, res)
		return res, nil
	}

	c.logger.Debug("submit rejected",
		logger.FieldKey(first.ID()),
		logger.Count(len(res.InvalidIDs())),
	)
	c.attend(first)
	c.call(c.onError, ev, res)
	return res, nil
}

func (c *Coordinator) identified() []element.Element {
	all := c.tree.Elements()
	out := make([]element.Element, 0, len(all))
	for _, el := range all {
		if el != nil && el.ID() != "" {
			out = append(out, el)
		}
	}
	return out
}

// attend draws the user to el. Unsupported primitives are skipped.
func (c *Coordinator) attend(el element.Element) {
	if c.selectOnError {
		if s, ok := el.(element.Selecter); ok {
			s.Select()
		}
	}
	if c.scrollOnError {
		if s, ok := el.(element.Scroller); ok {
			s.ScrollIntoView(element.CenteredSmooth)
		}
	}
}

func (c *Coordinator) call(h Handler, ev element.Event, res Result) {
	if h != nil {
		h(ev, res)
	}
}
