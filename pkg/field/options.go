package field

import (
	"log/slog"

	"github.com/dmitrymomot/formrules/pkg/identity"
)

// Option configures a Controller.
type Option func(*Controller)

// WithIdentity sets the provider used for elements without an id.
func WithIdentity(p identity.Provider) Option {
	return func(c *Controller) {
		if p != nil {
			c.ids = p
		}
	}
}

// WithLogger sets the logger used for debug output and faults.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFaultHandler receives rule faults raised by change-triggered runs.
func WithFaultHandler(h func(error)) Option {
	return func(c *Controller) {
		if h != nil {
			c.onFault = h
		}
	}
}
