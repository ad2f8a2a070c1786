package form

import (
	"log/slog"

	"github.com/dmitrymomot/formrules/pkg/element"
	"github.com/dmitrymomot/formrules/pkg/field"
	"github.com/dmitrymomot/formrules/pkg/identity"
)

// Handler receives the submit event and the aggregated result.
type Handler func(ev element.Event, res Result)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithSelectOnError toggles selecting the first invalid element.
func WithSelectOnError(enabled bool) Option {
	return func(c *Coordinator) {
		c.selectOnError = enabled
	}
}

// WithScrollOnError toggles scrolling the first invalid element into view.
func WithScrollOnError(enabled bool) Option {
	return func(c *Coordinator) {
		c.scrollOnError = enabled
	}
}

// WithConfig applies both attention settings at once.
func WithConfig(cfg Config) Option {
	return func(c *Coordinator) {
		c.selectOnError = cfg.SelectOnError
		c.scrollOnError = cfg.ScrollOnError
	}
}

// OnSubmit sets the handler called when the form may be sent.
func OnSubmit(h Handler) Option {
	return func(c *Coordinator) {
		c.onSubmit = h
	}
}

// OnError sets the handler called when the form is rejected.
func OnError(h Handler) Option {
	return func(c *Coordinator) {
		c.onError = h
	}
}

// WithName labels log records with the form name.
func WithName(name string) Option {
	return func(c *Coordinator) {
		c.name = name
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIdentity sets the id provider handed to controllers created by Field.
func WithIdentity(p identity.Provider) Option {
	return func(c *Coordinator) {
		if p != nil {
			c.ids = p
		}
	}
}

// WithFieldOptions adds options to every controller created by Field.
func WithFieldOptions(opts ...field.Option) Option {
	return func(c *Coordinator) {
		c.fieldOpts = append(c.fieldOpts, opts...)
	}
}
