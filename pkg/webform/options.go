package webform

import (
	"log/slog"

	"github.com/dmitrymomot/formrules/pkg/schema"
)

// Option configures a Host.
type Option func(*Host)

// WithConfig replaces the host configuration.
func WithConfig(cfg Config) Option {
	return func(h *Host) {
		h.cfg = cfg
	}
}

// WithViews replaces some or all of the default views.
func WithViews(v Views) Option {
	return func(h *Host) {
		h.views = v
	}
}

// WithSubmit sets the function receiving accepted values.
func WithSubmit(fn SubmitFunc) Option {
	return func(h *Host) {
		h.submit = fn
	}
}

// WithCatalog sets the catalog used to compile the definition's rules.
func WithCatalog(cat schema.Catalog) Option {
	return func(h *Host) {
		h.catalog = cat
	}
}

// WithLogger sets the request logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}
