package registry

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

// Entry is the published state of one input.
type Entry struct {
	Key   string
	Valid bool
	// OnRecheck is invoked by the form at submit time. Optional.
	OnRecheck func()
}

// Registrar is the write capability handed to field controllers.
type Registrar interface {
	Register(key string, valid bool, onRecheck func())
	Unregister(key string)
}

// Closer is implemented by registrars whose owner can go away. Controllers
// check it before attaching.
type Closer interface {
	Closed() bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	closed  bool
	logger  *slog.Logger
}

var (
	_ Registrar = (*Registry)(nil)
	_ Closer    = (*Registry)(nil)
)

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]Entry),
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores the validity for key, replacing any previous entry.
func (r *Registry) Register(key string, valid bool, onRecheck func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		r.logger.Debug("register after close ignored", logger.FieldKey(key))
		return
	}
	r.entries[key] = Entry{Key: key, Valid: valid, OnRecheck: onRecheck}
}

// Unregister removes key if present.
func (r *Registry) Unregister(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// Lookup returns a copy of the entry for key.
func (r *Registry) Lookup(key string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e, ok
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// Close drops every entry and rejects later registrations. Safe to call more than once.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.logger.Debug("registry closed", logger.Count(len(r.entries)))
	r.closed = true
	clear(r.entries)
}

// Closed reports whether Close was called.
func (r *Registry) Closed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}
