package identity

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// DefaultPrefix keeps generated ids valid as HTML id attributes and CSS selectors.
const DefaultPrefix = "input"

// Provider returns a new unique identifier on every call.
type Provider interface {
	NextID() string
}

// ProviderFunc adapts a function into a Provider.
type ProviderFunc func() string

// NextID calls f.
func (f ProviderFunc) NextID() string { return f() }

// Default is used when no provider is configured.
var Default Provider = UUID(DefaultPrefix)

// NextID returns an identifier from Default.
func NextID() string {
	return Default.NextID()
}

// UUID returns a Provider producing "<prefix>-<uuid v4>". An empty prefix yields the bare UUID.
func UUID(prefix string) Provider {
	return ProviderFunc(func() string {
		if prefix == "" {
			return uuid.NewString()
		}
		return prefix + "-" + uuid.NewString()
	})
}

// Sequence returns a Provider producing "<prefix>-1", "<prefix>-2", ...
// Two sequences with the same prefix produce the same ids.
func Sequence(prefix string) Provider {
	var n atomic.Uint64
	return ProviderFunc(func() string {
		return prefix + "-" + strconv.FormatUint(n.Add(1), 10)
	})
}
