// Package identity generates identifiers for inputs that arrive without one.
//
// The generated id becomes the input's registry key, so it must be unique for
// the lifetime of the process. UUID satisfies that without coordination;
// Sequence is deterministic and intended for tests and single-form hosts.
//
//	id := identity.NextID() // "input-0f8c3b0e-..."
//
//	ids := identity.Sequence("field")
//	ids.NextID() // "field-1"
//	ids.NextID() // "field-2"
package identity
