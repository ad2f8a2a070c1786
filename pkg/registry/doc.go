// Package registry holds the per-form validity table.
//
// A Registry maps an input's key to its last published validity and an
// optional recheck callback. Field controllers write to it through the
// Registrar interface they receive from their form; only that form reads it.
// Two forms never share a Registry.
//
// Register is an upsert: the latest call for a key wins and a key never
// appears twice. Unregister is a no-op for unknown keys. Close empties the
// table and turns every later write into a no-op, so no entry outlives the
// form that owns it.
//
// The registry never invokes callbacks itself and never holds its lock while
// a caller does.
package registry
