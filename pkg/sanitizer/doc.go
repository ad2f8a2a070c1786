// Package sanitizer normalises raw input values before they are validated.
//
// Functions are plain string transforms that can be chained with Compose.
// Named exposes them by the names used in form definitions:
//
//	clean, err := sanitizer.Lookup("trim", "lower")
//	email := clean("  Me@Example.COM ") // "me@example.com"
package sanitizer
