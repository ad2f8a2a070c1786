package webform

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	ErrNilDefinition = errors.New("webform: nil form definition")
	ErrReadValues    = errors.New("webform: failed to read submitted values")
	ErrRender        = errors.New("webform: failed to render response")
)

// FieldErrors reports failures detected after validation passed, such as an
// email that is already taken. Keys are field ids.
type FieldErrors url.Values

// NewFieldErrors creates an empty FieldErrors.
func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "field errors"
	}

	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if msgs := e[k]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", k, msgs[0]))
		}
	}
	return "field errors: " + strings.Join(parts, ", ")
}

// Add appends a message for field.
func (e FieldErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e FieldErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has reports whether field has a message.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether no field carries an error.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}
