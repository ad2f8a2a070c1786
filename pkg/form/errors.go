package form

import "errors"

var (
	ErrNilTree  = errors.New("form: nil element tree")
	ErrNilEvent = errors.New("form: nil submit event")
	ErrClosed   = errors.New("form: coordinator is closed")
)
