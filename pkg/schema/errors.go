package schema

import "errors"

var (
	ErrInvalidDefinition = errors.New("schema: invalid form definition")
	ErrEmptyFieldID      = errors.New("schema: field id is empty")
	ErrInvalidFieldID    = errors.New("schema: field id is not an identifier")
	ErrDuplicateField    = errors.New("schema: duplicate field id")
	ErrUnknownRule       = errors.New("schema: unknown rule")
	ErrInvalidArgs       = errors.New("schema: invalid rule arguments")
)
