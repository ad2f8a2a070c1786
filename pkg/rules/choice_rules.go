package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// OneOf fails unless the value equals one of allowed.
func OneOf(msg string, allowed ...string) Rule {
	msg = orDefault(msg, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return func(value string) Result {
		if slices.Contains(allowed, value) {
			return Pass()
		}
		return Fail(msg)
	}
}

// UUID fails unless the value is a canonical 36 character UUID.
func UUID(msg string) Rule {
	return optional(func(value string) bool {
		if len(value) != 36 {
			return false
		}
		_, err := uuid.Parse(value)
		return err == nil
	}, orDefault(msg, "must be a valid UUID"))
}
