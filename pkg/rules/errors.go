package rules

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedResult is returned when a rule returns a result that is neither Pass nor Fail.
	ErrUnsupportedResult = errors.New("rules: unsupported rule result")

	// ErrNilRule is returned when a rule list contains a nil rule.
	ErrNilRule = errors.New("rules: nil rule")
)

// RuleFault reports a rule that broke the rule contract.
type RuleFault struct {
	Index int
	Err   error
}

func (e *RuleFault) Error() string {
	return fmt.Sprintf("rule #%d: %v", e.Index, e.Err)
}

func (e *RuleFault) Unwrap() error {
	return e.Err
}

// IsRuleFault reports whether err was caused by a malformed rule.
func IsRuleFault(err error) bool {
	var e *RuleFault
	return errors.As(err, &e)
}
