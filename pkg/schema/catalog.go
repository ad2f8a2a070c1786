package schema

import (
	"fmt"
	"maps"
	"regexp"
	"strconv"

	"github.com/dmitrymomot/formrules/pkg/rules"
)

// Factory builds a rule from its arguments. An empty message selects the
// rule's default text.
type Factory func(args []string, message string) (rules.Rule, error)

// Catalog maps rule names to factories.
type Catalog map[string]Factory

// DefaultCatalog returns a fresh catalog of the builtin rules.
func DefaultCatalog() Catalog {
	return Catalog{
		"required":     noArgs(rules.Required),
		"email":        noArgs(rules.Email),
		"url":          noArgs(rules.URL),
		"phone":        noArgs(rules.Phone),
		"alpha":        noArgs(rules.Alpha),
		"alphanumeric": noArgs(rules.Alphanumeric),
		"numeric":      noArgs(rules.Numeric),
		"uuid":         noArgs(rules.UUID),
		"min_len":      intArg(rules.MinLen),
		"max_len":      intArg(rules.MaxLen),
		"len":          intArg(rules.Len),
		"matches":      matches,
		"one_of":       oneOf,
	}
}

// With returns a copy of c with extra factories added or replaced.
func (c Catalog) With(extra Catalog) Catalog {
	out := maps.Clone(c)
	if out == nil {
		out = make(Catalog, len(extra))
	}
	maps.Copy(out, extra)
	return out
}

// Build resolves rd into a rule.
func (c Catalog) Build(rd RuleDef) (rules.Rule, error) {
	f, ok := c[rd.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, rd.Name)
	}
	rule, err := f(rd.Args, rd.Message)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", rd.Name, err)
	}
	return rule, nil
}

func noArgs(build func(msg string) rules.Rule) Factory {
	return func(args []string, msg string) (rules.Rule, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: expected none, got %d", ErrInvalidArgs, len(args))
		}
		return build(msg), nil
	}
}

func intArg(build func(n int, msg string) rules.Rule) Factory {
	return func(args []string, msg string) (rules.Rule, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: expected 1 argument, got %d", ErrInvalidArgs, len(args))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidArgs, args[0])
		}
		return build(n, msg), nil
	}
}

func matches(args []string, msg string) (rules.Rule, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: expected a pattern", ErrInvalidArgs)
	}
	re, err := regexp.Compile(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return rules.Matches(re, msg), nil
}

func oneOf(args []string, msg string) (rules.Rule, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: expected at least one choice", ErrInvalidArgs)
	}
	return rules.OneOf(msg, args...), nil
}
