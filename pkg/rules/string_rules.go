package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Required fails when the value is empty after trimming whitespace.
func Required(msg string) Rule {
	msg = orDefault(msg, "field is required")
	return func(value string) Result {
		if strings.TrimSpace(value) == "" {
			return Fail(msg)
		}
		return Pass()
	}
}

// MinLen fails when the value has fewer than min characters.
// Characters are counted on the NFC form so composed and decomposed input
// measure the same.
func MinLen(min int, msg string) Rule {
	msg = orDefault(msg, fmt.Sprintf("must be at least %d characters long", min))
	return func(value string) Result {
		if runeLen(value) < min {
			return Fail(msg)
		}
		return Pass()
	}
}

// MaxLen fails when the value has more than max characters.
func MaxLen(max int, msg string) Rule {
	msg = orDefault(msg, fmt.Sprintf("must be at most %d characters long", max))
	return func(value string) Result {
		if runeLen(value) > max {
			return Fail(msg)
		}
		return Pass()
	}
}

// Len fails unless the value has exactly n characters.
func Len(n int, msg string) Rule {
	msg = orDefault(msg, fmt.Sprintf("must be exactly %d characters long", n))
	return func(value string) Result {
		if runeLen(value) != n {
			return Fail(msg)
		}
		return Pass()
	}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func orDefault(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
