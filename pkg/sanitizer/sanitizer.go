package sanitizer

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"
)

// ErrUnknown is returned by Lookup for names missing from Named.
var ErrUnknown = errors.New("sanitizer: unknown transform")

// Func transforms a raw value.
type Func func(string) string

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	tagRegex        = regexp.MustCompile(`<[^>]*>`)
	dotsRegex       = regexp.MustCompile(`\.{2,}`)
)

// Named maps definition names to transforms.
var Named = map[string]Func{
	"trim":            Trim,
	"lower":           ToLower,
	"upper":           ToUpper,
	"collapse_spaces": CollapseSpaces,
	"single_line":     SingleLine,
	"strip_html":      StripHTML,
	"strip_control":   RemoveControlChars,
	"digits":          KeepDigits,
	"normalize_email": NormalizeEmail,
}

// Compose chains transforms left to right. With no transforms it returns
// the identity function.
func Compose(fns ...Func) Func {
	return func(s string) string {
		for _, fn := range fns {
			s = fn(s)
		}
		return s
	}
}

// Lookup composes the named transforms in order.
func Lookup(names ...string) (Func, error) {
	fns := make([]Func, 0, len(names))
	for _, name := range names {
		fn, ok := Named[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
		}
		fns = append(fns, fn)
	}
	return Compose(fns...), nil
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string { return strings.TrimSpace(s) }

// ToLower lowercases s.
func ToLower(s string) string { return strings.ToLower(s) }

// ToUpper uppercases s.
func ToUpper(s string) string { return strings.ToUpper(s) }

// CollapseSpaces replaces every whitespace run with one space and trims.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SingleLine joins the lines of s with single spaces.
func SingleLine(s string) string {
	return CollapseSpaces(strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s))
}

// StripHTML drops tags and unescapes entities.
func StripHTML(s string) string {
	return html.UnescapeString(tagRegex.ReplaceAllString(s, ""))
}

// RemoveControlChars drops control characters except tab and line breaks.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// KeepDigits drops everything but decimal digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// NormalizeEmail trims and lowercases an address and collapses repeated
// dots in the local part. Values without exactly one @ are only trimmed and
// lowercased.
func NormalizeEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return s
	}
	local = strings.Trim(dotsRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}
