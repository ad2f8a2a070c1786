package rules

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// Format rules accept the empty string; pair them with Required when the
// field is mandatory.

var (
	phoneRegex        = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericRegex      = regexp.MustCompile(`^[0-9]+$`)
)

// Email fails unless the value is a single RFC 5322 address with a dotted domain.
func Email(msg string) Rule {
	return optional(isEmail, orDefault(msg, "must be a valid email address"))
}

// URL fails unless the value is an absolute http or https URL.
func URL(msg string) Rule {
	return optional(isURL, orDefault(msg, "must be a valid URL"))
}

// Phone fails unless the value is an E.164 phone number.
func Phone(msg string) Rule {
	return Matches(phoneRegex, orDefault(msg, "must be a valid phone number"))
}

// Alpha fails unless the value contains only ASCII letters.
func Alpha(msg string) Rule {
	return Matches(alphaRegex, orDefault(msg, "must contain only letters"))
}

// Alphanumeric fails unless the value contains only ASCII letters and digits.
func Alphanumeric(msg string) Rule {
	return Matches(alphanumericRegex, orDefault(msg, "must contain only letters and numbers"))
}

// Numeric fails unless the value contains only digits.
func Numeric(msg string) Rule {
	return Matches(numericRegex, orDefault(msg, "must contain only numbers"))
}

// Matches fails when the value does not match re.
func Matches(re *regexp.Regexp, msg string) Rule {
	return optional(re.MatchString, orDefault(msg, "has an invalid format"))
}

func optional(ok func(string) bool, msg string) Rule {
	return func(value string) Result {
		if value == "" || ok(value) {
			return Pass()
		}
		return Fail(msg)
	}
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func isURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
