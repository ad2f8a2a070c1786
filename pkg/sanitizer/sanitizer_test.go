package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/sanitizer"
)

func TestTransforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   sanitizer.Func
		in   string
		want string
	}{
		{"trim", sanitizer.Trim, "  a b  ", "a b"},
		{"lower", sanitizer.ToLower, "MiXeD", "mixed"},
		{"upper", sanitizer.ToUpper, "MiXeD", "MIXED"},
		{"collapse spaces", sanitizer.CollapseSpaces, " a \t  b\n c ", "a b c"},
		{"single line", sanitizer.SingleLine, "line one\r\nline two\nthree", "line one line two three"},
		{"strip html", sanitizer.StripHTML, "<b>Tom</b> &amp; Jerry", "Tom & Jerry"},
		{"strip control", sanitizer.RemoveControlChars, "a\x00b\tc\x07", "ab\tc"},
		{"digits", sanitizer.KeepDigits, "+1 (555) 010-99", "155501099"},
		{"email", sanitizer.NormalizeEmail, "  John..Doe.@Example.COM ", "john.doe@example.com"},
		{"email without at", sanitizer.NormalizeEmail, " NotAnEmail ", "notanemail"},
		{"email with two ats", sanitizer.NormalizeEmail, "a@b@c", "a@b@c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " x ", sanitizer.Compose()(" x "))
	assert.Equal(t, "HI", sanitizer.Compose(sanitizer.Trim, sanitizer.ToUpper)("  hi "))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	fn, err := sanitizer.Lookup("strip_html", "collapse_spaces", "lower")
	require.NoError(t, err)
	assert.Equal(t, "hello world", fn(" <p>Hello</p>   WORLD "))

	_, err = sanitizer.Lookup("trim", "shout")
	require.ErrorIs(t, err, sanitizer.ErrUnknown)
}
