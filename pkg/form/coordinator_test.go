package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/element"
	"github.com/dmitrymomot/formrules/pkg/field"
	"github.com/dmitrymomot/formrules/pkg/form"
	"github.com/dmitrymomot/formrules/pkg/identity"
	"github.com/dmitrymomot/formrules/pkg/rules"
)

// calls records handler invocations.
type calls struct {
	submit int
	failed int
	last   form.Result
}

func (c *calls) options() []form.Option {
	return []form.Option{
		form.OnSubmit(func(_ element.Event, res form.Result) { c.submit++; c.last = res }),
		form.OnError(func(_ element.Event, res form.Result) { c.failed++; c.last = res }),
	}
}

func attach(t *testing.T, f *form.Coordinator, in element.Input, rs ...rules.Rule) *field.Controller {
	t.Helper()
	ctl, err := f.Field(rs...)
	require.NoError(t, err)
	require.NoError(t, ctl.Attach(in))
	return ctl
}

// plainInput hides the attention capabilities of the wrapped input.
type plainInput struct {
	element.Input
}

func TestNew(t *testing.T) {
	t.Parallel()

	f, err := form.New(nil)
	require.ErrorIs(t, err, form.ErrNilTree)
	assert.Nil(t, f)
}

func TestSubmitAllValid(t *testing.T) {
	t.Parallel()

	a := element.NewTextInput("a", "alice")
	b := element.NewTextInput("b", "bob@example.com")
	c := element.NewTextInput("c", "carol")
	root := element.NewBox("", a, b, c)

	var got calls
	f, err := form.New(root, got.options()...)
	require.NoError(t, err)
	attach(t, f, a, rules.Required(""))
	attach(t, f, b, rules.Required(""), rules.Email(""))
	attach(t, f, c, rules.MinLen(3, ""))

	ev := element.NewSubmitEvent()
	res, err := f.Submit(ev)
	require.NoError(t, err)

	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, 1, got.submit)
	assert.Zero(t, got.failed)
	assert.True(t, res.CanSubmit())
	assert.True(t, res.Validated)
	assert.Len(t, res.Verdicts, 3)
	for _, in := range []*element.TextInput{a, b, c} {
		assert.Zero(t, in.Selected())
		n, _ := in.Scrolled()
		assert.Zero(t, n)
	}
}

func TestSubmitOneInvalid(t *testing.T) {
	t.Parallel()

	a := element.NewTextInput("a", "ok")
	b := element.NewTextInput("b", "")
	c := element.NewTextInput("c", "ok")
	root := element.NewBox("", a, b, c)

	var got calls
	f, err := form.New(root, got.options()...)
	require.NoError(t, err)
	attach(t, f, a, rules.Required(""))
	ctlB := attach(t, f, b, rules.Required("B is required"))
	attach(t, f, c, rules.Required(""))

	require.False(t, ctlB.HasError())

	res, err := f.Submit(element.NewSubmitEvent())
	require.NoError(t, err)

	assert.Zero(t, got.submit)
	assert.Equal(t, 1, got.failed)
	assert.False(t, res.CanSubmit())
	first, ok := res.FirstInvalid()
	require.True(t, ok)
	assert.Same(t, b, first)
	assert.Equal(t, []string{"b"}, res.InvalidIDs())

	assert.True(t, ctlB.HasError(), "submit reveals the error")
	msg, _ := ctlB.ErrorMessage()
	assert.Equal(t, "B is required", msg)

	assert.Equal(t, 1, b.Selected())
	n, opts := b.Scrolled()
	assert.Equal(t, 1, n)
	assert.Equal(t, element.ScrollOptions{Behavior: "smooth", Block: "center", Inline: "center"}, opts)

	for _, other := range []*element.TextInput{a, c} {
		assert.Zero(t, other.Selected())
		n, _ := other.Scrolled()
		assert.Zero(t, n)
	}
}

func TestSubmitFirstInvalidFollowsDocumentOrder(t *testing.T) {
	t.Parallel()

	late := element.NewTextInput("late", "")
	early := element.NewTextInput("early", "")
	inner := element.NewBox("", early)
	root := element.NewBox("", inner, late)

	f, err := form.New(root)
	require.NoError(t, err)
	// Attach order differs from document order.
	attach(t, f, late, rules.Required(""))
	attach(t, f, early, rules.Required(""))

	res, err := f.Submit(element.NewSubmitEvent())
	require.NoError(t, err)

	first, ok := res.FirstInvalid()
	require.True(t, ok)
	assert.Equal(t, "early", first.ID())
	assert.Equal(t, 1, early.Selected())
	assert.Zero(t, late.Selected())
}

func TestSubmitNoIdentifiedElements(t *testing.T) {
	t.Parallel()

	root := element.NewBox("", element.NewLabel(""), element.NewBox(""))
	var got calls
	f, err := form.New(root, got.options()...)
	require.NoError(t, err)

	ev := element.NewSubmitEvent()
	res, err := f.Submit(ev)
	require.NoError(t, err)

	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, 1, got.submit)
	assert.Zero(t, got.failed)
	assert.False(t, res.Validated)
	assert.Empty(t, res.Verdicts)
	assert.True(t, res.CanSubmit())
}

func TestSubmitUnregisteredElementsAreValid(t *testing.T) {
	t.Parallel()

	title := element.NewLabel("title")
	free := element.NewTextInput("free", "")
	root := element.NewBox("", title, free)

	var got calls
	f, err := form.New(root, got.options()...)
	require.NoError(t, err)

	res, err := f.Submit(element.NewSubmitEvent())
	require.NoError(t, err)

	assert.True(t, res.Validated)
	assert.Equal(t, []form.Verdict{
		{Element: title, Valid: true},
		{Element: free, Valid: true},
	}, res.Verdicts)
	assert.Equal(t, 1, got.submit)
}

func TestSubmitIgnoresEntriesOutsideTree(t *testing.T) {
	t.Parallel()

	shown := element.NewTextInput("shown", "ok")
	hidden := element.NewTextInput("hidden", "")
	root := element.NewBox("", shown)

	var got calls
	f, err := form.New(root, got.options()...)
	require.NoError(t, err)
	attach(t, f, shown, rules.Required(""))
	attach(t, f, hidden, rules.Required(""))

	res, err := f.Submit(element.NewSubmitEvent())
	require.NoError(t, err)
	assert.True(t, res.CanSubmit())
	assert.Equal(t, 1, got.submit)
}

func TestSubmitIsIdempotent(t *testing.T) {
	t.Parallel()

	a := element.NewTextInput("a", "ok")
	b := element.NewTextInput("b", "")
	c := element.NewTextInput("c", "")
	root := element.NewBox("", a, b, c)

	f, err := form.New(root)
	require.NoError(t, err)
	attach(t, f, a, rules.Required(""))
	attach(t, f, b, rules.Required(""))
	attach(t, f, c, rules.Required(""))

	first, err := f.Submit(element.NewSubmitEvent())
	require.NoError(t, err)
	second, err := f.Submit(element.NewSubmitEvent())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	el, _ := second.FirstInvalid()
	assert.Same(t, b, el)
	assert.Equal(t, 2, b.Selected())
	assert.Zero(t, c.Selected())
}

func TestSubmitAttentionSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       []form.Option
		wantSelect int
		wantScroll int
	}{
		{name: "defaults", wantSelect: 1, wantScroll: 1},
		{name: "select disabled", opts: []form.Option{form.WithSelectOnError(false)}, wantScroll: 1},
		{name: "scroll disabled", opts: []form.Option{form.WithScrollOnError(false)}, wantSelect: 1},
		{name: "both disabled via config", opts: []form.Option{form.WithConfig(form.Config{})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := element.NewTextInput("x", "")
			var got calls
			f, err := form.New(element.NewBox("", in), append(got.options(), tt.opts...)...)
			require.NoError(t, err)
			attach(t, f, in, rules.Required(""))

			_, err = f.Submit(element.NewSubmitEvent())
			require.NoError(t, err)

			assert.Equal(t, 1, got.failed)
			assert.Equal(t, tt.wantSelect, in.Selected())
			n, _ := in.Scrolled()
			assert.Equal(t, tt.wantScroll, n)
		})
	}
}

func TestSubmitSkipsUnsupportedAttention(t *testing.T) {
	t.Parallel()

	in := plainInput{Input: element.NewTextInput("x", "")}
	var got calls
	f, err := form.New(element.NewBox("", in), got.options()...)
	require.NoError(t, err)
	attach(t, f, in, rules.Required(""))

	var res form.Result
	require.NotPanics(t, func() {
		res, err = f.Submit(element.NewSubmitEvent())
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.failed)
	assert.False(t, res.CanSubmit())
}

func TestReattachIsFreshRegistration(t *testing.T) {
	t.Parallel()

	stale := element.NewTextInput("email", "")
	root := element.NewBox("", stale)
	var got calls
	f, err := form.New(root, got.options()...)
	require.NoError(t, err)
	ctl := attach(t, f, stale, rules.Required(""))

	ctl.Detach()
	root.Remove(stale)
	assert.Zero(t, f.Tracked())

	fresh := element.NewTextInput("email", "me@example.com")
	root.Append(fresh)
	attach(t, f, fresh, rules.Required(""))

	res, err := f.Submit(element.NewSubmitEvent())
	require.NoError(t, err)
	assert.True(t, res.CanSubmit())
	assert.Equal(t, 1, got.submit)
}

func TestFieldRevalidatesOnChange(t *testing.T) {
	t.Parallel()

	in := element.NewTextInput("", "")
	var got calls
	f, err := form.New(element.NewBox("", in), append(got.options(), form.WithIdentity(identity.Sequence("in")))...)
	require.NoError(t, err)
	ctl := attach(t, f, in, rules.Required(""))
	assert.Equal(t, "in-1", in.ID())

	_, err = f.Submit(element.NewSubmitEvent())
	require.NoError(t, err)
	require.Equal(t, 1, got.failed)
	require.True(t, ctl.HasError())

	in.SetValue("filled")
	assert.False(t, ctl.HasError())

	_, err = f.Submit(element.NewSubmitEvent())
	require.NoError(t, err)
	assert.Equal(t, 1, got.submit)
}

func TestClose(t *testing.T) {
	t.Parallel()

	a := element.NewTextInput("a", "")
	b := element.NewTextInput("b", "x")
	f, err := form.New(element.NewBox("", a, b))
	require.NoError(t, err)
	attach(t, f, a, rules.Required(""))
	ctlB := attach(t, f, b, rules.Required(""))
	require.Equal(t, 2, f.Tracked())

	f.Close()
	f.Close()

	assert.Zero(t, f.Tracked(), "no entry outlives the form")

	// A late change from a still attached input must not resurrect entries.
	b.SetValue("")
	assert.Zero(t, f.Tracked())

	ev := element.NewSubmitEvent()
	_, err = f.Submit(ev)
	require.ErrorIs(t, err, form.ErrClosed)
	assert.True(t, ev.DefaultPrevented(), "a closed form still blocks the native submission")

	_, err = f.Field()
	require.ErrorIs(t, err, form.ErrClosed)

	ctlB.Detach()
	err = ctlB.Attach(element.NewTextInput("c", ""))
	require.ErrorIs(t, err, field.ErrNoRegistry)
}

func TestSubmitNilEvent(t *testing.T) {
	t.Parallel()

	f, err := form.New(element.NewBox(""))
	require.NoError(t, err)
	_, err = f.Submit(nil)
	require.ErrorIs(t, err, form.ErrNilEvent)
}

func TestWithFieldOptions(t *testing.T) {
	t.Parallel()

	var faults []error
	in := element.NewTextInput("x", "")
	f, err := form.New(element.NewBox("", in),
		form.WithFieldOptions(field.WithFaultHandler(func(err error) { faults = append(faults, err) })),
	)
	require.NoError(t, err)

	broken := func(v string) rules.Result {
		if v == "boom" {
			return nil
		}
		return rules.Pass()
	}
	attach(t, f, in, broken)

	in.SetValue("boom")
	require.Len(t, faults, 1)
	assert.True(t, rules.IsRuleFault(faults[0]))
}
