package element

import (
	"slices"
	"sync"
)

// TextInput is an in-memory Input. Every mutation notifies observers after
// the internal lock is released.
type TextInput struct {
	mu        sync.Mutex
	id        string
	value     string
	attrs     map[string]string
	observers []*observer

	selected   int
	scrolled   int
	lastScroll ScrollOptions
}

type observer struct {
	fn func()
}

var (
	_ Input    = (*TextInput)(nil)
	_ Selecter = (*TextInput)(nil)
	_ Scroller = (*TextInput)(nil)
)

// NewTextInput creates an input. id may be empty.
func NewTextInput(id, value string) *TextInput {
	return &TextInput{id: id, value: value, attrs: make(map[string]string)}
}

// ID returns the id attribute.
func (in *TextInput) ID() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.id
}

// SetID changes the id attribute and notifies observers.
func (in *TextInput) SetID(id string) {
	in.mutate(func() { in.id = id })
}

// Value returns the current value.
func (in *TextInput) Value() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value
}

// SetValue replaces the value and notifies observers.
func (in *TextInput) SetValue(v string) {
	in.mutate(func() { in.value = v })
}

// Attr returns an attribute value.
func (in *TextInput) Attr(name string) (string, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	v, ok := in.attrs[name]
	return v, ok
}

// SetAttr sets an attribute and notifies observers.
func (in *TextInput) SetAttr(name, value string) {
	in.mutate(func() { in.attrs[name] = value })
}

// Observe subscribes fn to every change and returns the unsubscribe func.
func (in *TextInput) Observe(fn func()) func() {
	obs := &observer{fn: fn}

	in.mu.Lock()
	in.observers = append(in.observers, obs)
	in.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			in.mu.Lock()
			defer in.mu.Unlock()
			in.observers = slices.DeleteFunc(in.observers, func(o *observer) bool { return o == obs })
		})
	}
}

// Observers returns the number of active subscriptions.
func (in *TextInput) Observers() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.observers)
}

// Select records a selection request.
func (in *TextInput) Select() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.selected++
}

// Selected returns how many times Select was called.
func (in *TextInput) Selected() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.selected
}

// ScrollIntoView records a scroll request.
func (in *TextInput) ScrollIntoView(opts ScrollOptions) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.scrolled++
	in.lastScroll = opts
}

// Scrolled returns how many times ScrollIntoView was called and the last options used.
func (in *TextInput) Scrolled() (int, ScrollOptions) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.scrolled, in.lastScroll
}

func (in *TextInput) mutate(change func()) {
	in.mu.Lock()
	change()
	observers := slices.Clone(in.observers)
	in.mu.Unlock()

	for _, o := range observers {
		o.fn()
	}
}

// Label is an identified element with no value and no attention capability.
type Label struct {
	id string
}

// NewLabel creates a Label.
func NewLabel(id string) *Label {
	return &Label{id: id}
}

// ID returns the label's id.
func (l *Label) ID() string { return l.id }

// Box is an ordered container. Nested boxes are walked depth first.
type Box struct {
	mu       sync.RWMutex
	id       string
	children []Element
}

var _ Tree = (*Box)(nil)

// NewBox creates a container holding children in order.
func NewBox(id string, children ...Element) *Box {
	return &Box{id: id, children: children}
}

// ID returns the container's id.
func (b *Box) ID() string { return b.id }

// Append adds children at the end.
func (b *Box) Append(children ...Element) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.children = append(b.children, children...)
}

// Remove detaches child from this box. It reports whether child was found.
func (b *Box) Remove(child Element) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.Index(b.children, child)
	if i < 0 {
		return false
	}
	b.children = slices.Delete(b.children, i, i+1)
	return true
}

// Elements returns every descendant in document order, the box itself excluded.
func (b *Box) Elements() []Element {
	var out []Element
	b.walk(func(el Element) { out = append(out, el) })
	return out
}

func (b *Box) walk(visit func(Element)) {
	b.mu.RLock()
	children := slices.Clone(b.children)
	b.mu.RUnlock()

	for _, child := range children {
		visit(child)
		if nested, ok := child.(*Box); ok {
			nested.walk(visit)
		}
	}
}

// SubmitEvent is an in-memory Event.
type SubmitEvent struct {
	mu        sync.Mutex
	prevented bool
}

// NewSubmitEvent creates an event that has not been cancelled.
func NewSubmitEvent() *SubmitEvent {
	return &SubmitEvent{}
}

// PreventDefault cancels the native submission.
func (e *SubmitEvent) PreventDefault() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *SubmitEvent) DefaultPrevented() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prevented
}
