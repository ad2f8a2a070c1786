package element

// Element is anything carrying an identifier attribute. An empty ID means the
// element is not identified.
type Element interface {
	ID() string
}

// Input is an element whose value is validated.
type Input interface {
	Element
	SetID(id string)
	Value() string
	// Observe registers fn to run synchronously after every change of the
	// input's value or attributes. The returned func removes the subscription.
	Observe(fn func()) (cancel func())
}

// Selecter highlights an element's content.
type Selecter interface {
	Select()
}

// Scroller brings an element into view.
type Scroller interface {
	ScrollIntoView(opts ScrollOptions)
}

// ScrollOptions mirrors the browser scrollIntoView options.
type ScrollOptions struct {
	Behavior string
	Block    string
	Inline   string
}

// CenteredSmooth scrolls smoothly so the element ends up centred on both axes.
var CenteredSmooth = ScrollOptions{Behavior: "smooth", Block: "center", Inline: "center"}

// Tree lists the elements of a subtree in document order.
type Tree interface {
	Elements() []Element
}

// Event is a submission event whose default action can be cancelled.
type Event interface {
	PreventDefault()
}
