// Package form coordinates the validation of every input inside one form.
//
// A Coordinator wraps an element.Tree, owns the registry its field
// controllers report to, and decides on submit whether the form may be sent.
//
//	f, err := form.New(root,
//	    form.OnSubmit(func(ev element.Event, res form.Result) { save() }),
//	    form.OnError(func(ev element.Event, res form.Result) { render() }),
//	)
//	email, _ := f.Field(rules.Required(""), rules.Email(""))
//	detach, _ := email.Ref(emailInput)
//	defer detach()
//	defer f.Close()
//
//	res, err := f.Submit(ev)
//
// Submit cancels the event's default action, reads the identified elements
// of the tree in document order and looks each one up in the registry.
// Elements nobody registered count as valid. Every registered element gets
// its recheck callback invoked, which is what turns a silently failing field
// visibly red. When any element is invalid the first one is selected and
// scrolled into view, each step only when enabled and supported by the
// element, and the OnError handler runs. A tree without identified elements
// goes straight to OnSubmit.
//
// Close unmounts the coordinator: the registry is emptied and controllers can
// no longer attach to it.
package form
