// Package element describes the host UI surface the validation core talks to,
// and ships an in-memory host implementing it.
//
// The core never touches a real widget toolkit. It needs an identified element
// (Element), an input that exposes its value and a change notification
// (Input), two optional attention capabilities (Selecter and Scroller), a way
// to list the elements of a form in document order (Tree) and a submission
// event that can be cancelled (Event).
//
// Input.Observe is the revalidation trigger. Hosts must invoke the callback
// synchronously whenever the input's value or attributes change, whatever
// caused the change: user edits, programmatic assignment or attribute updates.
//
// # In-memory host
//
// TextInput, Label and Box model a small document: Box is an ordered
// container, TextInput fires its observers on every mutation and records
// attention calls, Label is an identified element with no attention
// capability. They back the tests of the core packages and the server-side
// virtual forms in pkg/webform.
//
//	email := element.NewTextInput("email", "")
//	root := element.NewBox("signup", element.NewLabel("email-label"), email)
//	cancel := email.Observe(func() { fmt.Println("changed:", email.Value()) })
//	email.SetValue("a@b.co") // prints "changed: a@b.co"
//	cancel()
package element
