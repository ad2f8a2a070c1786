// Package field implements the per-input validation controller.
//
// A Controller owns one input's validation state. It is created with the
// Registrar of the form it belongs to and the input's ordered rules, then
// attached to a concrete element:
//
//	ctl, err := field.New(form.Registrar(), []rules.Rule{rules.Required("")})
//	if err != nil {
//	    return err // no registrar: the controller is not inside a form
//	}
//	detach, err := ctl.Ref(input)
//	defer detach()
//
// # Lifecycle
//
// Unattached -> Attached -> Detached, and Detached -> Attached for re-use.
// Attaching assigns an id when the element has none, validates once, and
// subscribes to the element's change notifications so every later mutation
// revalidates without any explicit event wiring. Detaching cancels the
// subscription and removes the registry entry exactly once.
//
// # Visible errors
//
// A failing run updates ErrorMessage at once and publishes valid=false with a
// recheck callback, but HasError stays false until the form invokes that
// callback on submit. Users see messages change while typing only after a
// first submit attempt. A passing run clears the message and the visible
// flag. Inputs without rules never report HasError.
//
// # Faults
//
// A malformed rule makes Attach and Revalidate return a *rules.RuleFault.
// Runs triggered by change notifications have no caller to return to; their
// faults go to the handler set with WithFaultHandler, which by default logs
// and panics.
package field
