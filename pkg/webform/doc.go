// Package webform serves a compiled form definition over HTTP.
//
// Every request mounts a fresh form.Coordinator over an in-memory element
// tree with one input per field, feeds the submitted values into the inputs
// and lets the field controllers revalidate through their change
// subscriptions. The coordinator is closed before the response is written, so
// no validation state outlives a request.
//
// Routes, relative to where the Host is mounted:
//
//	GET  /          render the page
//	POST /validate  datastar only: patch the live messages signal
//	POST /          submit
//
// Submits from datastar receive signal patches plus a script that selects
// and scrolls to the first invalid input. Plain HTML posts get the page back
// with status 422 and autofocus on the first invalid input. Accepted values
// go to the SubmitFunc, which may return FieldErrors for failures only the
// server can detect.
//
//	def, _ := schema.LoadFile("signup.yaml")
//	h, err := webform.New(def, webform.WithSubmit(func(ctx context.Context, v webform.Values) (string, error) {
//	    return "/welcome", users.Create(ctx, v.Get("email"))
//	}))
//	r.Mount("/signup", h)
package webform
