package webform

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FieldView is the render state of one input.
type FieldView struct {
	ID          string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Message     string
	// Failing is true while the value breaks a rule, HasError once the
	// failure should be shown.
	Failing   bool
	HasError  bool
	Autofocus bool
}

// PageData is passed to every view.
type PageData struct {
	Title       string
	FormID      string
	Action      string
	ValidateURL string
	SubmitLabel string
	ScriptURL   string
	Message     string
	// Signals is the initial datastar signal object as JSON.
	Signals string
	Fields  []FieldView
}

// Views renders the host's HTML. Nil members fall back to the defaults.
type Views struct {
	// Page wraps body in a full document.
	Page func(d PageData, body templ.Component) templ.Component
	// Form renders the form element; its id must be d.FormID.
	Form func(d PageData) templ.Component
	// Success replaces the form once values are accepted.
	Success func(d PageData) templ.Component
}

// DefaultViews returns plain HTML views wired for datastar.
func DefaultViews() Views {
	return Views{Page: defaultPage, Form: defaultForm, Success: defaultSuccess}
}

func (v Views) withDefaults() Views {
	d := DefaultViews()
	if v.Page == nil {
		v.Page = d.Page
	}
	if v.Form == nil {
		v.Form = d.Form
	}
	if v.Success == nil {
		v.Success = d.Success
	}
	return v
}

type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err == nil {
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (hw *htmlWriter) render(ctx context.Context, c templ.Component) {
	if hw.err == nil {
		hw.err = c.Render(ctx, hw.w)
	}
}

func defaultPage(d PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		hw.text(d.Title)
		hw.raw(`</title>`)
		if d.ScriptURL != "" {
			hw.raw(`<script type="module"`)
			hw.attr("src", d.ScriptURL)
			hw.raw(`></script>`)
		}
		hw.raw(`</head><body><main><h1>`)
		hw.text(d.Title)
		hw.raw(`</h1>`)
		hw.render(ctx, body)
		hw.raw(`</main></body></html>`)
		return hw.err
	})
}

func defaultForm(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<form`)
		hw.attr("id", d.FormID)
		hw.attr("method", "post")
		hw.attr("action", d.Action)
		hw.attr("data-signals", d.Signals)
		hw.attr("data-on:submit", "@post('"+d.Action+"')")
		hw.raw(` novalidate>`)

		for _, f := range d.Fields {
			hw.raw(`<div class="field">`)
			if f.Label != "" {
				hw.raw(`<label`)
				hw.attr("for", f.ID)
				hw.raw(`>`)
				hw.text(f.Label)
				hw.raw(`</label>`)
			}

			hw.raw(`<input`)
			hw.attr("id", f.ID)
			hw.attr("name", f.ID)
			hw.attr("type", f.Type)
			hw.attr("value", f.Value)
			if f.Placeholder != "" {
				hw.attr("placeholder", f.Placeholder)
			}
			if f.HasError {
				hw.attr("aria-invalid", "true")
				hw.attr("aria-describedby", f.ID+"-error")
			}
			if f.Autofocus {
				hw.raw(` autofocus`)
			}
			hw.attr("data-bind", "values."+f.ID)
			hw.attr("data-on:input__debounce.300ms", "@post('"+d.ValidateURL+"')")
			hw.raw(`>`)

			hw.raw(`<p class="error"`)
			hw.attr("id", f.ID+"-error")
			hw.attr("data-show", "$errors."+f.ID)
			hw.attr("data-text", "$messages."+f.ID)
			hw.raw(`>`)
			if f.HasError {
				hw.text(f.Message)
			}
			hw.raw(`</p></div>`)
		}

		hw.raw(`<button type="submit">`)
		hw.text(d.SubmitLabel)
		hw.raw(`</button></form>`)
		return hw.err
	})
}

func defaultSuccess(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div`)
		hw.attr("id", d.FormID)
		hw.raw(` role="status"><p>`)
		hw.text(d.Message)
		hw.raw(`</p></div>`)
		return hw.err
	})
}
