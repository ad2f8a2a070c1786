package webform

import (
	"github.com/dmitrymomot/formrules/pkg/element"
	"github.com/dmitrymomot/formrules/pkg/field"
	"github.com/dmitrymomot/formrules/pkg/form"
)

// Values are submitted field values keyed by field id.
type Values map[string]string

// Get returns the value for id, empty when missing.
func (v Values) Get(id string) string {
	return v[id]
}

// attention records the primitives the coordinator invoked on an input.
type attention struct {
	ID     string
	Select bool
	Scroll *element.ScrollOptions
}

// outcome is the state of one request's form after validation.
type outcome struct {
	Fields    []FieldView
	Submitted bool
	Accepted  bool
	Attention *attention
}

// run mounts a coordinator for the request, feeds values and optionally
// submits. Everything mounted here is torn down before it returns.
func (h *Host) run(values Values, submit bool) (*outcome, error) {
	root := element.NewBox(h.formID())

	var fault error
	coord, err := form.New(root,
		form.WithName(h.def.Name),
		form.WithConfig(h.formCfg),
		form.WithLogger(h.logger),
		form.WithFieldOptions(field.WithFaultHandler(func(err error) {
			if fault == nil {
				fault = err
			}
		})),
	)
	if err != nil {
		return nil, err
	}
	defer coord.Close()

	inputs := make([]*element.TextInput, len(h.fields))
	ctls := make([]*field.Controller, len(h.fields))
	for i, f := range h.fields {
		in := element.NewTextInput(f.Def.ID, "")
		root.Append(in)

		ctl, err := coord.Field(f.Rules...)
		if err != nil {
			return nil, err
		}
		detach, err := ctl.Ref(in)
		if err != nil {
			return nil, err
		}
		defer detach()

		inputs[i], ctls[i] = in, ctl
	}

	// Values arrive through the inputs so controllers revalidate the same way
	// they would on user edits.
	for i, f := range h.fields {
		inputs[i].SetValue(values.Get(f.Def.ID))
	}
	if fault != nil {
		return nil, fault
	}

	out := &outcome{Fields: make([]FieldView, len(h.fields))}
	if submit {
		res, err := coord.Submit(element.NewSubmitEvent())
		if err != nil {
			return nil, err
		}
		out.Submitted = true
		out.Accepted = res.CanSubmit()
	}

	for i, f := range h.fields {
		snap := ctls[i].Snapshot()
		out.Fields[i] = FieldView{
			ID:          f.Def.ID,
			Label:       f.Def.Label,
			Type:        f.Def.InputType(),
			Placeholder: f.Def.Placeholder,
			Value:       values.Get(f.Def.ID),
			Message:     snap.ErrorMessage,
			Failing:     snap.HasMessage,
			HasError:    snap.HasError,
		}
		if a := attentionOf(inputs[i]); a != nil && out.Attention == nil {
			out.Attention = a
			out.Fields[i].Autofocus = a.Select
		}
	}
	return out, nil
}

func attentionOf(in *element.TextInput) *attention {
	selected := in.Selected() > 0
	n, opts := in.Scrolled()
	if !selected && n == 0 {
		return nil
	}
	a := &attention{ID: in.ID(), Select: selected}
	if n > 0 {
		a.Scroll = &opts
	}
	return a
}

// reject applies server side failures to an accepted outcome.
func (h *Host) reject(out *outcome, errs FieldErrors) {
	out.Accepted = false
	for i := range out.Fields {
		fv := &out.Fields[i]
		if !errs.Has(fv.ID) {
			continue
		}
		fv.Message, fv.Failing, fv.HasError = errs.Get(fv.ID), true, true
		if out.Attention != nil {
			continue
		}

		fv.Autofocus = h.formCfg.SelectOnError
		out.Attention = &attention{ID: fv.ID, Select: h.formCfg.SelectOnError}
		if h.formCfg.ScrollOnError {
			opts := element.CenteredSmooth
			out.Attention.Scroll = &opts
		}
	}
}
