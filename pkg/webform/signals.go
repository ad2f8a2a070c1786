package webform

import "encoding/json"

// signals is the datastar state shared with the page.
type signals struct {
	Values   map[string]string `json:"values,omitempty"`
	Messages map[string]string `json:"messages,omitempty"`
	Errors   map[string]bool   `json:"errors,omitempty"`
}

func initialSignals(fields []FieldView) []byte {
	s := signals{
		Values:   make(map[string]string, len(fields)),
		Messages: make(map[string]string, len(fields)),
		Errors:   make(map[string]bool, len(fields)),
	}
	for _, f := range fields {
		s.Values[f.ID] = f.Value
		s.Messages[f.ID] = f.Message
		s.Errors[f.ID] = f.HasError
	}
	return mustJSON(s)
}

// liveSignals updates messages while typing. Visible errors are only
// cleared, never raised: that happens on submit.
func liveSignals(fields []FieldView) []byte {
	s := signals{
		Messages: make(map[string]string, len(fields)),
		Errors:   make(map[string]bool),
	}
	for _, f := range fields {
		s.Messages[f.ID] = f.Message
		if !f.Failing {
			s.Errors[f.ID] = false
		}
	}
	return mustJSON(s)
}

func submitSignals(fields []FieldView) []byte {
	s := signals{
		Messages: make(map[string]string, len(fields)),
		Errors:   make(map[string]bool, len(fields)),
	}
	for _, f := range fields {
		s.Messages[f.ID] = f.Message
		s.Errors[f.ID] = f.HasError
	}
	return mustJSON(s)
}

// mustJSON marshals maps of strings and bools, which cannot fail.
func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
