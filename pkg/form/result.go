package form

import "github.com/dmitrymomot/formrules/pkg/element"

// Verdict is the validity of one identified element at submit time.
type Verdict struct {
	Element element.Element
	Valid   bool
}

// Result is the outcome of one submit attempt. Verdicts follow document
// order. Validated is false when the tree had no identified elements and
// aggregation was skipped.
type Result struct {
	Verdicts  []Verdict
	Validated bool
}

// CanSubmit reports whether every verdict is valid.
func (r Result) CanSubmit() bool {
	for _, v := range r.Verdicts {
		if !v.Valid {
			return false
		}
	}
	return true
}

// FirstInvalid returns the first invalid element in document order.
func (r Result) FirstInvalid() (element.Element, bool) {
	for _, v := range r.Verdicts {
		if !v.Valid {
			return v.Element, true
		}
	}
	return nil, false
}

// InvalidIDs returns the ids of all invalid elements in document order.
func (r Result) InvalidIDs() []string {
	var ids []string
	for _, v := range r.Verdicts {
		if !v.Valid {
			ids = append(ids, v.Element.ID())
		}
	}
	return ids
}
