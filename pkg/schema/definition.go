package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formrules/pkg/form"
	"github.com/dmitrymomot/formrules/pkg/rules"
	"github.com/dmitrymomot/formrules/pkg/sanitizer"
)

// Definition describes one form.
type Definition struct {
	Name          string     `yaml:"name"`
	SelectOnError *bool      `yaml:"select_on_error,omitempty"`
	ScrollOnError *bool      `yaml:"scroll_on_error,omitempty"`
	Fields        []FieldDef `yaml:"fields"`
}

// FieldDef describes one input.
type FieldDef struct {
	ID          string    `yaml:"id"`
	Label       string    `yaml:"label,omitempty"`
	Type        string    `yaml:"type,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty"`
	Sanitize    []string  `yaml:"sanitize,omitempty"`
	Rules       []RuleDef `yaml:"rules,omitempty"`
}

// RuleDef names a catalog rule with its arguments and message override.
type RuleDef struct {
	Name    string   `yaml:"rule"`
	Args    []string `yaml:"args,omitempty"`
	Message string   `yaml:"message,omitempty"`
}

// InputType returns the HTML input type, "text" when unset.
func (f FieldDef) InputType() string {
	if f.Type == "" {
		return "text"
	}
	return f.Type
}

// Parse decodes a definition from YAML. Unknown keys are rejected.
func Parse(data []byte) (*Definition, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a definition from r.
func Decode(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, errors.Join(ErrInvalidDefinition, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadFile reads and parses the definition at path.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}
	return Parse(data)
}

// Field ids end up inside client expressions, so they must be identifiers.
var fieldIDPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks that every field has a unique identifier-safe id.
func (d *Definition) Validate() error {
	seen := make(map[string]struct{}, len(d.Fields))
	for i, f := range d.Fields {
		if f.ID == "" {
			return fmt.Errorf("%w: field #%d", ErrEmptyFieldID, i)
		}
		if !fieldIDPattern.MatchString(f.ID) {
			return fmt.Errorf("%w: %q", ErrInvalidFieldID, f.ID)
		}
		if _, ok := seen[f.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateField, f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return nil
}

// FormConfig applies the definition's overrides on top of base.
func (d *Definition) FormConfig(base form.Config) form.Config {
	if d.SelectOnError != nil {
		base.SelectOnError = *d.SelectOnError
	}
	if d.ScrollOnError != nil {
		base.ScrollOnError = *d.ScrollOnError
	}
	return base
}

// Field is a compiled field definition. Sanitize is never nil.
type Field struct {
	Def      FieldDef
	Sanitize sanitizer.Func
	Rules    []rules.Rule
}

// Compile resolves every rule through cat. A nil cat means DefaultCatalog.
func (d *Definition) Compile(cat Catalog) ([]Field, error) {
	if cat == nil {
		cat = DefaultCatalog()
	}

	out := make([]Field, 0, len(d.Fields))
	for _, fd := range d.Fields {
		clean, err := sanitizer.Lookup(fd.Sanitize...)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.ID, err)
		}

		rs := make([]rules.Rule, 0, len(fd.Rules))
		for _, rd := range fd.Rules {
			rule, err := cat.Build(rd)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", fd.ID, err)
			}
			rs = append(rs, rule)
		}
		out = append(out, Field{Def: fd, Sanitize: clean, Rules: rs})
	}
	return out, nil
}
