package stagerules

import (
	"shipping/internal/core/domain/model/tariff"
)

// FieldType names the widget class a field renders as. The core does not
// render anything; the type travels with the rule so presentation layers can.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldSelect   FieldType = "select"
	FieldNumber   FieldType = "number"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
)

// Validation carries the constraints a field's current value must satisfy.
// Nil pointer members mean the constraint is not active for this resolution.
type Validation struct {
	MinLength    *int
	MaxLength    *int
	Pattern      string
	Min          *float64
	Max          *float64
	ErrorMessage string
}

// Option is one entry of a select field's dynamic option list.
type Option struct {
	Value string
	Label string
}

// FieldRule describes one form field's constraints as resolved for the
// current form data. Rules are computed values; they are never persisted and
// never shared between resolutions.
type FieldRule struct {
	Type     FieldType
	Label    string
	Required bool
	Visible  bool
	Disabled bool

	// Checked marks a checkbox that is forced on (used together with
	// Disabled for the forced-signature rule).
	Checked bool

	Validation *Validation
	Options    []Option

	// AllowedValues restricts a radio field to a subset of its values.
	AllowedValues []string
	DefaultValue  string
}

// CardRuleSet is the resolved rule collection for one stage: the per-field
// rules plus any cross-field validation errors (for example the restricted
// destination block on the receiver stage).
//
// A CardRuleSet for stage N is only meaningful once stage N-1 reports
// complete; the Resolver's pipeline encodes that ordering.
type CardRuleSet struct {
	Stage            Stage
	Fields           map[string]FieldRule
	CrossFieldErrors map[string]string

	// Services carries the filtered candidate services on the service stage
	// (nil for every other stage).
	Services []tariff.Service
}

// HasErrors reports whether the rule set carries cross-field errors.
func (c CardRuleSet) HasErrors() bool {
	return len(c.CrossFieldErrors) > 0
}

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
