package element

import "github.com/brickrouge-dev/brickrouge/pkg/ordered"

// Attr is a single attribute passed to a constructor.
type Attr struct {
	Key   string
	Value any
}

// A creates an Attr.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// WithChildren creates the "#children" attribute.
func WithChildren(children ...any) Attr {
	return Attr{Key: Children, Value: children}
}

// KV builds an ordered map from alternating keys and values.
// Keys are converted with Stringify; a trailing key without value is ignored.
//
//	element.KV("1", "One", "2", "Two")
func KV(kv ...any) *ordered.Map[string, any] {
	m := ordered.New[string, any]()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(Stringify(kv[i]), kv[i+1])
	}
	return m
}

// Special attributes.
const (
	Children        = "#children"
	InnerHTML       = "#inner-html"
	DefaultValue    = "#default-value"
	Description     = "#description"
	InlineHelp      = "#inline-help"
	Label           = "#label"
	LabelPosition   = "#label-position"
	Legend          = "#element-legend"
	Options         = "#options"
	OptionsDisabled = "#options-disabled"
	GroupLabel      = "#group-label"
	State           = "#state"
	Validator       = "#validator"
	Weight          = "#weight"
)

// Pseudo-types translated into a real tag at construction.
const (
	TypeCheckbox      = "checkbox"
	TypeCheckboxGroup = "checkbox-group"
	TypeRadio         = "radio"
	TypeRadioGroup    = "radio-group"
)

// Label positions.
const (
	LabelAbove  = "above"
	LabelBelow  = "below"
	LabelBefore = "before"
	LabelAfter  = "after"
)

// Translation scopes.
const (
	ScopeLabel       = "element.label"
	ScopeInlineHelp  = "element.inline_help"
	ScopeDescription = "element.description"
	ScopeLegend      = "element.legend"
	ScopeTitle       = "element.title"
	ScopeOption      = "element.option"
)
