package widget

import (
	"context"
	"sort"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
	"github.com/brickrouge-dev/brickrouge/pkg/validation"
)

// Form attributes.
const (
	// FormHiddens holds hidden values: an *ordered.Map[string, any],
	// map[string]any or map[string]string.
	FormHiddens = "#form-hiddens"

	// FormValues holds the values injected into the named descendants,
	// looked up with validation.Lookup.
	FormValues = "#form-values"

	// FormDisabled disables every named descendant.
	FormDisabled = "#form-disabled"
)

// Form is a form element with its validation state.
type Form struct {
	*element.Element

	// Errors are rendered as a leading alert and mark the failing
	// controls with the error state.
	Errors *validation.Errors

	// Validator validates submitted values. When nil the rules are
	// derived from the form with validation.FromElement.
	Validator validation.FormValidator
}

type formHooks struct {
	widgetHooks
	form *Form
}

func (*formHooks) Kind() string { return "form" }

// AlterAttributes implements element.Hooks. Methods other than GET and
// POST are posted, the requested method travels in a _method hidden input.
func (h *formHooks) AlterAttributes(ctx context.Context, e *element.Element, attributes *ordered.Map[string, any]) *ordered.Map[string, any] {
	attributes = h.BaseHooks.AlterAttributes(ctx, e, attributes)
	if method := overriddenMethod(e); method != "" {
		attributes.Set("method", "POST")
	}
	return attributes
}

func overriddenMethod(e *element.Element) string {
	method := strings.ToUpper(e.GetString("method"))
	switch method {
	case "", "GET", "POST":
		return ""
	}
	return method
}

// RenderInnerHTML injects values, disabled flags and error states into
// the named descendants, then renders the hidden inputs, the error alert,
// the children and the actions. A form with neither children nor actions
// renders nothing.
func (h *formHooks) RenderInnerHTML(ctx context.Context, e *element.Element) (element.Result, error) {
	f := h.form
	f.alterDescendants()

	children, err := h.RenderChildren(ctx, e, e.OrderedChildren())
	if err != nil {
		return element.Empty(), err
	}

	var actions string
	if a := defaultActions(e.Get(Actions)); a != nil {
		actions, err = a.HTML(ctx)
		if err != nil {
			return element.Empty(), err
		}
	}

	if children == "" && actions == "" {
		return element.Empty(), nil
	}

	var b strings.Builder
	b.WriteString(f.renderHiddens())
	if f.Errors.Len() > 0 {
		alert, err := NewAlert(f.Errors, element.A(AlertContext, ContextDanger)).HTML(ctx)
		if err != nil {
			return element.Empty(), err
		}
		b.WriteString(alert)
	}
	b.WriteString(children)
	b.WriteString(actions)
	return element.HTML(b.String()), nil
}

func (f *Form) alterDescendants() {
	values := f.Get(FormValues)
	disabled := element.Truthy(f.Get(FormDisabled))

	element.Walk(f.Element, func(_ string, child *element.Element) bool {
		name := child.GetString("name")
		if name == "" {
			return true
		}

		if values != nil {
			if value, ok := validation.Lookup(values, name); ok {
				injectValue(child, value)
			}
		}
		if disabled {
			child.Set("disabled", true)
		}
		if f.Errors.Has(name) {
			child.Set(element.State, "error")
		}
		return true
	})
}

func injectValue(child *element.Element, value any) {
	typ := child.GetString("type")
	switch {
	case child.Type() == element.TypeCheckbox || typ == "checkbox":
		child.Set("checked", element.Truthy(value))
	case child.Type() == element.TypeRadio || typ == "radio":
		child.Set("checked", element.Stringify(value) == child.GetString("value"))
	case child.TagName() == "button":
	case typ == "file" || typ == "submit" || typ == "password":
	default:
		child.Set("value", value)
	}
}

func (f *Form) renderHiddens() string {
	var pairs []ordered.Pair[string, any]
	if method := overriddenMethod(f.Element); method != "" {
		pairs = append(pairs, ordered.Pair[string, any]{Key: "_method", Value: method})
	}

	switch h := f.Get(FormHiddens).(type) {
	case *ordered.Map[string, any]:
		pairs = append(pairs, h.Pairs()...)
	case map[string]any:
		for _, k := range sortedKeys(h) {
			pairs = append(pairs, ordered.Pair[string, any]{Key: k, Value: h[k]})
		}
	case map[string]string:
		keys := make([]string, 0, len(h))
		for k := range h {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pairs = append(pairs, ordered.Pair[string, any]{Key: k, Value: h[k]})
		}
	}

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(`<input type="hidden" name="`)
		b.WriteString(element.EscapeAttr(p.Key))
		b.WriteString(`" value="`)
		b.WriteString(element.EscapeAttr(element.Stringify(p.Value)))
		b.WriteString(`" />`)
	}
	return b.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate validates values, keeps them as the form values and replaces
// the form errors. It reports whether the values are valid.
func (f *Form) Validate(values any) bool {
	validator := f.Validator
	if validator == nil {
		validator = validation.FromElement(f.Element)
	}
	f.Set(FormValues, values)
	f.Errors = validator.Validate(values, validation.NewErrors())
	return f.Errors.Len() == 0
}

// NewForm creates a form. The action defaults to "", the method to POST
// and the encoding to multipart/form-data.
func NewForm(attrs ...element.Attr) *Form {
	h := &formHooks{}
	all := append([]element.Attr{
		element.A("action", ""),
		element.A("method", "POST"),
		element.A("enctype", "multipart/form-data"),
	}, attrs...)
	f := &Form{Element: element.NewWithHooks(h, "form", all...)}
	h.form = f
	return f
}
