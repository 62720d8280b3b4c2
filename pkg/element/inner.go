package element

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// RenderInnerHTML implements Hooks.
//
// Selects render their options, textareas their escaped value, and the
// checkbox-group and radio-group pseudo-types one input per option. Ordered
// children are appended to that content; without children the inner HTML
// override is appended instead. Other elements without either have no
// content.
func (BaseHooks) RenderInnerHTML(ctx context.Context, e *Element) (Result, error) {
	r := NoContent()

	switch e.typ {
	case "select":
		html, err := renderSelectOptions(ctx, e.valueOrDefault(), OptionPairs(e.Get(Options)), e.Get(OptionsDisabled))
		if err != nil {
			return Empty(), err
		}
		r = HTML(html)
	case "textarea":
		r = HTML(Escape(Stringify(e.valueOrDefault())))
	case TypeCheckboxGroup:
		html, err := renderCheckboxGroup(ctx, e)
		if err != nil {
			return Empty(), err
		}
		r = HTML(html)
	case TypeRadioGroup:
		html, err := renderRadioGroup(ctx, e)
		if err != nil {
			return Empty(), err
		}
		r = HTML(html)
	}

	if e.children.Len() > 0 {
		html, err := e.hooks.RenderChildren(ctx, e, e.OrderedChildren())
		if err != nil {
			return Empty(), err
		}
		return r.Append(html), nil
	}
	if e.innerHTML != nil {
		return r.Append(*e.innerHTML), nil
	}
	return r, nil
}

// RenderChildren implements Hooks. Children never fail: an element child
// that cannot render is replaced by its rendered error.
func (BaseHooks) RenderChildren(ctx context.Context, _ *Element, children *ordered.Map[string, any]) (string, error) {
	var b strings.Builder
	for _, child := range children.Values() {
		b.WriteString(RenderChild(ctx, child))
	}
	return b.String(), nil
}

// RenderChild renders a single child. Strings are trusted HTML.
func RenderChild(ctx context.Context, child any) string {
	switch c := child.(type) {
	case nil:
		return ""
	case string:
		return c
	case *Element:
		return c.StringContext(ctx)
	case templ.Component:
		var buf bytes.Buffer
		if err := c.Render(ctx, &buf); err != nil {
			s := SessionFrom(ctx)
			s.Logger().Error("component render failed", "error", err)
			return s.Exceptions().Render(err)
		}
		return buf.String()
	case fmt.Stringer:
		return c.String()
	}
	return Stringify(child)
}

func (e *Element) valueOrDefault() any {
	if v := e.Get("value"); v != nil {
		return v
	}
	return e.Get(DefaultValue)
}

// OptionPairs returns the entries of an options value: an ordered map,
// a slice (keys are indexes) or a plain map (keys sorted).
func OptionPairs(options any) []ordered.Pair[string, any] {
	switch o := options.(type) {
	case nil:
		return nil
	case *ordered.Map[string, any]:
		return o.Pairs()
	case *ordered.Map[string, string]:
		pairs := make([]ordered.Pair[string, any], 0, o.Len())
		for _, p := range o.Pairs() {
			pairs = append(pairs, ordered.Pair[string, any]{Key: p.Key, Value: p.Value})
		}
		return pairs
	case []string:
		pairs := make([]ordered.Pair[string, any], 0, len(o))
		for i, label := range o {
			pairs = append(pairs, ordered.Pair[string, any]{Key: Stringify(i), Value: label})
		}
		return pairs
	case []any:
		pairs := make([]ordered.Pair[string, any], 0, len(o))
		for i, label := range o {
			pairs = append(pairs, ordered.Pair[string, any]{Key: Stringify(i), Value: label})
		}
		return pairs
	case map[string]string:
		keys := make([]string, 0, len(o))
		for k := range o {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]ordered.Pair[string, any], 0, len(o))
		for _, k := range keys {
			pairs = append(pairs, ordered.Pair[string, any]{Key: k, Value: o[k]})
		}
		return pairs
	case map[string]any:
		keys := make([]string, 0, len(o))
		for k := range o {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]ordered.Pair[string, any], 0, len(o))
		for _, k := range keys {
			pairs = append(pairs, ordered.Pair[string, any]{Key: k, Value: o[k]})
		}
		return pairs
	}
	return nil
}

// isOptionGroup reports whether an option label is itself a set of options.
func isOptionGroup(label any) bool {
	switch label.(type) {
	case *ordered.Map[string, any], *ordered.Map[string, string], map[string]string, map[string]any:
		return true
	}
	return false
}

// matches reports whether key is selected: equal to the string form of
// selected, or a member of it when selected is a slice.
func matches(selected any, key string) bool {
	switch s := selected.(type) {
	case nil:
		return false
	case []string:
		for _, v := range s {
			if v == key {
				return true
			}
		}
		return false
	case []any:
		for _, v := range s {
			if v != nil && Stringify(v) == key {
				return true
			}
		}
		return false
	case bool:
		return Stringify(s) == key
	}
	return Stringify(selected) == key
}

// keyed reports whether a map-like value holds a truthy entry for key.
// Slices are treated as a list of keys.
func keyed(values any, key string) bool {
	switch v := values.(type) {
	case nil:
		return false
	case *ordered.Map[string, any]:
		x, _ := v.Get(key)
		return Truthy(x)
	case map[string]any:
		return Truthy(v[key])
	case map[string]bool:
		return v[key]
	case map[string]string:
		return Truthy(v[key])
	case []string, []any:
		return matches(v, key)
	}
	return false
}

// optionLabel translates labels starting with "." in the option scope.
func optionLabel(ctx context.Context, label string) string {
	if rest, ok := strings.CutPrefix(label, "."); ok && rest != "" {
		return Translate(ctx, rest, nil, translateOptions(ScopeOption))
	}
	return label
}

func renderSelectOptions(ctx context.Context, selected any, options []ordered.Pair[string, any], disabled any) (string, error) {
	var b strings.Builder
	for _, p := range options {
		key, label := p.Key, p.Value

		if option, ok := label.(*Element); ok {
			if option.Get("value") == nil {
				option.Set("value", key)
			}
			if matches(selected, key) {
				option.Set("selected", true)
			}
			html, err := option.HTML(ctx)
			if err != nil {
				return "", err
			}
			b.WriteString(html)
			continue
		}

		if isOptionGroup(label) {
			group, err := renderSelectOptions(ctx, selected, OptionPairs(label), disabled)
			if err != nil {
				return "", err
			}
			b.WriteString(`<optgroup label="`)
			b.WriteString(EscapeAttr(optionLabel(ctx, key)))
			b.WriteString(`">`)
			b.WriteString(group)
			b.WriteString("</optgroup>")
			continue
		}

		attributes := ordered.New[string, any]()
		attributes.Set("value", key)
		attributes.Set("selected", matches(selected, key))
		attributes.Set("disabled", keyed(disabled, key))
		rendered, err := RenderAttributes(attributes)
		if err != nil {
			return "", err
		}

		text := "&nbsp;"
		if s := Stringify(label); s != "" {
			text = Escape(optionLabel(ctx, s))
		}

		b.WriteString("<option")
		b.WriteString(rendered)
		b.WriteByte('>')
		b.WriteString(text)
		b.WriteString("</option>")
	}
	return b.String(), nil
}

func renderCheckboxGroup(ctx context.Context, e *Element) (string, error) {
	name := Stringify(e.Get("name"))
	selected := e.valueOrDefault()
	disabled := Truthy(e.Get("disabled"))
	readonly := e.Get("readonly")
	optionsDisabled := e.Get(OptionsDisabled)

	var b strings.Builder
	for _, p := range OptionPairs(e.Get(Options)) {
		checkbox := New(TypeCheckbox,
			A(Label, optionLabel(ctx, Stringify(p.Value))),
			A("name", name+"["+p.Key+"]"),
			A("checked", keyed(selected, p.Key)),
			A("disabled", disabled || keyed(optionsDisabled, p.Key)),
			A("readonly", readonly),
		)
		html, err := checkbox.HTML(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(html)
	}
	return b.String(), nil
}

func renderRadioGroup(ctx context.Context, e *Element) (string, error) {
	name := e.Get("name")
	selected := e.valueOrDefault()
	disabled := Truthy(e.Get("disabled"))
	readonly := e.Get("readonly")
	optionsDisabled := e.Get(OptionsDisabled)

	var b strings.Builder
	for _, p := range OptionPairs(e.Get(Options)) {
		radio := New(TypeRadio,
			A(Label, optionLabel(ctx, Stringify(p.Value))),
			A("name", name),
			A("value", p.Key),
			A("checked", selected != nil && Stringify(selected) == p.Key),
			A("disabled", disabled || keyed(optionsDisabled, p.Key)),
			A("readonly", readonly),
		)
		html, err := radio.HTML(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(html)
	}
	return b.String(), nil
}
