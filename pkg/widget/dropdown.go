package widget

import (
	"context"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// Divider is the option rendering a divider. false does too.
const Divider = "-"

type dropdownMenuHooks struct {
	widgetHooks
}

func (dropdownMenuHooks) Kind() string { return "dropdown-menu" }

func (dropdownMenuHooks) AlterClassNames(_ context.Context, _ *element.Element, names *ordered.Map[string, any]) *ordered.Map[string, any] {
	return prepend(names, "dropdown-menu")
}

// RenderInnerHTML renders one item per option. The item matching the
// value is active. A menu without options renders nothing.
func (dropdownMenuHooks) RenderInnerHTML(ctx context.Context, e *element.Element) (element.Result, error) {
	options, err := menuOptions(e.Get(element.Options))
	if err != nil {
		return element.Empty(), err
	}
	if len(options) == 0 {
		return element.Empty(), nil
	}

	selected := e.Get("value")
	if selected == nil {
		selected = e.Get(element.DefaultValue)
	}

	var b strings.Builder
	for _, p := range options {
		b.WriteString(menuItem(ctx, p.Key, p.Value, selected))
	}
	return element.HTML(b.String()), nil
}

func menuItem(ctx context.Context, key string, option, selected any) string {
	switch o := option.(type) {
	case nil:
		return ""
	case bool:
		if !o {
			return `<li class="divider"></li>`
		}
	case string:
		if o == Divider {
			return `<li class="divider"></li>`
		}
	case *element.Element:
		return "<li>" + o.StringContext(ctx) + "</li>"
	}

	text := element.Stringify(option)
	if strings.HasPrefix(text, ".") {
		text = translate(ctx, text[1:], element.ScopeOption)
	}

	class := ""
	if selected != nil && element.Stringify(selected) == key {
		class = ` class="active"`
	}
	return "<li" + class + `><a href="#" data-key="` + element.EscapeAttr(key) + `">` +
		element.Escape(text) + "</a></li>"
}

// menuOptions validates the shape of options.
func menuOptions(options any) ([]ordered.Pair[string, any], error) {
	switch options.(type) {
	case nil, *ordered.Map[string, any], *ordered.Map[string, string],
		[]string, []any, map[string]string, map[string]any:
		return element.OptionPairs(options), nil
	}
	return nil, unexpectedValue("options cannot be a %T", options)
}

// NewDropdownMenu creates a dropdown menu from "#options". Options are
// labels, false or "-" for dividers, or elements.
func NewDropdownMenu(attrs ...element.Attr) *element.Element {
	return element.NewWithHooks(dropdownMenuHooks{}, "ul", attrs...)
}
