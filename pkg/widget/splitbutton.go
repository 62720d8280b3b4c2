package widget

import (
	"context"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

type splitButtonHooks struct {
	widgetHooks
}

func (splitButtonHooks) Kind() string { return "split-button" }

// AlterClassNames keeps the class names that do not start with "btn-" on
// the btn-group wrapper; the others go to the buttons.
func (splitButtonHooks) AlterClassNames(_ context.Context, _ *element.Element, names *ordered.Map[string, any]) *ordered.Map[string, any] {
	kept, _ := partitionButtonClasses(names)
	return prepend(kept, "btn-group")
}

func partitionButtonClasses(names *ordered.Map[string, any]) (kept *ordered.Map[string, any], forwarded []string) {
	kept = ordered.New[string, any]()
	for _, p := range names.Pairs() {
		if strings.HasPrefix(p.Key, "btn-") {
			if element.Truthy(p.Value) {
				forwarded = append(forwarded, p.Key)
			}
			continue
		}
		kept.Set(p.Key, p.Value)
	}
	return kept, forwarded
}

// RenderInnerHTML renders the button, the toggle and the menu. Options
// that are neither a dropdown menu nor an options collection fail with an
// unexpected value error.
func (splitButtonHooks) RenderInnerHTML(ctx context.Context, e *element.Element) (element.Result, error) {
	var menu *element.Element
	switch options := e.Get(element.Options).(type) {
	case *element.Element:
		if options.Hooks().Kind() != "dropdown-menu" {
			return element.Empty(), unexpectedValue("split button options must be a dropdown menu, got a %s element", options.Type())
		}
		menu = options
	default:
		if _, err := menuOptions(options); err != nil {
			return element.Empty(), err
		}
		menu = NewDropdownMenu(element.A(element.Options, options), element.A("value", e.Get("value")))
	}

	_, forwarded := partitionButtonClasses(e.ClassNames())
	class := strings.Join(forwarded, " ")

	button, err := NewButton(e.GetString(ButtonLabel), element.A("class", class)).HTML(ctx)
	if err != nil {
		return element.Empty(), err
	}
	toggle, err := element.NewWithHooks(buttonHooks{}, "button",
		element.A("type", "button"),
		element.A("class", strings.TrimSpace(class+" dropdown-toggle")),
		element.A("data-toggle", "dropdown"),
		element.A(element.InnerHTML, `<span class="caret"></span>`),
	).HTML(ctx)
	if err != nil {
		return element.Empty(), err
	}
	items, err := menu.HTML(ctx)
	if err != nil {
		return element.Empty(), err
	}
	return element.HTML(button + toggle + items), nil
}

// NewSplitButton creates a button with a dropdown toggle. "#options" is a
// dropdown menu or the options of one.
func NewSplitButton(text string, attrs ...element.Attr) *element.Element {
	all := append([]element.Attr{element.A(ButtonLabel, text)}, attrs...)
	return element.NewWithHooks(splitButtonHooks{}, "div", all...)
}
