package widget

import (
	"context"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// ButtonLabel holds the label of a Button.
const ButtonLabel = "#button-label"

type buttonHooks struct {
	widgetHooks
}

func (buttonHooks) Kind() string { return "button" }

func (buttonHooks) AlterClassNames(_ context.Context, _ *element.Element, names *ordered.Map[string, any]) *ordered.Map[string, any] {
	return prepend(names, "btn")
}

// RenderInnerHTML renders the translated and escaped label followed by the
// children. A button always has a closing tag.
func (h buttonHooks) RenderInnerHTML(ctx context.Context, e *element.Element) (element.Result, error) {
	text := ""
	if l := e.GetString(ButtonLabel); l != "" {
		text = label(ctx, l, "button")
	}
	r, err := h.BaseHooks.RenderInnerHTML(ctx, e)
	if err != nil {
		return element.Empty(), err
	}
	return element.HTML(text + r.String()), nil
}

// NewButton creates a button. The type defaults to "button" and the "btn"
// class is always rendered first:
//
//	NewButton("Ok", element.A("type", "submit"))
//	// <button type="submit" class="btn">Ok</button>
func NewButton(text string, attrs ...element.Attr) *element.Element {
	all := append([]element.Attr{element.A("type", "button")}, attrs...)
	all = append(all, element.A(ButtonLabel, text))
	return element.NewWithHooks(buttonHooks{}, "button", all...)
}
