package widget

import (
	"context"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// Popover attributes.
const (
	// Anchor is the element the popover points to: an *element.Element,
	// whose id is used, or a selector.
	Anchor = "#anchor"

	// Placement is where the popover shows relative to its anchor: above,
	// below, before, after or vertical.
	Placement = "#placement"

	// FitContent makes the popover as wide as its content.
	FitContent = "#fit-content"
)

type popoverHooks struct {
	widgetHooks
}

func (popoverHooks) Kind() string { return "popover" }

func (popoverHooks) AlterClassNames(_ context.Context, e *element.Element, names *ordered.Map[string, any]) *ordered.Map[string, any] {
	names = prepend(names, "popover")
	if element.Truthy(e.Get(FitContent)) {
		names.Set("popover--fit-content", true)
	}
	return names
}

func (popoverHooks) AlterDataset(ctx context.Context, e *element.Element, dataset *ordered.Map[string, any]) *ordered.Map[string, any] {
	switch anchor := e.Get(Anchor).(type) {
	case nil:
	case *element.Element:
		dataset.Set("anchor", "#"+anchor.IDContext(ctx))
	default:
		dataset.Set("anchor", element.Stringify(anchor))
	}
	if placement := e.GetString(Placement); placement != "" {
		dataset.Set("placement", placement)
	}
	return dataset
}

// RenderInnerHTML renders the arrow, the title, the content and the
// actions. A popover with neither title nor content renders nothing.
func (h popoverHooks) RenderInnerHTML(ctx context.Context, e *element.Element) (element.Result, error) {
	content, err := h.BaseHooks.RenderInnerHTML(ctx, e)
	if err != nil {
		return element.Empty(), err
	}
	title := e.GetString(Title)
	if title == "" && content.String() == "" {
		return element.Empty(), nil
	}

	var b strings.Builder
	b.WriteString(`<div class="arrow"></div><div class="popover-inner">`)
	if title != "" {
		b.WriteString(`<h3 class="popover-title">`)
		b.WriteString(label(ctx, title, "popover"))
		b.WriteString("</h3>")
	}
	b.WriteString(`<div class="popover-content">`)
	b.WriteString(content.String())
	b.WriteString("</div>")
	if a := e.Get(Actions); a != nil {
		actions, err := NewActions(a).HTML(ctx)
		if err != nil {
			return element.Empty(), err
		}
		b.WriteString(actions)
	}
	b.WriteString("</div>")
	return element.HTML(b.String()), nil
}

// NewPopover creates a popover.
func NewPopover(attrs ...element.Attr) *element.Element {
	return element.NewWithHooks(popoverHooks{}, "div", attrs...)
}
