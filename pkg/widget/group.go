package widget

import (
	"context"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

type groupHooks struct {
	widgetHooks
}

func (groupHooks) Kind() string { return "group" }

func (groupHooks) AlterClassNames(_ context.Context, e *element.Element, names *ordered.Map[string, any]) *ordered.Map[string, any] {
	first := []string{"group"}
	if name := e.GetString("name"); name != "" {
		first = append(first, "group--"+element.Normalize(name))
	}
	return prepend(names, first...)
}

// RenderInnerHTML renders the legend and the description ahead of the
// children. A group without children renders nothing.
func (h groupHooks) RenderInnerHTML(ctx context.Context, e *element.Element) (element.Result, error) {
	if !e.HasChildren() {
		return element.Empty(), nil
	}
	children, err := h.RenderChildren(ctx, e, e.OrderedChildren())
	if err != nil {
		return element.Empty(), err
	}

	var b strings.Builder
	if legend := e.GetString(element.Legend); legend != "" {
		b.WriteString("<legend>")
		b.WriteString(translate(ctx, legend, element.ScopeLegend))
		b.WriteString("</legend>")
	}
	if description := e.GetString(element.Description); description != "" {
		b.WriteString(`<div class="group-description"><div class="group-description-inner">`)
		b.WriteString(translate(ctx, description, element.ScopeDescription))
		b.WriteString("</div></div>")
	}
	b.WriteString(children)
	return element.HTML(b.String()), nil
}

// RenderChildren wraps every element child in a form-group div with its
// group label.
func (groupHooks) RenderChildren(ctx context.Context, _ *element.Element, children *ordered.Map[string, any]) (string, error) {
	var b strings.Builder
	for _, p := range children.Pairs() {
		child, ok := p.Value.(*element.Element)
		if !ok {
			b.WriteString(element.RenderChild(ctx, p.Value))
			continue
		}

		var labelHTML string
		if text := child.GetString(element.GroupLabel); text != "" {
			labelHTML = `<label for="` + element.EscapeAttr(child.IDContext(ctx)) + `" class="form-group__label">` +
				translate(ctx, text, element.ScopeLabel) + "</label>"
		}

		html := child.StringContext(ctx)
		if html == "" {
			continue
		}

		b.WriteString(`<div class="`)
		b.WriteString(element.EscapeAttr(formGroupClass(p.Key, child)))
		b.WriteString(`">`)
		b.WriteString(labelHTML)
		b.WriteString(html)
		b.WriteString("</div>")
	}
	return b.String(), nil
}

func formGroupClass(key string, child *element.Element) string {
	classes := []string{"form-group"}
	name := child.GetString("name")
	if name == "" {
		name = key
	}
	if name != "" {
		classes = append(classes, "form-group--"+element.Normalize(name))
	}
	classes = append(classes, "form-group--type-"+element.Normalize(child.Type()))
	if state := child.GetString(element.State); state != "" {
		classes = append(classes, "has-"+state)
	}
	if element.Truthy(child.Get("required")) {
		classes = append(classes, "required")
	}
	return strings.Join(classes, " ")
}

// DecorateWithLegend implements element.Hooks. The legend is rendered
// inside the fieldset.
func (groupHooks) DecorateWithLegend(_ context.Context, _ *element.Element, html, _ string) string {
	return html
}

// DecorateWithDescription implements element.Hooks. The description is
// rendered inside the fieldset.
func (groupHooks) DecorateWithDescription(_ context.Context, _ *element.Element, html, _ string) string {
	return html
}

// NewGroup creates a fieldset group.
func NewGroup(attrs ...element.Attr) *element.Element {
	return element.NewWithHooks(groupHooks{}, "fieldset", attrs...)
}
