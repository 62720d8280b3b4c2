package element

import (
	"context"

	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// Hooks are the extension points of the rendering pipeline. Every method
// receives the element being rendered, so a stateless value can serve every
// element of a kind.
//
// Widgets embed BaseHooks and override what they specialize. A hook calling
// the default behavior calls the embedded BaseHooks method explicitly.
type Hooks interface {
	// Kind names the widget. Assets run once per kind and Session.
	Kind() string

	// Assets adds the CSS and JavaScript files the kind depends on.
	Assets(doc *Document)

	// AlterClassNames returns the class names to render. Values are true
	// (render the name) or a string (render the string instead).
	AlterClassNames(ctx context.Context, e *Element, names *ordered.Map[string, any]) *ordered.Map[string, any]

	// AlterAttributes returns the plain attributes to render.
	AlterAttributes(ctx context.Context, e *Element, attributes *ordered.Map[string, any]) *ordered.Map[string, any]

	// AlterDataset returns the dataset to render, keys without "data-".
	AlterDataset(ctx context.Context, e *Element, dataset *ordered.Map[string, any]) *ordered.Map[string, any]

	// RenderInnerHTML renders the content of the element.
	RenderInnerHTML(ctx context.Context, e *Element) (Result, error)

	// RenderChildren renders ordered children.
	RenderChildren(ctx context.Context, e *Element, children *ordered.Map[string, any]) (string, error)

	// Decorate wraps the outer HTML with label, inline help, description
	// and legend.
	Decorate(ctx context.Context, e *Element, html string) string

	DecorateWithLabel(ctx context.Context, e *Element, html, label string) string
	DecorateWithInlineHelp(ctx context.Context, e *Element, html, help string) string
	DecorateWithDescription(ctx context.Context, e *Element, html, description string) string
	DecorateWithLegend(ctx context.Context, e *Element, html, legend string) string
}

// BaseHooks is the default pipeline.
type BaseHooks struct{}

var _ Hooks = BaseHooks{}

// Kind implements Hooks.
func (BaseHooks) Kind() string { return "element" }

// Assets implements Hooks. Plain elements have none.
func (BaseHooks) Assets(*Document) {}

// AlterClassNames implements Hooks.
func (BaseHooks) AlterClassNames(_ context.Context, _ *Element, names *ordered.Map[string, any]) *ordered.Map[string, any] {
	return names
}

// AlterDataset implements Hooks.
func (BaseHooks) AlterDataset(_ context.Context, _ *Element, dataset *ordered.Map[string, any]) *ordered.Map[string, any] {
	return dataset
}

// AlterAttributes implements Hooks.
//
// Attributes the tag does not support (value, required, disabled, name) are
// dropped and the title is translated. A checkbox without "checked" is
// checked when its default value is truthy; input and button tags without
// a value take the default value.
func (BaseHooks) AlterAttributes(ctx context.Context, e *Element, attributes *ordered.Map[string, any]) *ordered.Map[string, any] {
	for attribute := range supportedBy {
		if attributes.Has(attribute) && !Supports(e.tagName, attribute) {
			attributes.Delete(attribute)
		}
	}

	if title, ok := attributes.Get("title"); ok {
		if s, isString := title.(string); isString && s != "" {
			attributes.Set("title", Translate(ctx, s, nil, translateOptions(ScopeTitle)))
		}
	}

	if e.typ == TypeCheckbox && e.Get("checked") == nil {
		attributes.Set("checked", Truthy(e.Get(DefaultValue)))
	}

	if (e.tagName == "input" || e.tagName == "button") &&
		e.typ != TypeCheckbox && e.typ != TypeRadio &&
		e.Get("value") == nil {
		if def := e.Get(DefaultValue); def != nil {
			attributes.Set("value", def)
		}
	}

	return attributes
}
