package element

import (
	"context"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/i18n"
)

func translateOptions(scope string) i18n.Options {
	return i18n.Options{Scope: scope}
}

// Decorate implements Hooks. It applies, in order, the label, the inline
// help, the description and the legend, each translated in its own scope.
// A label of "0" is rendered.
func (BaseHooks) Decorate(ctx context.Context, e *Element, html string) string {
	h := e.hooks

	if label := e.Get(Label); Truthy(label) || Stringify(label) == "0" {
		text := Translate(ctx, Stringify(label), nil, translateOptions(ScopeLabel))
		html = h.DecorateWithLabel(ctx, e, html, text)
	}

	if help := e.Get(InlineHelp); Truthy(help) {
		text := Translate(ctx, Stringify(help), nil, translateOptions(ScopeInlineHelp))
		html = h.DecorateWithInlineHelp(ctx, e, html, text)
	}

	if description := e.Get(Description); Truthy(description) {
		text := Translate(ctx, Stringify(description), nil, translateOptions(ScopeDescription))
		html = h.DecorateWithDescription(ctx, e, html, text)
	}

	if legend := e.Get(Legend); Truthy(legend) {
		text := Translate(ctx, Stringify(legend), nil, translateOptions(ScopeLegend))
		html = h.DecorateWithLegend(ctx, e, html, text)
	}

	return html
}

// DecorateWithLabel implements Hooks. The label is markup and is not
// escaped. Its placement follows "#label-position": above, below, before
// or after (the default); before and after wrap the element.
func (BaseHooks) DecorateWithLabel(_ context.Context, e *Element, html, label string) string {
	class := LabelClass(e)

	switch position := Stringify(e.Get(LabelPosition)); position {
	case LabelAbove:
		return `<label class="` + class + ` above">` + label + "</label>\n" + html
	case LabelBelow:
		return html + "\n" + `<label class="` + class + ` below">` + label + "</label>"
	case LabelBefore:
		return `<label class="` + class + ` wrapping before">` + label + " " + html + "</label>"
	default:
		return `<label class="` + class + ` wrapping after">` + html + " " + label + "</label>"
	}
}

// LabelClass returns the class of the label of e: "element-label" with
// "required" and "disabled" modifiers.
func LabelClass(e *Element) string {
	classes := []string{"element-label"}
	if Truthy(e.Get("required")) {
		classes = append(classes, "required")
	}
	if Truthy(e.Get("disabled")) {
		classes = append(classes, "disabled")
	}
	return strings.Join(classes, " ")
}

// DecorateWithInlineHelp implements Hooks.
func (BaseHooks) DecorateWithInlineHelp(_ context.Context, _ *Element, html, help string) string {
	return html + `<span class="help-inline">` + help + "</span>"
}

// DecorateWithDescription implements Hooks.
func (BaseHooks) DecorateWithDescription(_ context.Context, _ *Element, html, description string) string {
	return html + `<div class="element-description help-block">` + description + "</div>"
}

// DecorateWithLegend implements Hooks.
func (BaseHooks) DecorateWithLegend(_ context.Context, _ *Element, html, legend string) string {
	return "<fieldset><legend>" + legend + "</legend>" + html + "</fieldset>"
}
