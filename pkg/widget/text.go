package widget

import (
	"context"
	"time"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// Text attributes.
const (
	// Addon is markup shown next to the input, such as a unit or an icon.
	Addon = "#addon"

	// AddonPosition is "before" or "after", the default.
	AddonPosition = "#addon-position"
)

// Time layouts of the Date and DateTime inputs.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04"
)

type textHooks struct {
	widgetHooks
	kind   string
	layout string
}

func (h textHooks) Kind() string { return h.kind }

// AlterAttributes formats time values with the input layout.
func (h textHooks) AlterAttributes(ctx context.Context, e *element.Element, attributes *ordered.Map[string, any]) *ordered.Map[string, any] {
	attributes = h.BaseHooks.AlterAttributes(ctx, e, attributes)
	if h.layout == "" {
		return attributes
	}
	switch v, _ := attributes.Get("value"); t := v.(type) {
	case time.Time:
		attributes.Set("value", formatTime(t, h.layout))
	case *time.Time:
		if t == nil {
			attributes.Delete("value")
			break
		}
		attributes.Set("value", formatTime(*t, h.layout))
	}
	return attributes
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

// Decorate wraps the input with its addon before the label and the help
// are applied.
func (h textHooks) Decorate(ctx context.Context, e *element.Element, html string) string {
	if addon := e.GetString(Addon); addon != "" {
		addon = `<span class="input-group-addon">` + addon + "</span>"
		if e.GetString(AddonPosition) == "before" {
			html = addon + html
		} else {
			html = html + addon
		}
		html = `<div class="input-group">` + html + "</div>"
	}
	return h.BaseHooks.Decorate(ctx, e, html)
}

func newText(h textHooks, typ string, attrs []element.Attr) *element.Element {
	all := append([]element.Attr{element.A("type", typ)}, attrs...)
	return element.NewWithHooks(h, "input", all...)
}

// NewText creates a text input.
func NewText(attrs ...element.Attr) *element.Element {
	return newText(textHooks{kind: "text"}, "text", attrs)
}

// NewDate creates a date input. time.Time values render as 2006-01-02.
func NewDate(attrs ...element.Attr) *element.Element {
	return newText(textHooks{kind: "date", layout: DateLayout}, "date", attrs)
}

// NewDateTime creates a datetime-local input. time.Time values render as
// 2006-01-02T15:04.
func NewDateTime(attrs ...element.Attr) *element.Element {
	return newText(textHooks{kind: "date-time", layout: DateTimeLayout}, "datetime-local", attrs)
}
