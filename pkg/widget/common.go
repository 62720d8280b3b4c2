package widget

import (
	"context"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/i18n"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// Stylesheet and Script are the shared widget assets.
const (
	Stylesheet = "brickrouge.css"
	Script     = "brickrouge.js"

	assetWeight = -100
)

// Special attributes shared by several widgets.
const (
	// Actions holds the actions of a Form, Popover or Modal: true, the
	// string "boolean", an element or a list of buttons.
	Actions = "#actions"

	// Title is the title of a Popover or Modal.
	Title = "#title"
)

// widgetHooks declares the shared assets. Every widget embeds it.
type widgetHooks struct {
	element.BaseHooks
}

func (widgetHooks) Assets(doc *element.Document) {
	doc.CSS.Add(Stylesheet, assetWeight)
	doc.JS.Add(Script, assetWeight)
}

// prepend returns names with the given class names first.
func prepend(names *ordered.Map[string, any], first ...string) *ordered.Map[string, any] {
	result := ordered.New[string, any]()
	for _, name := range first {
		result.Set(name, true)
	}
	for _, p := range names.Pairs() {
		if result.Has(p.Key) {
			continue
		}
		result.Set(p.Key, p.Value)
	}
	return result
}

func translate(ctx context.Context, s, scope string) string {
	return element.Translate(ctx, s, nil, i18n.Options{Scope: scope})
}

// label translates and escapes a text label.
func label(ctx context.Context, s, scope string) string {
	return element.Escape(translate(ctx, s, scope))
}

func unexpectedValue(format string, args ...any) *errors.Error {
	return errors.New(errors.CodeUnexpectedValue).WithDetailf(format, args...)
}

// IsUnexpectedValue reports whether err comes from a widget attribute that
// does not have the expected shape.
func IsUnexpectedValue(err error) bool {
	return errors.Is(err, errors.CodeUnexpectedValue)
}
