package widget

import (
	"github.com/brickrouge-dev/brickrouge/pkg/element"
)

// ActionsBoolean is the actions value rendering a Cancel and an Ok button.
const ActionsBoolean = "boolean"

type actionsHooks struct {
	widgetHooks
}

func (actionsHooks) Kind() string { return "actions" }

// NewActions creates a div.actions holding buttons.
//
// actions is the string "boolean", for a Cancel and an Ok button, or
// anything element.Adopt accepts: a button, a list of buttons, an ordered
// map of buttons or markup. Without actions it renders nothing.
func NewActions(actions any, attrs ...element.Attr) *element.Element {
	e := element.NewWithHooks(actionsHooks{}, "div", attrs...)
	e.AddClass("actions")

	switch a := actions.(type) {
	case nil, bool:
	case string:
		if a == ActionsBoolean {
			e.Adopt(
				NewButton("Cancel", element.A("data-action", "cancel")),
				NewButton("Ok", element.A("data-action", "ok"), element.A("class", "btn-primary")),
			)
			break
		}
		e.Adopt(a)
	default:
		e.Adopt(actions)
	}
	return e
}

// defaultActions returns the actions of a form: true is a submit button.
func defaultActions(actions any) *element.Element {
	if b, ok := actions.(bool); ok {
		if !b {
			return nil
		}
		return NewActions(NewButton("Send", element.A("type", "submit"), element.A("class", "btn-primary")))
	}
	if actions == nil {
		return nil
	}
	if e, ok := actions.(*element.Element); ok && e.Hooks().Kind() == "actions" {
		return e
	}
	return NewActions(actions)
}
