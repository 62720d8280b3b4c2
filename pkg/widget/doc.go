// Package widget provides the brickrouge widgets: form controls, groups,
// alerts, buttons, menus, popovers, modals and pagination.
//
// Every widget is an *element.Element rendered through its own hooks, so
// widgets nest freely and render with the same pipeline:
//
//	form := widget.NewForm(
//		element.WithChildren(element.KV(
//			"email", widget.NewText(element.A(element.Label, "Email")),
//		)),
//		element.A(widget.Actions, true),
//	)
//	html, err := form.HTML(ctx)
//
// Widgets declare brickrouge.css and brickrouge.js on the session's
// Document the first time one of their kind renders.
package widget
