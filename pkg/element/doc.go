// Package element models HTML tags as objects and renders them to markup.
//
// An Element holds a type, an insertion-ordered attribute map, children and
// class names. Attribute keys starting with "#" are special: they configure
// the element and are never rendered. Keys starting with "data-" form the
// dataset.
//
//	input := element.New("input",
//		element.A("name", "email"),
//		element.A(element.Label, "E-mail"),
//		element.A(element.DefaultValue, "me@example.com"),
//	)
//	html, err := input.HTML(ctx)
//
// # Rendering pipeline
//
// Every render runs the same stages, each one a method of the element's
// Hooks:
//
//  1. Assets, once per hook kind and Session
//  2. RenderInnerHTML, dispatching on the type (select, textarea,
//     checkbox-group, radio-group) and appending ordered children
//  3. AlterClassNames, AlterAttributes and AlterDataset, then the outer tag
//  4. Decorate: label, inline help, description, legend
//
// RenderInnerHTML returns a Result. NoContent closes the tag with " />",
// except for div elements which, like an explicit Empty result, render
// nothing at all.
//
// Widgets embed BaseHooks and override only the stages they specialize.
//
// # Errors
//
// Render and HTML return errors such as an attribute value that cannot be
// rendered. String never fails: errors are logged and rendered through the
// Session's ExceptionRenderer.
//
// # Sessions
//
// Id counters, the assets memo and the Document live in a Session carried
// by the context. Calls without one use the default session, which can be
// reset between requests.
package element
