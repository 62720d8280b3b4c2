// Package errors provides structured, coded errors for brickrouge.
//
// Every error carries a code that maps to a category, a short message and,
// where useful, a fix hint:
//
//	err := errors.New(errors.CodeInvalidAttributeValue).
//	    WithDetailf("attribute %q holds a %T", "title", value)
//
// The same error can be shown three ways:
//   - Format: colored multi-line terminal output (CLI)
//   - FormatCompact / FormatJSON: logs and machine output
//   - FormatHTML: the inline fragment shown in place of a widget that failed
//     to render
//
// # Error Categories
//
//   - render: attribute values that cannot be rendered
//   - widget: widget special attributes of the wrong shape
//   - i18n: catalog loading
//   - asset: manifests and publishing
//   - config: brickrouge.json
//   - validation: form validation
//   - cli: command line usage
package errors
