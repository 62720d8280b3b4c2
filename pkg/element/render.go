package element

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

var _ templ.Component = (*Element)(nil)

// Render writes the element to w. An element with nothing to render writes
// nothing and returns nil. Render satisfies templ.Component.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	r, err := e.RenderResult(ctx)
	if err != nil {
		return err
	}
	if r.IsEmpty() {
		return nil
	}
	_, err = io.WriteString(w, r.String())
	return err
}

// HTML renders the element to a string.
func (e *Element) HTML(ctx context.Context) (string, error) {
	r, err := e.RenderResult(ctx)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// String renders the element with the default session. It never fails;
// see StringContext.
func (e *Element) String() string {
	return e.StringContext(context.Background())
}

// StringContext renders the element. Errors are logged and rendered with
// the session's ExceptionRenderer instead of being returned.
func (e *Element) StringContext(ctx context.Context) string {
	html, err := e.HTML(ctx)
	if err == nil {
		return html
	}

	s := SessionFrom(ctx)
	s.Logger().Error("element render failed",
		"kind", e.hooks.Kind(),
		"type", e.typ,
		"error", err,
	)
	return s.Exceptions().Render(err)
}

// RenderResult runs the rendering pipeline.
func (e *Element) RenderResult(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s := SessionFrom(ctx)
	ctx, finish := s.Observer().BeginRender(ctx, e.hooks.Kind())
	s.HandleAssets(e.hooks)

	r, err := e.render(ctx)
	switch {
	case err != nil:
		finish(Failed, err)
	case r.IsEmpty():
		finish(Skipped, nil)
	default:
		finish(Rendered, nil)
	}
	return r, err
}

func (e *Element) render(ctx context.Context) (Result, error) {
	inner, err := e.hooks.RenderInnerHTML(ctx, e)
	if err != nil {
		return Empty(), err
	}
	if inner.IsEmpty() || (inner.IsNoContent() && e.tagName == "div") {
		return Empty(), nil
	}

	html, err := e.renderOuterHTML(ctx, inner)
	if err != nil {
		return Empty(), err
	}
	return HTML(e.hooks.Decorate(ctx, e, html)), nil
}

func (e *Element) renderOuterHTML(ctx context.Context, inner Result) (string, error) {
	attributes := ordered.New[string, any]()
	dataset := ordered.New[string, any]()
	for _, p := range e.attributes.Pairs() {
		if prop, ok := strings.CutPrefix(p.Key, "data-"); ok {
			dataset.Set(prop, p.Value)
			continue
		}
		attributes.Set(p.Key, p.Value)
	}

	names := e.hooks.AlterClassNames(ctx, e, e.classNames.Clone())
	if class := ClassString(names); class != "" {
		attributes.Set("class", class)
	}

	attributes = e.hooks.AlterAttributes(ctx, e, attributes)
	renderedAttributes, err := RenderAttributes(attributes)
	if err != nil {
		return "", err
	}

	dataset = e.hooks.AlterDataset(ctx, e, dataset)
	renderedDataset, err := RenderDataset(dataset)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.tagName)
	b.WriteString(renderedAttributes)
	b.WriteString(renderedDataset)
	if inner.IsNoContent() {
		b.WriteString(" />")
		return b.String(), nil
	}
	b.WriteByte('>')
	b.WriteString(inner.String())
	b.WriteString("</")
	b.WriteString(e.tagName)
	b.WriteByte('>')
	return b.String(), nil
}

// RenderAttributes renders attributes, each preceded by a space.
//
// Special attributes, nil and false are skipped; true renders as
// name="name". Collections and values that are neither scalars nor
// fmt.Stringer fail with an invalid attribute value error.
func RenderAttributes(attributes *ordered.Map[string, any]) (string, error) {
	var b strings.Builder
	for _, p := range attributes.Pairs() {
		name, value := p.Key, p.Value
		if strings.HasPrefix(name, "#") {
			continue
		}

		var rendered string
		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if !v {
				continue
			}
			rendered = name
		case string:
			rendered = EscapeAttr(v)
		case fmt.Stringer:
			rendered = EscapeAttr(v.String())
		default:
			n, ok := formatNumber(v)
			if !ok {
				return "", invalidAttributeValue(name, value)
			}
			rendered = n
		}

		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(rendered)
		b.WriteByte('"')
	}
	return b.String(), nil
}

// RenderDataset renders dataset entries as data- attributes, each preceded
// by a space.
//
// nil entries are skipped, false renders as 0, true as 1. Collections are
// JSON encoded.
func RenderDataset(dataset *ordered.Map[string, any]) (string, error) {
	var b strings.Builder
	for _, p := range dataset.Pairs() {
		name, value := p.Key, p.Value

		var rendered string
		switch v := value.(type) {
		case nil:
			continue
		case bool:
			rendered = "0"
			if v {
				rendered = "1"
			}
		case string:
			rendered = EscapeAttr(v)
		case fmt.Stringer:
			rendered = EscapeAttr(v.String())
		default:
			if n, ok := formatNumber(v); ok {
				rendered = n
				break
			}
			data, err := json.Marshal(v)
			if err != nil {
				return "", invalidAttributeValue("data-"+name, value).Wrap(err)
			}
			rendered = EscapeAttr(string(data))
		}

		b.WriteString(" data-")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(rendered)
		b.WriteByte('"')
	}
	return b.String(), nil
}

func invalidAttributeValue(name string, value any) *errors.Error {
	return errors.New(errors.CodeInvalidAttributeValue).
		WithDetailf("attribute %q cannot render a %T", name, value)
}

// IsInvalidAttributeValue reports whether err comes from an attribute value
// that cannot be rendered.
func IsInvalidAttributeValue(err error) bool {
	return errors.Is(err, errors.CodeInvalidAttributeValue)
}
