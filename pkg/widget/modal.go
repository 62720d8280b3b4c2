package widget

import (
	"context"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// ModalDismissible adds a close button to the modal header. It defaults to
// true.
const ModalDismissible = "#modal-dismissible"

type modalHooks struct {
	widgetHooks
}

func (modalHooks) Kind() string { return "modal" }

func (modalHooks) AlterClassNames(_ context.Context, _ *element.Element, names *ordered.Map[string, any]) *ordered.Map[string, any] {
	return prepend(names, "modal")
}

// RenderInnerHTML renders the header, the body and the actions footer.
func (h modalHooks) RenderInnerHTML(ctx context.Context, e *element.Element) (element.Result, error) {
	body, err := h.BaseHooks.RenderInnerHTML(ctx, e)
	if err != nil {
		return element.Empty(), err
	}

	var b strings.Builder
	title := e.GetString(Title)
	dismissible := element.Truthy(e.GetOr(ModalDismissible, true))
	if title != "" || dismissible {
		b.WriteString(`<div class="modal-header">`)
		if dismissible {
			b.WriteString(`<button type="button" class="close" data-dismiss="modal">&times;</button>`)
		}
		if title != "" {
			b.WriteString(`<h3 class="modal-title">`)
			b.WriteString(label(ctx, title, "modal"))
			b.WriteString("</h3>")
		}
		b.WriteString("</div>")
	}

	b.WriteString(`<div class="modal-body">`)
	b.WriteString(body.String())
	b.WriteString("</div>")

	if a := e.Get(Actions); a != nil {
		actions, err := NewActions(a).HTML(ctx)
		if err != nil {
			return element.Empty(), err
		}
		if actions != "" {
			b.WriteString(`<div class="modal-footer">`)
			b.WriteString(actions)
			b.WriteString("</div>")
		}
	}
	return element.HTML(b.String()), nil
}

// NewModal creates a modal dialog. Children are its body.
func NewModal(attrs ...element.Attr) *element.Element {
	return element.NewWithHooks(modalHooks{}, "div", attrs...)
}
