package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
)

const booleanActions = `<div class="actions">` +
	`<button type="button" class="btn" data-action="cancel">Cancel</button>` +
	`<button type="button" class="btn btn-primary" data-action="ok">Ok</button>` +
	`</div>`

func TestPopover(t *testing.T) {
	p := NewPopover(
		element.A(Title, "Options"),
		element.A(Placement, "after"),
		element.A(Anchor, "#btn"),
		element.A(element.InnerHTML, "Content"),
		element.A(Actions, ActionsBoolean),
		element.A(FitContent, true),
	)

	want := `<div class="popover popover--fit-content" data-anchor="#btn" data-placement="after">` +
		`<div class="arrow"></div><div class="popover-inner">` +
		`<h3 class="popover-title">Options</h3>` +
		`<div class="popover-content">Content</div>` +
		booleanActions +
		`</div></div>`
	assert.Equal(t, want, render(t, p))
}

func TestPopoverAnchorElement(t *testing.T) {
	anchor := element.New("button", element.A("id", "trigger"))
	p := NewPopover(element.A(Anchor, anchor), element.A(element.InnerHTML, "x"))

	assert.Contains(t, render(t, p), `data-anchor="#trigger"`)
}

func TestPopoverWithoutContentRendersNothing(t *testing.T) {
	assert.Equal(t, "", render(t, NewPopover(element.A(Placement, "below"))))
}

func TestModal(t *testing.T) {
	m := NewModal(
		element.A(Title, "Delete"),
		element.A(element.InnerHTML, "<p>Sure?</p>"),
		element.A(Actions, ActionsBoolean),
	)

	want := `<div class="modal">` +
		`<div class="modal-header">` +
		`<button type="button" class="close" data-dismiss="modal">&times;</button>` +
		`<h3 class="modal-title">Delete</h3>` +
		`</div>` +
		`<div class="modal-body"><p>Sure?</p></div>` +
		`<div class="modal-footer">` + booleanActions + `</div>` +
		`</div>`
	assert.Equal(t, want, render(t, m))
}

func TestModalWithoutHeader(t *testing.T) {
	m := NewModal(
		element.A(ModalDismissible, false),
		element.WithChildren(element.New("p", element.A(element.InnerHTML, "Body"))),
	)
	assert.Equal(t, `<div class="modal"><div class="modal-body"><p>Body</p></div></div>`, render(t, m))
}
