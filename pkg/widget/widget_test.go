package widget

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
)

func sessionContext() (context.Context, *element.Session) {
	s := element.NewSession()
	return element.WithSession(context.Background(), s), s
}

func render(t *testing.T, e *element.Element) string {
	t.Helper()
	ctx, _ := sessionContext()
	html, err := e.HTML(ctx)
	require.NoError(t, err)
	return html
}

func TestButton(t *testing.T) {
	tests := []struct {
		name string
		el   *element.Element
		want string
	}{
		{
			name: "submit",
			el:   NewButton("Ok", element.A("type", "submit")),
			want: `<button type="submit" class="btn">Ok</button>`,
		},
		{
			name: "default type and escaped label",
			el:   NewButton("Save & close"),
			want: `<button type="button" class="btn">Save &amp; close</button>`,
		},
		{
			name: "btn comes first",
			el:   NewButton("Go", element.A("class", "btn-primary")),
			want: `<button type="button" class="btn btn-primary">Go</button>`,
		},
		{
			name: "empty label keeps the closing tag",
			el:   NewButton(""),
			want: `<button type="button" class="btn"></button>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.el))
		})
	}
}

func TestWidgetAssetsOncePerSession(t *testing.T) {
	ctx, s := sessionContext()

	_, err := NewButton("a").HTML(ctx)
	require.NoError(t, err)
	_, err = NewAlert("b").HTML(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{Stylesheet}, s.Document().CSS.Get())
	assert.Equal(t, []string{Script}, s.Document().JS.Get())
}

func TestActions(t *testing.T) {
	assert.Equal(t,
		`<div class="actions">`+
			`<button type="button" class="btn" data-action="cancel">Cancel</button>`+
			`<button type="button" class="btn btn-primary" data-action="ok">Ok</button>`+
			`</div>`,
		render(t, NewActions(ActionsBoolean)))

	assert.Equal(t, "", render(t, NewActions(nil)))
	assert.Equal(t, `<div class="actions"><a href="/">Back</a></div>`, render(t, NewActions(`<a href="/">Back</a>`)))
}

func TestIsUnexpectedValue(t *testing.T) {
	_, err := NewAlert(42).HTML(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnexpectedValue(err))
	assert.False(t, IsUnexpectedValue(nil))
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

func countOf(s, sub string) int {
	return strings.Count(s, sub)
}
