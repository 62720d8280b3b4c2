package element

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickrouge-dev/brickrouge/pkg/assets"
)

// assetHooks counts how often its assets are declared.
type assetHooks struct {
	BaseHooks
	calls *int
}

func (assetHooks) Kind() string { return "asset-widget" }

func (h assetHooks) Assets(doc *Document) {
	*h.calls++
	doc.CSS.Add("widget.css", 0)
	doc.CSS.Add("base.css", -10)
	doc.JS.Add("widget.js", 0)
}

func TestAssetsRunOncePerKind(t *testing.T) {
	ctx, s := sessionContext()
	calls := 0
	hooks := assetHooks{calls: &calls}

	for i := 0; i < 3; i++ {
		render(t, ctx, NewWithHooks(hooks, "span", A(InnerHTML, "x")))
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"base.css", "widget.css"}, s.Document().CSS.Get())

	s.Reset()
	assert.Empty(t, s.Document().CSS.Get())
	render(t, ctx, NewWithHooks(hooks, "span", A(InnerHTML, "x")))
	assert.Equal(t, 2, calls)
}

func TestAssetsRunForEmptyElements(t *testing.T) {
	ctx, _ := sessionContext()
	calls := 0

	render(t, ctx, NewWithHooks(assetHooks{calls: &calls}, "div"))
	assert.Equal(t, 1, calls)
}

func TestSessionsAreIndependent(t *testing.T) {
	a := NewSession()
	b := NewSession()

	assert.Equal(t, 1, a.NextID())
	assert.Equal(t, 2, a.NextID())
	assert.Equal(t, 1, b.NextID())

	a.Reset()
	assert.Equal(t, 1, a.NextID())
}

func TestSessionFrom(t *testing.T) {
	s := NewSession()
	assert.Same(t, s, SessionFrom(WithSession(context.Background(), s)))
	assert.Same(t, DefaultSession(), SessionFrom(context.Background()))
}

func TestSetDefaultSession(t *testing.T) {
	previous := DefaultSession()
	t.Cleanup(func() { SetDefaultSession(previous) })

	s := NewSession()
	SetDefaultSession(s)
	assert.Same(t, s, DefaultSession())

	SetDefaultSession(nil)
	assert.Same(t, s, DefaultSession())
}

func TestDocument(t *testing.T) {
	m := assets.NewManifest()
	m.Set("brickrouge.css", "brickrouge.abc.css")
	doc := NewDocument(assets.NewResolver(m, "/assets/"))

	doc.CSS.Add("brickrouge.css", 0)
	doc.JS.Add("popover.js", 10).Add("brickrouge.js", 0)

	assert.Equal(t, "/assets/brickrouge.abc.css", doc.Resolve("brickrouge.css"))
	assert.Equal(t, "<link rel=\"stylesheet\" href=\"/assets/brickrouge.abc.css\" />\n", doc.RenderHead())
	assert.Equal(t,
		"<script src=\"/assets/brickrouge.js\"></script>\n<script src=\"/assets/popover.js\"></script>\n",
		doc.RenderScripts())
	assert.Equal(t, "body", doc.Body.TagName())

	doc.Reset()
	assert.Empty(t, doc.RenderHead())
	assert.Empty(t, doc.RenderScripts())
}

type outcome struct {
	kind    string
	outcome Outcome
	err     error
}

type recordingObserver struct {
	outcomes []outcome
}

func (o *recordingObserver) BeginRender(ctx context.Context, kind string) (context.Context, func(Outcome, error)) {
	return ctx, func(out Outcome, err error) {
		o.outcomes = append(o.outcomes, outcome{kind, out, err})
	}
}

func TestObserverSeesOutcomes(t *testing.T) {
	obs := &recordingObserver{}
	ctx := WithSession(context.Background(), NewSession(WithObserver(obs)))

	render(t, ctx, New("div"))
	render(t, ctx, New("input"))
	_, err := New("span", A("x", []int{1})).HTML(ctx)
	require.Error(t, err)

	require.Len(t, obs.outcomes, 3)
	assert.Equal(t, Skipped, obs.outcomes[0].outcome)
	assert.Equal(t, Rendered, obs.outcomes[1].outcome)
	assert.Equal(t, Failed, obs.outcomes[2].outcome)
	assert.True(t, IsInvalidAttributeValue(obs.outcomes[2].err))
	assert.Equal(t, "element", obs.outcomes[0].kind)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "rendered", Rendered.String())
	assert.Equal(t, "empty", Skipped.String())
	assert.Equal(t, "error", Failed.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

func TestTranslateUsesSession(t *testing.T) {
	ctx, _ := sessionContext()
	assert.Equal(t, "plain", Translate(ctx, "plain", nil, translateOptions(ScopeLabel)))
	assert.False(t, IsInvalidAttributeValue(errors.New("other")))
}
