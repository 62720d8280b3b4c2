package element

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
	"github.com/brickrouge-dev/brickrouge/pkg/weight"
)

func sessionContext() (context.Context, *Session) {
	s := NewSession()
	return WithSession(context.Background(), s), s
}

func TestNewPseudoTypes(t *testing.T) {
	tests := []struct {
		typ   string
		tag   string
		class string
		input string
	}{
		{TypeCheckbox, "input", "", "checkbox"},
		{TypeRadio, "input", "", "radio"},
		{TypeCheckboxGroup, "div", "checkbox-group", ""},
		{TypeRadioGroup, "div", "radio-group", ""},
		{"textarea", "textarea", "", ""},
		{"span", "span", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			e := New(tt.typ)
			assert.Equal(t, tt.typ, e.Type())
			assert.Equal(t, tt.tag, e.TagName())
			if tt.class != "" {
				assert.True(t, e.HasClass(tt.class))
			}
			if tt.input != "" {
				assert.Equal(t, tt.input, e.Get("type"))
			}
		})
	}
}

func TestNewKeepsExplicitType(t *testing.T) {
	e := New(TypeCheckbox, A("type", "hidden"))
	assert.Equal(t, "hidden", e.Get("type"))
}

func TestNewTextareaDefaults(t *testing.T) {
	e := New("textarea", A("rows", 3))
	assert.Equal(t, 3, e.Get("rows"))
	assert.Equal(t, 76, e.Get("cols"))
}

func TestSetSpecialKeys(t *testing.T) {
	e := New("div")

	e.Set(InnerHTML, "<b>x</b>")
	assert.Equal(t, "<b>x</b>", e.Get(InnerHTML))

	e.Set("class", "a  b a")
	assert.Equal(t, "a b", e.Get("class"))
	assert.False(t, e.Attributes().Has("class"), "class is kept apart from attributes")

	e.Set(Children, []any{"one", "two"})
	e.Set(Children, []any{"three"})
	assert.Equal(t, []any{"three"}, e.Children().Values())

	e.Unset(InnerHTML)
	assert.Nil(t, e.Get(InnerHTML))
}

func TestGetSetHasUnset(t *testing.T) {
	e := New("input", A("name", "q"))

	assert.Equal(t, "q", e.Get("name"))
	assert.Nil(t, e.Get("missing"))
	assert.Equal(t, "fallback", e.GetOr("missing", "fallback"))
	assert.True(t, e.Has("name"))

	e.Set("maxlength", 10)
	assert.Equal(t, "10", e.GetString("maxlength"))

	e.Unset("name")
	assert.False(t, e.Has("name"))

	e.Set("placeholder", nil)
	assert.False(t, e.Has("placeholder"))
}

func TestClassNamesAreIdempotent(t *testing.T) {
	e := New("div")
	e.AddClass("x")
	e.AddClass("x")
	assert.Equal(t, 1, e.ClassNames().Len())
	assert.True(t, e.HasClass("x"))

	e.RemoveClass("x")
	assert.False(t, e.HasClass("x"))
	assert.Nil(t, e.Get("class"))

	e.AddClass("a b")
	assert.Equal(t, []string{"a", "b"}, e.ClassNames().Keys())

	e.Set("class", []string{"c", "d"})
	assert.Equal(t, "c d", e.Get("class"))
}

func TestClassString(t *testing.T) {
	names := ordered.New[string, any]()
	names.Set("btn", true)
	names.Set("hidden", false)
	names.Set("active", "is-active")
	names.Set("empty", "")

	assert.Equal(t, "btn is-active", ClassString(names))
	assert.Equal(t, "", ClassString(nil))
}

func TestIDIsMemoized(t *testing.T) {
	ctx, _ := sessionContext()

	a := New("div")
	b := New("div")
	assert.Equal(t, "autoid--1", a.IDContext(ctx))
	assert.Equal(t, "autoid--2", b.IDContext(ctx))
	assert.Equal(t, "autoid--1", a.IDContext(ctx))
	assert.Equal(t, "autoid--1", a.Get("id"), "the generated id is stored")
}

func TestIDFromName(t *testing.T) {
	ctx, s := sessionContext()

	e := New("input", A("name", "user[Émail]"))
	assert.Equal(t, "autoid--user-email", e.IDContext(ctx))
	assert.Equal(t, 1, s.NextID(), "named ids do not use the counter")
}

func TestIDResetBySet(t *testing.T) {
	ctx, _ := sessionContext()

	e := New("div", A("id", "given"))
	assert.Equal(t, "given", e.IDContext(ctx))

	e.Set("id", "changed")
	assert.Equal(t, "changed", e.IDContext(ctx))

	e.Unset("id")
	assert.Equal(t, "autoid--1", e.IDContext(ctx))
}

func TestDefaultSessionID(t *testing.T) {
	ResetDefaultSession()
	t.Cleanup(ResetDefaultSession)

	assert.Equal(t, "autoid--1", New("div").ID())
}

func TestDatasetView(t *testing.T) {
	e := New("div", A("data-x", 1), A("title", "t"))
	d := e.Dataset()

	d.Set("foo", "bar")
	assert.Equal(t, "bar", e.Get("data-foo"))
	assert.Equal(t, "bar", d.Get("foo"))
	assert.True(t, d.Has("foo"))

	all := d.All()
	assert.Equal(t, []string{"x", "foo"}, all.Keys())
	assert.Equal(t, 2, d.Len())

	d.Unset("foo")
	assert.False(t, e.Has("data-foo"))
	assert.Equal(t, []string{"x"}, d.All().Keys())
}

func TestAdoptKeyedChildren(t *testing.T) {
	email := New("input")
	named := New("input", A("name", "given"))

	parent := New("div")
	parent.Adopt(KV("email", email, "0", "text", "title", named))

	assert.Equal(t, []string{"email", "0", "title"}, parent.Children().Keys())
	assert.Equal(t, "email", email.Get("name"))
	assert.Equal(t, "given", named.Get("name"))
}

func TestAdoptPositionalChildren(t *testing.T) {
	parent := New("div")
	a := New("span")
	parent.Adopt(a, "text", nil, []string{"x", "y"})

	children := parent.Children()
	assert.Equal(t, []string{"0", "1", "2", "3"}, children.Keys())
	assert.Same(t, a, children.Values()[0])
}

func TestAdoptSameKeyOverwrites(t *testing.T) {
	first := New("span")
	second := New("span")

	parent := New("div")
	parent.Adopt(KV("a", first))
	parent.Adopt(KV("a", second))

	child, ok := parent.Child("a")
	require.True(t, ok)
	assert.Same(t, second, child)
	assert.Equal(t, 1, parent.Children().Len())
}

func TestConstructorChildren(t *testing.T) {
	e := New("div", WithChildren("a", New("span")), A("class", "box"))
	assert.Equal(t, 2, e.Children().Len())
	assert.True(t, e.HasClass("box"))
}

func TestOrderedChildren(t *testing.T) {
	e := New("div", WithChildren(KV(
		"a", New("span"),
		"b", New("span", A(Weight, "before:a")),
		"c", New("span", A(Weight, weight.Top)),
		"d", "plain",
	)))

	assert.Equal(t, []string{"c", "b", "a", "d"}, e.OrderedChildren().Keys())
	assert.Equal(t, []string{"a", "b", "c", "d"}, e.Children().Keys(), "children keep insertion order")
	assert.Equal(t, 0, New("div").OrderedChildren().Len())
}

func TestOrderedChildrenBottom(t *testing.T) {
	e := New("div", WithChildren(KV(
		"last", New("span", A(Weight, weight.Bottom)),
		"big", New("span", A(Weight, 1000)),
		"small", New("span", A(Weight, -1000)),
	)))
	assert.Equal(t, []string{"small", "big", "last"}, e.OrderedChildren().Keys())
}
