package element

import (
	"context"
	"strconv"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
	"github.com/brickrouge-dev/brickrouge/pkg/weight"
)

// Element is an HTML element.
//
// Set and Get give special meaning to four keys: "#children" replaces the
// children, "#inner-html" sets the inner HTML override, "class" sets the
// class names and "id" resets the memoized id.
//
// An Element is not safe for concurrent use.
type Element struct {
	hooks   Hooks
	typ     string
	tagName string

	attributes *ordered.Map[string, any]
	classNames *ordered.Map[string, any]
	children   *ordered.Map[string, any]
	nextChild  int

	innerHTML *string

	// id caches the value returned by ID.
	id *string
}

// New creates an element of the given type with the default hooks.
func New(typ string, attrs ...Attr) *Element {
	return NewWithHooks(BaseHooks{}, typ, attrs...)
}

// NewWithHooks creates an element rendered through hooks.
//
// The pseudo-types checkbox and radio become input tags with a default
// type attribute; checkbox-group and radio-group become div tags with a
// class of the same name. Textareas default to 10 rows and 76 columns.
// Children are adopted after every other attribute is set.
func NewWithHooks(hooks Hooks, typ string, attrs ...Attr) *Element {
	if hooks == nil {
		hooks = BaseHooks{}
	}
	e := &Element{
		hooks:      hooks,
		typ:        typ,
		tagName:    typ,
		attributes: ordered.New[string, any](),
		classNames: ordered.New[string, any](),
		children:   ordered.New[string, any](),
	}

	var children []any
	attributes := ordered.New[string, any]()
	for _, a := range attrs {
		if a.Key == Children {
			children = append(children, a.Value)
			continue
		}
		attributes.Set(a.Key, a.Value)
	}

	switch typ {
	case TypeCheckbox:
		e.tagName = "input"
		attributes.SetDefault("type", "checkbox")
	case TypeRadio:
		e.tagName = "input"
		attributes.SetDefault("type", "radio")
	case TypeCheckboxGroup:
		e.tagName = "div"
		e.AddClass("checkbox-group")
	case TypeRadioGroup:
		e.tagName = "div"
		e.AddClass("radio-group")
	case "textarea":
		attributes.SetDefault("rows", 10)
		attributes.SetDefault("cols", 76)
	}

	for _, p := range attributes.Pairs() {
		e.Set(p.Key, p.Value)
	}
	if len(children) > 0 {
		e.Adopt(children...)
	}
	return e
}

// Type returns the logical type, a tag name or a pseudo-type.
func (e *Element) Type() string { return e.typ }

// TagName returns the emitted tag.
func (e *Element) TagName() string { return e.tagName }

// Hooks returns the hooks the element renders through.
func (e *Element) Hooks() Hooks { return e.hooks }

// Set stores an attribute.
func (e *Element) Set(name string, value any) *Element {
	switch name {
	case Children:
		e.children.Clear()
		e.nextChild = 0
		e.Adopt(value)
		return e
	case InnerHTML:
		if value == nil {
			e.innerHTML = nil
		} else {
			s := Stringify(value)
			e.innerHTML = &s
		}
		return e
	case "class":
		e.classNames.Clear()
		if names, ok := value.([]string); ok {
			e.AddClass(strings.Join(names, " "))
		} else {
			e.AddClass(Stringify(value))
		}
		return e
	case "id":
		e.id = nil
	}
	e.attributes.Set(name, value)
	return e
}

// Get returns an attribute, or nil. "class" returns the class names joined
// by spaces, "#children" a copy of the children.
func (e *Element) Get(name string) any {
	switch name {
	case Children:
		return e.Children()
	case InnerHTML:
		if e.innerHTML == nil {
			return nil
		}
		return *e.innerHTML
	case "class":
		if class := ClassString(e.classNames); class != "" {
			return class
		}
		return nil
	}
	v, _ := e.attributes.Get(name)
	return v
}

// GetOr returns an attribute, or def when it is nil.
func (e *Element) GetOr(name string, def any) any {
	if v := e.Get(name); v != nil {
		return v
	}
	return def
}

// GetString returns an attribute converted with Stringify.
func (e *Element) GetString(name string) string {
	return Stringify(e.Get(name))
}

// Has reports whether an attribute is set to a non-nil value.
func (e *Element) Has(name string) bool {
	if name == Children {
		return e.children.Len() > 0
	}
	return e.Get(name) != nil
}

// Unset removes an attribute.
func (e *Element) Unset(name string) *Element {
	switch name {
	case Children:
		e.children.Clear()
		e.nextChild = 0
		return e
	case InnerHTML:
		e.innerHTML = nil
		return e
	case "class":
		e.classNames.Clear()
		return e
	case "id":
		e.id = nil
	}
	e.attributes.Delete(name)
	return e
}

// Attributes returns a copy of the stored attributes, special and dataset
// entries included, class excluded.
func (e *Element) Attributes() *ordered.Map[string, any] {
	return e.attributes.Clone()
}

// AddClass adds one or more space-separated class names.
func (e *Element) AddClass(names string) *Element {
	for _, name := range strings.Fields(names) {
		e.classNames.Set(name, true)
	}
	return e
}

// RemoveClass removes one or more space-separated class names.
func (e *Element) RemoveClass(names string) *Element {
	for _, name := range strings.Fields(names) {
		e.classNames.Delete(name)
	}
	return e
}

// HasClass reports whether the class name is set.
func (e *Element) HasClass(name string) bool {
	v, _ := e.classNames.Get(name)
	return Truthy(v)
}

// ClassNames returns a copy of the class names.
func (e *Element) ClassNames() *ordered.Map[string, any] {
	return e.classNames.Clone()
}

// ClassString renders class names. An entry set to true renders its name,
// an entry set to a string renders the string, anything falsy is skipped.
func ClassString(names *ordered.Map[string, any]) string {
	var parts []string
	for _, p := range names.Pairs() {
		switch v := p.Value.(type) {
		case bool:
			if v {
				parts = append(parts, p.Key)
			}
		case string:
			if v != "" {
				parts = append(parts, v)
			}
		default:
			if Truthy(v) {
				parts = append(parts, p.Key)
			}
		}
	}
	return strings.Join(parts, " ")
}

// ID returns the id attribute, generating and storing one on first call.
// It uses the default session; see IDContext.
func (e *Element) ID() string {
	return e.IDContext(context.Background())
}

// IDContext returns the id attribute, generating and storing one on first
// call. Generated ids derive from the name attribute, or from the id
// counter of the session in ctx: "autoid--email", "autoid--3".
func (e *Element) IDContext(ctx context.Context) string {
	if e.id != nil {
		return *e.id
	}

	id := Stringify(e.Get("id"))
	if id == "" {
		if name := Stringify(e.Get("name")); name != "" {
			id = "autoid--" + Normalize(name)
		} else {
			id = "autoid--" + strconv.Itoa(SessionFrom(ctx).NextID())
		}
		e.attributes.Set("id", id)
	}
	e.id = &id
	return id
}

// Dataset returns the live dataset view.
func (e *Element) Dataset() Dataset {
	return Dataset{e: e}
}

// Adopt appends children. A child is an *Element, a string of HTML, a
// templ component or any fmt.Stringer. Slices are adopted item by item.
//
// An ordered map adopts each entry: numeric keys are discarded and the
// child appended, other keys name the child. An *Element named by a key
// takes the key as its name attribute unless it already has one.
func (e *Element) Adopt(children ...any) *Element {
	for _, child := range children {
		switch c := child.(type) {
		case nil:
		case []any:
			e.Adopt(c...)
		case []*Element:
			for _, el := range c {
				e.append(el)
			}
		case []string:
			for _, s := range c {
				e.append(s)
			}
		case *ordered.Map[string, any]:
			for _, p := range c.Pairs() {
				e.adoptKeyed(p.Key, p.Value)
			}
		case *ordered.Map[string, *Element]:
			for _, p := range c.Pairs() {
				e.adoptKeyed(p.Key, p.Value)
			}
		default:
			e.append(child)
		}
	}
	return e
}

func (e *Element) adoptKeyed(key string, child any) {
	if child == nil {
		return
	}
	if isIndex(key) {
		e.append(child)
		return
	}
	if el, ok := child.(*Element); ok && el != nil && el.Get("name") == nil {
		el.Set("name", key)
	}
	e.children.Set(key, child)
}

func (e *Element) append(child any) {
	if el, ok := child.(*Element); ok && el == nil {
		return
	}
	for e.children.Has(strconv.Itoa(e.nextChild)) {
		e.nextChild++
	}
	e.children.Set(strconv.Itoa(e.nextChild), child)
	e.nextChild++
}

func isIndex(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Children returns a copy of the children in insertion order.
func (e *Element) Children() *ordered.Map[string, any] {
	return e.children.Clone()
}

// Child returns the child stored under key.
func (e *Element) Child(key string) (any, bool) {
	return e.children.Get(key)
}

// HasChildren reports whether the element has children.
func (e *Element) HasChildren() bool {
	return e.children.Len() > 0
}

// OrderedChildren returns the children sorted by their "#weight" attribute.
// Children that are not elements weigh 0.
func (e *Element) OrderedChildren() *ordered.Map[string, any] {
	if e.children.Len() == 0 {
		return ordered.New[string, any]()
	}
	return weight.Sort(e.children, childWeight)
}

func childWeight(_ string, child any) any {
	if el, ok := child.(*Element); ok {
		return el.Get(Weight)
	}
	return 0
}
