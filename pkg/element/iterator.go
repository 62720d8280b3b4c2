package element

// Iterator walks the element children of an element in insertion order.
// Children are snapshotted when the iterator is created; string children
// are skipped.
//
//	it := element.NewIterator(form)
//	for it.Next() {
//		fmt.Println(it.Key(), it.Element().Type())
//	}
type Iterator struct {
	keys     []string
	elements []*Element
	pos      int
}

// NewIterator creates an iterator over the element children of e.
func NewIterator(e *Element) *Iterator {
	it := &Iterator{pos: -1}
	for _, p := range e.children.Pairs() {
		if child, ok := p.Value.(*Element); ok && child != nil {
			it.keys = append(it.keys, p.Key)
			it.elements = append(it.elements, child)
		}
	}
	return it
}

// Next advances to the next child and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.pos < len(it.elements) {
		it.pos++
	}
	return it.pos < len(it.elements)
}

// Key returns the key of the current child.
func (it *Iterator) Key() string {
	if !it.valid() {
		return ""
	}
	return it.keys[it.pos]
}

// Element returns the current child.
func (it *Iterator) Element() *Element {
	if !it.valid() {
		return nil
	}
	return it.elements[it.pos]
}

// Rewind moves back before the first child.
func (it *Iterator) Rewind() {
	it.pos = -1
}

// Len returns the number of element children in the snapshot.
func (it *Iterator) Len() int {
	return len(it.elements)
}

func (it *Iterator) valid() bool {
	return it.pos >= 0 && it.pos < len(it.elements)
}

// RecursiveIterator is an Iterator that can descend into the children of
// the current element.
type RecursiveIterator struct {
	*Iterator
}

// NewRecursiveIterator creates a recursive iterator over e.
func NewRecursiveIterator(e *Element) *RecursiveIterator {
	return &RecursiveIterator{Iterator: NewIterator(e)}
}

// HasChildren reports whether the current element has any children,
// strings included.
func (it *RecursiveIterator) HasChildren() bool {
	e := it.Element()
	return e != nil && e.HasChildren()
}

// Children returns an iterator over the children of the current element.
func (it *RecursiveIterator) Children() *RecursiveIterator {
	e := it.Element()
	if e == nil {
		return &RecursiveIterator{Iterator: &Iterator{pos: -1}}
	}
	return NewRecursiveIterator(e)
}

// Walk visits the element descendants of e depth first, each element
// before its children. Returning false from fn skips the children of the
// visited element.
func Walk(e *Element, fn func(key string, child *Element) bool) {
	walk(NewRecursiveIterator(e), fn)
}

func walk(it *RecursiveIterator, fn func(string, *Element) bool) {
	for it.Next() {
		if !fn(it.Key(), it.Element()) {
			continue
		}
		if it.HasChildren() {
			walk(it.Children(), fn)
		}
	}
}

// Descendants returns the element descendants of e in Walk order.
func Descendants(e *Element) []*Element {
	var all []*Element
	Walk(e, func(_ string, child *Element) bool {
		all = append(all, child)
		return true
	})
	return all
}
