package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tree() (root, a, b, c *Element) {
	c = New("span", A("name", "c"))
	b = New("div", WithChildren(KV("c", c)))
	a = New("input")
	root = New("form", WithChildren("text", KV("a", a, "b", b)))
	return root, a, b, c
}

func TestIteratorSkipsStrings(t *testing.T) {
	root, a, b, _ := tree()

	it := NewIterator(root)
	assert.Equal(t, 2, it.Len())

	var keys []string
	var elements []*Element
	for it.Next() {
		keys = append(keys, it.Key())
		elements = append(elements, it.Element())
	}
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, []*Element{a, b}, elements)
	assert.False(t, it.Next())
	assert.Nil(t, it.Element())

	it.Rewind()
	assert.True(t, it.Next())
	assert.Equal(t, "a", it.Key())
}

func TestIteratorIgnoresWeights(t *testing.T) {
	first := New("input", A(Weight, 10))
	second := New("input", A(Weight, -10))
	root := New("form", WithChildren(first, second))

	it := NewIterator(root)
	it.Next()
	assert.Same(t, first, it.Element())
}

func TestIteratorSnapshot(t *testing.T) {
	root, _, _, _ := tree()

	it := NewIterator(root)
	root.Adopt(New("input"))

	n := 0
	for it.Next() {
		n++
	}
	assert.Equal(t, 2, n)
}

func TestRecursiveIterator(t *testing.T) {
	root, _, b, c := tree()

	it := NewRecursiveIterator(root)
	assert.True(t, it.Next())
	assert.False(t, it.HasChildren())

	assert.True(t, it.Next())
	assert.Same(t, b, it.Element())
	assert.True(t, it.HasChildren())

	children := it.Children()
	assert.True(t, children.Next())
	assert.Same(t, c, children.Element())
}

func TestRecursiveIteratorHasChildrenCountsStrings(t *testing.T) {
	root := New("div", WithChildren(New("p", WithChildren("text"))))

	it := NewRecursiveIterator(root)
	it.Next()
	assert.True(t, it.HasChildren())
	assert.False(t, it.Children().Next())
}

func TestWalkSelfFirst(t *testing.T) {
	root, a, b, c := tree()
	assert.Equal(t, []*Element{a, b, c}, Descendants(root))

	var visited []string
	Walk(root, func(key string, child *Element) bool {
		visited = append(visited, key)
		return child != b
	})
	assert.Equal(t, []string{"a", "b"}, visited)
}
