package ordered

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKeepsInsertionOrder(t *testing.T) {
	m := New[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, []int{3, 10, 2}, m.Values())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestMapDelete(t *testing.T) {
	m := Of(Pair[string, int]{"a", 1}, Pair[string, int]{"b", 2}, Pair[string, int]{"c", 3})
	m.Delete("b")
	m.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))
	assert.Equal(t, 2, m.Len())
}

func TestMapSetDefault(t *testing.T) {
	m := New[string, string]()
	m.Set("type", "submit")
	m.SetDefault("type", "button")
	m.SetDefault("class", "btn")

	v, _ := m.Get("type")
	assert.Equal(t, "submit", v)
	assert.Equal(t, []string{"type", "class"}, m.Keys())
}

func TestMapInsert(t *testing.T) {
	tests := []struct {
		name   string
		target string
		key    string
		after  bool
		want   []string
	}{
		{"before middle", "b", "x", false, []string{"a", "x", "b", "c"}},
		{"after middle", "b", "x", true, []string{"a", "b", "x", "c"}},
		{"after last", "c", "x", true, []string{"a", "b", "c", "x"}},
		{"move existing before", "a", "c", false, []string{"c", "a", "b"}},
		{"move existing after", "c", "a", true, []string{"b", "c", "a"}},
		{"missing target appends", "zz", "x", false, []string{"a", "b", "c", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Of(Pair[string, int]{"a", 1}, Pair[string, int]{"b", 2}, Pair[string, int]{"c", 3})
			m.Insert(tt.target, tt.key, 9, tt.after)
			assert.Equal(t, tt.want, m.Keys())
			v, _ := m.Get(tt.key)
			assert.Equal(t, 9, v)
		})
	}
}

func TestMapCloneIsIndependent(t *testing.T) {
	m := Of(Pair[string, int]{"a", 1})
	c := m.Clone()
	c.Set("b", 2)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, c.Len())
}

func TestNilMapReads(t *testing.T) {
	var m *Map[string, int]
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	assert.Nil(t, m.Keys())
	assert.Equal(t, -1, m.Index("a"))
}

func TestMapMarshalJSONKeepsOrder(t *testing.T) {
	m := Of(Pair[string, any]{"z", 1}, Pair[string, any]{"a", []string{"x"}})
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":["x"]}`, string(data))

	var empty *Map[string, int]
	data, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}
