// Package ordered provides an insertion-ordered map.
//
// Attributes, children and select options are all order-sensitive: the
// markup is emitted in the order entries were declared. Go maps do not keep
// that order, so every such collection in brickrouge is an ordered.Map.
//
//	m := ordered.New[string, any]()
//	m.Set("type", "submit")
//	m.Set("class", "btn")
//	m.Keys() // ["type", "class"]
package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pair is a single key/value entry, used to build maps from literals.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a map that remembers insertion order.
// Setting an existing key updates its value in place without moving it.
// It is not safe for concurrent use.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// New creates an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// Of creates a map from pairs, keeping their order.
func Of[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Len returns the number of entries. A nil map has no entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Set stores value under key. New keys are appended.
func (m *Map[K, V]) Set(key K, value V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// SetDefault stores value under key only when key is absent.
// It mirrors the array union operator used to merge default attributes.
func (m *Map[K, V]) SetDefault(key K, value V) {
	if !m.Has(key) {
		m.Set(key, value)
	}
}

// Delete removes key. Deleting a missing key is a no-op.
func (m *Map[K, V]) Delete(key K) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Index returns the position of key, or -1.
func (m *Map[K, V]) Index(key K) int {
	if m == nil {
		return -1
	}
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Keys returns a copy of the keys in order.
func (m *Map[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns the values in key order.
func (m *Map[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	values := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.values[k])
	}
	return values
}

// Pairs returns the entries in order.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	if m == nil {
		return nil
	}
	pairs := make([]Pair[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: m.values[k]})
	}
	return pairs
}

// Each calls fn for every entry in order until fn returns false.
// The key list is snapshotted first, so fn may mutate the map.
func (m *Map[K, V]) Each(fn func(key K, value V) bool) {
	for _, p := range m.Pairs() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// Clone returns a shallow copy.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := New[K, V]()
	if m == nil {
		return c
	}
	c.keys = append(c.keys, m.keys...)
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.keys = nil
	m.values = make(map[K]V)
}

// Insert places key/value immediately before (or after) the target key.
// If key already exists it is moved. If target is missing the entry is
// appended at the end.
func (m *Map[K, V]) Insert(target K, key K, value V, after bool) {
	m.Delete(key)
	if m.values == nil {
		m.values = make(map[K]V)
	}
	pos := m.Index(target)
	if pos < 0 {
		m.Set(key, value)
		return
	}
	if after {
		pos++
	}
	m.keys = append(m.keys, key)
	copy(m.keys[pos+1:], m.keys[pos:])
	m.keys[pos] = key
	m.values[key] = value
}

// MarshalJSON encodes the map as a JSON object with keys in order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m.Pairs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fmt.Sprint(p.Key))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
