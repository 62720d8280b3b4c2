// Package weight orders keyed collections by weight tokens.
//
// A weight token is one of:
//
//   - a number (int, float or numeric string), lower renders first
//   - "top", placed before every numeric weight
//   - "bottom", placed after every numeric weight
//   - "before:<key>" / "after:<key>", placed next to the entry <key>
//
// Anything else weighs 0. Entries of equal weight keep their original order.
package weight

import (
	"sort"
	"strconv"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// Reserved symbolic tokens.
const (
	Top    = "top"
	Bottom = "bottom"
)

// Picker returns the weight token of an entry.
type Picker[V any] func(key string, value V) any

// Relative is a parsed "before:<key>" or "after:<key>" token.
type Relative struct {
	Target string
	After  bool
}

// ParseRelative parses a relative token. ok is false for anything else.
func ParseRelative(token any) (rel Relative, ok bool) {
	s, isString := token.(string)
	if !isString {
		return Relative{}, false
	}
	switch {
	case strings.HasPrefix(s, "before:"):
		rel.Target = strings.TrimSpace(s[len("before:"):])
	case strings.HasPrefix(s, "after:"):
		rel.Target = strings.TrimSpace(s[len("after:"):])
		rel.After = true
	default:
		return Relative{}, false
	}
	return rel, rel.Target != ""
}

// Numeric converts a token to a number. ok is false for non-numeric tokens.
func Numeric(token any) (float64, bool) {
	switch v := token.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Sort returns a new map holding the entries of m ordered by weight.
// m itself is not modified.
//
// Relative tokens are resolved target-first: when the target of a relative
// entry is itself relative, the target is placed before its dependent is
// spliced next to it. A relative cycle, or a missing target, weighs 0 and
// stays in place.
func Sort[V any](m *ordered.Map[string, V], pick Picker[V]) *ordered.Map[string, V] {
	result := ordered.New[string, V]()
	if m.Len() == 0 {
		return result
	}

	keys := m.Keys()
	tokens := make(map[string]any, len(keys))
	for _, key := range keys {
		value, _ := m.Get(key)
		tokens[key] = pick(key, value)
	}

	n := float64(len(keys))
	top, bottom := -n, n
	first := true
	for _, key := range keys {
		w, ok := Numeric(tokens[key])
		if !ok {
			continue
		}
		if first {
			top, bottom = w, w
			first = false
			continue
		}
		if w < top {
			top = w
		}
		if w > bottom {
			bottom = w
		}
	}
	if !first {
		top -= n
		bottom += n
	}

	order := ordered.New[string, float64]()
	for _, key := range keys {
		switch token := tokens[key]; token {
		case Top:
			top--
			order.Set(key, top)
		case Bottom:
			bottom++
			order.Set(key, bottom)
		default:
			w, _ := Numeric(token)
			order.Set(key, w)
		}
	}

	r := &resolver{tokens: tokens, order: order, state: make(map[string]int, len(keys))}
	for _, key := range keys {
		r.resolve(key)
	}

	sorted := order.Keys()
	sort.SliceStable(sorted, func(i, j int) bool {
		wi, _ := order.Get(sorted[i])
		wj, _ := order.Get(sorted[j])
		return wi < wj
	})

	for _, key := range sorted {
		value, _ := m.Get(key)
		result.Set(key, value)
	}
	return result
}

const (
	unvisited = iota
	visiting
	resolved
)

type resolver struct {
	tokens map[string]any
	order  *ordered.Map[string, float64]
	state  map[string]int
}

func (r *resolver) resolve(key string) {
	if r.state[key] != unvisited {
		return
	}
	rel, ok := ParseRelative(r.tokens[key])
	if !ok {
		r.state[key] = resolved
		return
	}

	r.state[key] = visiting
	if _, exists := r.tokens[rel.Target]; exists && rel.Target != key && r.state[rel.Target] != visiting {
		r.resolve(rel.Target)
		w, _ := r.order.Get(rel.Target)
		r.order.Insert(rel.Target, key, w, rel.After)
	} else {
		r.order.Set(key, 0)
	}
	r.state[key] = resolved
}
