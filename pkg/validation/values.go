package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// SplitName splits a control name into its path: "user[address][city]"
// becomes ["user", "address", "city"].
func SplitName(name string) []string {
	head, rest, found := strings.Cut(name, "[")
	if !found {
		return []string{name}
	}
	path := []string{head}
	for _, part := range strings.Split(strings.TrimSuffix(rest, "]"), "][") {
		path = append(path, part)
	}
	return path
}

// Lookup returns the value submitted for a control name. A key equal to the
// whole name wins; otherwise the bracket path is followed through nested
// maps and slices.
//
// Supported containers are map[string]any, map[string]string, url.Values,
// *ordered.Map[string, any], []any and []string. A url.Values entry with a
// single value yields a string.
func Lookup(values any, name string) (any, bool) {
	if v, ok := get(values, name); ok {
		return v, true
	}
	path := SplitName(name)
	if len(path) == 1 {
		return nil, false
	}
	current := values
	for _, key := range path {
		v, ok := get(current, key)
		if !ok {
			return nil, false
		}
		current = v
	}
	return current, true
}

func get(container any, key string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[key]
		return v, ok
	case map[string]string:
		v, ok := c[key]
		return v, ok
	case url.Values:
		return fromList(c[key])
	case map[string][]string:
		return fromList(c[key])
	case *ordered.Map[string, any]:
		return c.Get(key)
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	case []string:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	}
	return nil, false
}

func fromList(list []string) (any, bool) {
	switch len(list) {
	case 0:
		return nil, false
	case 1:
		return list[0], true
	}
	return list, true
}
