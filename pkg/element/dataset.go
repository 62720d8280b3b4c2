package element

import (
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// Dataset is a view over the "data-" attributes of an element. Writes go
// straight to the element.
type Dataset struct {
	e *Element
}

// Get returns the value of "data-<prop>".
func (d Dataset) Get(prop string) any {
	return d.e.Get("data-" + prop)
}

// Set sets "data-<prop>".
func (d Dataset) Set(prop string, value any) {
	d.e.Set("data-"+prop, value)
}

// Has reports whether "data-<prop>" is set.
func (d Dataset) Has(prop string) bool {
	return d.e.Has("data-" + prop)
}

// Unset removes "data-<prop>".
func (d Dataset) Unset(prop string) {
	d.e.Unset("data-" + prop)
}

// All returns the dataset entries, prefix stripped, in attribute order.
func (d Dataset) All() *ordered.Map[string, any] {
	all := ordered.New[string, any]()
	for _, p := range d.e.attributes.Pairs() {
		if prop, ok := strings.CutPrefix(p.Key, "data-"); ok {
			all.Set(prop, p.Value)
		}
	}
	return all
}

// Len returns the number of dataset entries.
func (d Dataset) Len() int {
	return d.All().Len()
}
