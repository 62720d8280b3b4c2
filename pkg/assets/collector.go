package assets

import (
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
	"github.com/brickrouge-dev/brickrouge/pkg/weight"
)

// Collector gathers asset paths with a weight.
// Adding a path twice keeps its first position and the last weight.
// A Collector belongs to one document and is not safe for concurrent use.
type Collector struct {
	collected *ordered.Map[string, int]
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{collected: ordered.New[string, int]()}
}

// Add collects path with weight. Lower weights come first.
func (c *Collector) Add(path string, w int) *Collector {
	c.collected.Set(path, w)
	return c
}

// Has reports whether path was collected.
func (c *Collector) Has(path string) bool {
	return c.collected.Has(path)
}

// Len returns the number of collected paths.
func (c *Collector) Len() int {
	return c.collected.Len()
}

// Get returns the collected paths sorted by weight. Paths of equal weight
// keep the order in which they were first added.
func (c *Collector) Get() []string {
	sorted := weight.Sort(c.collected, func(_ string, w int) any { return w })
	return sorted.Keys()
}

// Clear forgets every collected path.
func (c *Collector) Clear() {
	c.collected.Clear()
}
