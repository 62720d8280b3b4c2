package assets

import (
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
)

// Manifest maps source asset paths to resolved paths, either fingerprinted
// file names or published URLs. It is safe for concurrent use.
type Manifest struct {
	entries map[string]string
	mu      sync.RWMutex
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		entries: make(map[string]string),
	}
}

// Load reads a manifest file: a JSON object {"source.js": "source.abc123.js"}.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeAsset).WithDetailf("read %s", path).Wrap(err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.New(errors.CodeAsset).WithDetailf("parse %s", path).Wrap(err)
	}
	if entries == nil {
		entries = make(map[string]string)
	}

	return &Manifest{entries: entries}, nil
}

// Save writes the manifest as indented JSON with sorted keys.
func (m *Manifest) Save(path string) error {
	m.mu.RLock()
	data, err := json.MarshalIndent(m.entries, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return errors.New(errors.CodeAsset).Wrap(err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(errors.CodeAsset).WithDetailf("write %s", path).Wrap(err)
	}
	return nil
}

// Resolve returns the resolved path for source, or source unchanged.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Has returns true if the manifest contains the given source path.
func (m *Manifest) Has(source string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.entries[source]
	return ok
}

// Set adds or updates an entry.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[source] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Sources returns the source paths in lexical order.
func (m *Manifest) Sources() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sources := make([]string, 0, len(m.entries))
	for k := range m.entries {
		sources = append(sources, k)
	}
	sort.Strings(sources)
	return sources
}
