package assets

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
)

func TestManifestResolve(t *testing.T) {
	m := NewManifest()
	m.Set("brickrouge.js", "brickrouge.abc123.js")
	m.Set("brickrouge.css", "brickrouge.def456.css")

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"found entry", "brickrouge.js", "brickrouge.abc123.js"},
		{"found entry css", "brickrouge.css", "brickrouge.def456.css"},
		{"missing entry returns original", "popover.js", "popover.js"},
		{"empty string returns empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Resolve(tt.source)
			if got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.source, got, tt.expected)
			}
		})
	}
}

func TestManifestHasAndLen(t *testing.T) {
	m := NewManifest()
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}

	m.Set("brickrouge.js", "brickrouge.abc123.js")
	m.Set("brickrouge.js", "brickrouge.fff000.js")

	if !m.Has("brickrouge.js") {
		t.Error("Has(brickrouge.js) = false, want true")
	}
	if m.Has("popover.js") {
		t.Error("Has(popover.js) = true, want false")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	if got := m.Resolve("brickrouge.js"); got != "brickrouge.fff000.js" {
		t.Errorf("Resolve() = %q, want the last value set", got)
	}
}

func TestManifestSources(t *testing.T) {
	m := NewManifest()
	m.Set("z.js", "z.1.js")
	m.Set("a.css", "a.2.css")

	want := []string{"a.css", "z.js"}
	if got := m.Sources(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sources() = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "manifest.json")

	content := `{"brickrouge.js": "brickrouge.abc123.js", "brickrouge.css": "brickrouge.def456.css"}`
	if err := os.WriteFile(manifestPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(manifestPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := m.Resolve("brickrouge.js"); got != "brickrouge.abc123.js" {
		t.Errorf("Resolve(brickrouge.js) = %q, want brickrouge.abc123.js", got)
	}
	if got := m.Resolve("brickrouge.css"); got != "brickrouge.def456.css" {
		t.Errorf("Resolve(brickrouge.css) = %q, want brickrouge.def456.css", got)
	}
}

func TestLoadNullIsEmpty(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(manifestPath, []byte("null"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(manifestPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	m.Set("a.js", "a.1.js")
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(invalid, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{"/nonexistent/manifest.json", invalid} {
		_, err := Load(path)
		if err == nil {
			t.Fatalf("Load(%q) should return an error", path)
		}
		if !errors.Is(err, errors.CodeAsset) {
			t.Errorf("Load(%q) error = %v, want code %s", path, err, errors.CodeAsset)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "manifest.json")

	m := NewManifest()
	m.Set("brickrouge.css", "https://cdn.example.com/brickrouge.1a2b3c4d.css")
	if err := m.Save(manifestPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(manifestPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := loaded.Resolve("brickrouge.css"); got != "https://cdn.example.com/brickrouge.1a2b3c4d.css" {
		t.Errorf("Resolve() after round trip = %q", got)
	}
}
