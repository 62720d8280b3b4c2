package preview

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"assets/brickrouge.css", ChangeCSS},
		{"assets/BRICKROUGE.CSS", ChangeCSS},
		{"locales/fr.yml", ChangeCatalog},
		{"locales/de.yaml", ChangeCatalog},
		{"notes/alert.md", ChangeNotes},
		{"assets/brickrouge.js", ChangeAsset},
		{"assets/logo.svg", ChangeAsset},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyChange(tt.path), tt.path)
	}
}

func TestShouldIgnore(t *testing.T) {
	w := NewWatcher(WatcherConfig{Ignore: []string{"node_modules", "*.swp", "build/cache", "dist/*.map"}})

	tests := []struct {
		path string
		want bool
	}{
		{"/p/node_modules/x/y.css", true},
		{"/p/assets/.main.css.swp", true},
		{"/p/build/cache/a.css", true},
		{"/p/build/other/a.css", false},
		{"dist/app.map", true},
		{"/p/assets/main.css", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, w.shouldIgnore(tt.path), tt.path)
	}
}

func TestWatcherReportsBatches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0755))

	w := NewWatcher(WatcherConfig{Paths: []string{dir}, Debounce: 20 * time.Millisecond})

	var (
		mu      sync.Mutex
		changes []Change
	)
	w.OnChange(func(batch []Change) {
		mu.Lock()
		defer mu.Unlock()
		changes = append(changes, batch...)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	target := filepath.Join(dir, "css", "brickrouge.css")
	ignored := filepath.Join(dir, "css", "brickrouge.css.swp")

	// Writes are repeated until the watcher, which starts asynchronously,
	// picks one up.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(ignored, []byte("x"), 0644)
		_ = os.WriteFile(target, []byte(".btn{}"), 0644)
		mu.Lock()
		defer mu.Unlock()
		return len(changes) > 0
	}, 5*time.Second, 50*time.Millisecond)

	mu.Lock()
	for _, c := range changes {
		assert.Equal(t, target, c.Path)
		assert.Equal(t, ChangeCSS, c.Type)
	}
	mu.Unlock()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherSkipsMissingPaths(t *testing.T) {
	w := NewWatcher(WatcherConfig{Paths: []string{filepath.Join(t.TempDir(), "missing")}})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, w.Run(ctx))
}
