package preview

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	ChangeAsset ChangeType = iota
	ChangeCSS
	ChangeCatalog
	ChangeNotes
)

// String returns the change label used in logs.
func (c ChangeType) String() string {
	switch c {
	case ChangeCSS:
		return "css"
	case ChangeCatalog:
		return "catalog"
	case ChangeNotes:
		return "notes"
	}
	return "asset"
}

// Change represents a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch. Missing paths are skipped.
	Paths []string

	// Ignore patterns to skip (names, path segments or globs).
	Ignore []string

	// Debounce is the quiet period before a batch is reported.
	Debounce time.Duration

	Logger *slog.Logger
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher reports file changes below a set of directories.
type Watcher struct {
	config   WatcherConfig
	onChange func([]Change)
	mu       sync.Mutex
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Watcher{config: config}
}

// OnChange sets the callback receiving each debounced batch. A batch holds
// at most one change per path.
func (w *Watcher) OnChange(fn func([]Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Run watches until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, root := range w.config.Paths {
		w.addTree(fw, root)
	}

	var (
		pending = map[string]Change{}
		order   []string
		timer   *time.Timer
		fire    <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.shouldIgnore(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.addTree(fw, event.Name)
					continue
				}
			}
			if _, seen := pending[event.Name]; !seen {
				order = append(order, event.Name)
			}
			pending[event.Name] = Change{Path: event.Name, Type: classifyChange(event.Name)}

			if timer == nil {
				timer = time.NewTimer(w.config.Debounce)
			} else {
				timer.Reset(w.config.Debounce)
			}
			fire = timer.C

		case <-fire:
			batch := make([]Change, 0, len(order))
			for _, p := range order {
				batch = append(batch, pending[p])
			}
			pending = map[string]Change{}
			order = nil
			fire = nil
			w.report(batch)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.config.Logger.Error("watch error", "error", err)
		}
	}
}

func (w *Watcher) report(batch []Change) {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()

	if callback != nil && len(batch) > 0 {
		callback(batch)
	}
}

// addTree watches root and every directory below it.
func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) {
	filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if p != root && w.shouldIgnore(p) {
			return filepath.SkipDir
		}
		if err := fw.Add(p); err != nil {
			w.config.Logger.Warn("cannot watch directory", "path", p, "error", err)
		}
		return nil
	})
}

// shouldIgnore checks if a path should be ignored.
func (w *Watcher) shouldIgnore(fullPath string) bool {
	name := filepath.Base(fullPath)
	normalized := filepath.ToSlash(fullPath)

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if name == pattern {
			return true
		}

		hasPathSep := strings.Contains(pattern, "/")
		if strings.ContainsAny(pattern, "*?[") {
			if hasPathSep {
				if matched, _ := path.Match(pattern, normalized); matched {
					return true
				}
			} else if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}

		if hasPathSep {
			if strings.Contains("/"+normalized+"/", "/"+strings.Trim(pattern, "/")+"/") {
				return true
			}
			continue
		}

		for _, part := range strings.Split(normalized, "/") {
			if part == pattern {
				return true
			}
		}
	}
	return false
}

// classifyChange determines the type of change based on file extension.
func classifyChange(p string) ChangeType {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".css":
		return ChangeCSS
	case ".yml", ".yaml":
		return ChangeCatalog
	case ".md", ".markdown":
		return ChangeNotes
	default:
		return ChangeAsset
	}
}
