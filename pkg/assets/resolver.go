package assets

import (
	"path/filepath"
	"strings"
)

// Resolver turns an asset path into the URL written in the page.
type Resolver interface {
	Asset(source string) string
}

// manifestResolver wraps a Manifest to implement Resolver.
type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver creates a Resolver from a Manifest with an optional path
// prefix. Entries that already are absolute URLs are not prefixed.
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{
		manifest: m,
		prefix:   prefix,
	}
}

func (r *manifestResolver) Asset(source string) string {
	if isURL(source) {
		return source
	}
	resolved := r.manifest.Resolve(source)
	if isURL(resolved) {
		return resolved
	}
	return joinPrefix(r.prefix, resolved)
}

// passthrough returns assets unchanged apart from the prefix.
type passthrough struct {
	prefix string
}

// NewPassthroughResolver creates a resolver that only applies prefix.
// Use it in development where nothing is fingerprinted.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	if isURL(source) {
		return source
	}
	return joinPrefix(p.prefix, source)
}

// fileResolver maps filesystem paths below one of its roots to paths
// relative to that root before handing them to the next resolver.
type fileResolver struct {
	roots []string
	next  Resolver
}

// NewFileResolver creates a resolver for filesystem paths. A path inside one
// of roots becomes relative to it ("/srv/app/public/css/a.css" with root
// "/srv/app/public" becomes "css/a.css"); other paths are only
// slash-normalized.
func NewFileResolver(next Resolver, roots ...string) Resolver {
	cleaned := make([]string, 0, len(roots))
	for _, r := range roots {
		if r == "" {
			continue
		}
		cleaned = append(cleaned, filepath.Clean(r))
	}
	return &fileResolver{roots: cleaned, next: next}
}

func (f *fileResolver) Asset(source string) string {
	if isURL(source) {
		return source
	}
	return f.next.Asset(Relative(source, f.roots...))
}

// Relative returns source relative to the first root containing it, with
// forward slashes.
func Relative(source string, roots ...string) string {
	clean := filepath.Clean(source)
	for _, root := range roots {
		rel, err := filepath.Rel(root, clean)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		return filepath.ToSlash(rel)
	}
	return strings.TrimPrefix(filepath.ToSlash(source), "./")
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "//")
}

func joinPrefix(prefix, path string) string {
	if prefix == "" {
		return path
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(path, "/")
}
