package element

import (
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/assets"
)

// Document collects the assets required by the widgets of a page and holds
// its body.
type Document struct {
	CSS  *assets.Collector
	JS   *assets.Collector
	Body *Element

	resolver assets.Resolver
}

// NewDocument creates a document. A nil resolver leaves paths unchanged.
func NewDocument(resolver assets.Resolver) *Document {
	if resolver == nil {
		resolver = assets.NewPassthroughResolver("")
	}
	return &Document{
		CSS:      assets.NewCollector(),
		JS:       assets.NewCollector(),
		Body:     New("body"),
		resolver: resolver,
	}
}

// Resolve turns an asset path into a URL.
func (d *Document) Resolve(path string) string {
	return d.resolver.Asset(path)
}

// RenderHead renders a stylesheet link per collected CSS file.
func (d *Document) RenderHead() string {
	var b strings.Builder
	for _, path := range d.CSS.Get() {
		b.WriteString(`<link rel="stylesheet" href="`)
		b.WriteString(EscapeAttr(d.Resolve(path)))
		b.WriteString("\" />\n")
	}
	return b.String()
}

// RenderScripts renders a script tag per collected JavaScript file.
func (d *Document) RenderScripts() string {
	var b strings.Builder
	for _, path := range d.JS.Get() {
		b.WriteString(`<script src="`)
		b.WriteString(EscapeAttr(d.Resolve(path)))
		b.WriteString("\"></script>\n")
	}
	return b.String()
}

// Reset clears the collected assets and replaces the body.
func (d *Document) Reset() {
	d.CSS.Clear()
	d.JS.Clear()
	d.Body = New("body")
}
