package preview

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/widget"
)

// Page is a rendered gallery page: one or more samples along with the
// assets they collected.
type Page struct {
	Title   string
	Lang    string
	Samples []widget.Sample

	// NotesDir holds optional <sample>.md files replacing the built-in
	// notes.
	NotesDir string

	// Reload appends the hot reload client.
	Reload bool
}

// Component returns the page as a templ component. The session carried by
// the render context collects the stylesheets and scripts of the samples.
func (p Page) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var body bytes.Buffer
		for _, sample := range p.Samples {
			if err := p.renderSample(ctx, &body, sample); err != nil {
				return err
			}
		}

		document := element.SessionFrom(ctx).Document()

		var b bytes.Buffer
		b.WriteString("<!DOCTYPE html>\n<html lang=\"")
		b.WriteString(element.EscapeAttr(p.Lang))
		b.WriteString("\">\n<head>\n<meta charset=\"utf-8\" />\n<title>")
		b.WriteString(element.Escape(p.Title))
		b.WriteString("</title>\n")
		b.WriteString(document.RenderHead())
		b.WriteString("</head>\n<body class=\"gallery\">\n")
		p.renderNav(&b)
		b.WriteString("<main>\n")
		b.Write(body.Bytes())
		b.WriteString("</main>\n")
		b.WriteString(document.RenderScripts())
		if p.Reload {
			b.WriteString(reloadScript)
		}
		b.WriteString("</body>\n</html>\n")

		_, err := w.Write(b.Bytes())
		return err
	})
}

func (p Page) renderNav(b *bytes.Buffer) {
	b.WriteString("<nav class=\"gallery-nav\"><ul>")
	for _, name := range widget.SampleNames() {
		b.WriteString(`<li><a href="/samples/`)
		b.WriteString(element.EscapeAttr(name))
		b.WriteString(`">`)
		b.WriteString(element.Escape(name))
		b.WriteString("</a></li>")
	}
	b.WriteString("</ul></nav>\n")
}

func (p Page) renderSample(ctx context.Context, b *bytes.Buffer, sample widget.Sample) error {
	var html bytes.Buffer
	if err := sample.Build().Render(ctx, &html); err != nil {
		return err
	}

	notes, err := p.notes(sample)
	if err != nil {
		return err
	}

	b.WriteString(`<section id="sample-`)
	b.WriteString(element.EscapeAttr(sample.Name))
	b.WriteString("\" class=\"gallery-sample\">\n<h2>")
	b.WriteString(element.Escape(sample.Title))
	b.WriteString("</h2>\n")
	if notes != "" {
		b.WriteString("<div class=\"gallery-notes\">")
		b.WriteString(notes)
		b.WriteString("</div>\n")
	}
	b.WriteString("<div class=\"gallery-preview\">")
	b.Write(html.Bytes())
	b.WriteString("</div>\n<pre class=\"gallery-source\"><code>")
	b.WriteString(element.Escape(html.String()))
	b.WriteString("</code></pre>\n</section>\n")
	return nil
}

// notes renders the Markdown notes of sample.
func (p Page) notes(sample widget.Sample) (string, error) {
	source := []byte(sample.Notes)
	if p.NotesDir != "" {
		if data, err := os.ReadFile(filepath.Join(p.NotesDir, sample.Name+".md")); err == nil {
			source = data
		}
	}
	return RenderMarkdown(source)
}

// RenderMarkdown converts Markdown to HTML. Raw HTML in the source is
// dropped.
func RenderMarkdown(source []byte) (string, error) {
	if len(bytes.TrimSpace(source)) == 0 {
		return "", nil
	}
	var out bytes.Buffer
	if err := goldmark.Convert(source, &out); err != nil {
		return "", err
	}
	return out.String(), nil
}
