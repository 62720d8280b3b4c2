package widget

import (
	"context"
	"fmt"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/i18n"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// FileWithLimit is the maximum upload size in bytes. When set, the limit is
// shown under the input.
const FileWithLimit = "#file-with-limit"

type fileHooks struct {
	widgetHooks
}

func (fileHooks) Kind() string { return "file" }

func (fileHooks) AlterClassNames(_ context.Context, _ *element.Element, names *ordered.Map[string, any]) *ordered.Map[string, any] {
	return prepend(names, "widget-file")
}

// AlterAttributes keeps accept on the inner input.
func (h fileHooks) AlterAttributes(ctx context.Context, e *element.Element, attributes *ordered.Map[string, any]) *ordered.Map[string, any] {
	attributes = h.BaseHooks.AlterAttributes(ctx, e, attributes)
	attributes.Delete("accept")
	return attributes
}

// RenderInnerHTML renders the file input, the current file and the size
// limit.
func (fileHooks) RenderInnerHTML(ctx context.Context, e *element.Element) (element.Result, error) {
	input := element.New("input",
		element.A("type", "file"),
		element.A("name", e.Get("name")),
		element.A("accept", e.Get("accept")),
		element.A("required", e.Get("required")),
		element.A("disabled", e.Get("disabled")),
	)
	html, err := input.HTML(ctx)
	if err != nil {
		return element.Empty(), err
	}

	var b strings.Builder
	b.WriteString(html)
	if current := e.GetString("value"); current != "" {
		b.WriteString(`<div class="file-current">`)
		b.WriteString(element.Escape(current))
		b.WriteString("</div>")
	}
	if limit := e.Get(FileWithLimit); element.Truthy(limit) {
		size, err := intAttribute(e, FileWithLimit, 0)
		if err != nil {
			return element.Empty(), err
		}
		b.WriteString(`<div class="file-size-limit help-block">`)
		b.WriteString(element.Translate(ctx, "The maximum file size must be less than :size.",
			i18n.Args{"size": FormatSize(size)}, i18n.Options{Scope: "file"}))
		b.WriteString("</div>")
	}
	return element.HTML(b.String()), nil
}

// FormatSize formats a number of bytes for humans: 512 B, 2 KB, 1.5 MB.
func FormatSize(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit && exp < 3; m /= unit {
		div *= unit
		exp++
	}
	value := float64(n) / float64(div)
	suffix := []string{"KB", "MB", "GB", "TB"}[exp]
	if value == float64(int(value)) {
		return fmt.Sprintf("%d %s", int(value), suffix)
	}
	return fmt.Sprintf("%.1f %s", value, suffix)
}

// NewFile creates a file upload widget.
func NewFile(attrs ...element.Attr) *element.Element {
	return element.NewWithHooks(fileHooks{}, "div", attrs...)
}
