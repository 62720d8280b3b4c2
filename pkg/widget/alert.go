package widget

import (
	"context"
	"fmt"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
	"github.com/brickrouge-dev/brickrouge/pkg/validation"
)

// Alert attributes.
const (
	AlertMessage     = "#alert-message"
	AlertContext     = "#alert-context"
	AlertHeading     = "#alert-heading"
	AlertDismissible = "#alert-dismissible"
)

// Alert contexts. ContextError renders as danger.
const (
	ContextSuccess = "success"
	ContextInfo    = "info"
	ContextWarning = "warning"
	ContextDanger  = "danger"
	ContextError   = "error"
)

// HTMLString is trusted markup. Alert messages of this type are not
// escaped.
type HTMLString string

func (s HTMLString) String() string { return string(s) }

type alertHooks struct {
	widgetHooks
}

func (alertHooks) Kind() string { return "alert" }

func alertContext(e *element.Element) string {
	switch c := e.GetString(AlertContext); c {
	case "":
		return ContextWarning
	case ContextError:
		return ContextDanger
	default:
		return c
	}
}

func (alertHooks) AlterClassNames(_ context.Context, e *element.Element, names *ordered.Map[string, any]) *ordered.Map[string, any] {
	names = prepend(names, "alert", "alert-"+alertContext(e))
	if element.Truthy(e.Get(AlertDismissible)) {
		names.Set("alert-dismissible", true)
	}
	return names
}

// RenderInnerHTML renders the dismiss button, the heading and the message.
// An alert without message renders nothing.
func (alertHooks) RenderInnerHTML(ctx context.Context, e *element.Element) (element.Result, error) {
	message, err := alertMessage(ctx, e.Get(AlertMessage))
	if err != nil {
		return element.Empty(), err
	}
	if message == "" {
		return element.Empty(), nil
	}

	var b strings.Builder
	if element.Truthy(e.Get(AlertDismissible)) {
		b.WriteString(`<button type="button" class="close" data-dismiss="alert">&times;</button>`)
	}
	if heading := e.GetString(AlertHeading); heading != "" {
		b.WriteString(`<h4 class="alert-heading">`)
		b.WriteString(label(ctx, heading, "alert"))
		b.WriteString("</h4>")
	}
	b.WriteString(`<div class="content">`)
	b.WriteString(message)
	b.WriteString("</div>")
	return element.HTML(b.String()), nil
}

// alertMessage renders a message: a string (translated and escaped), an
// HTMLString, a list of those, or validation errors. Lists render one
// paragraph per message.
func alertMessage(ctx context.Context, message any) (string, error) {
	switch m := message.(type) {
	case nil:
		return "", nil
	case HTMLString:
		return string(m), nil
	case string:
		if m == "" {
			return "", nil
		}
		return label(ctx, m, "alert"), nil
	case *validation.Errors:
		return paragraphs(ctx, toAny(m.Messages()))
	case []string:
		return paragraphs(ctx, toAny(m))
	case []HTMLString:
		items := make([]any, 0, len(m))
		for _, s := range m {
			items = append(items, s)
		}
		return paragraphs(ctx, items)
	case []any:
		return paragraphs(ctx, m)
	case fmt.Stringer:
		return alertMessage(ctx, m.String())
	}
	return "", unexpectedValue("alert message cannot be a %T", message)
}

func paragraphs(ctx context.Context, messages []any) (string, error) {
	if len(messages) == 1 {
		return alertMessage(ctx, messages[0])
	}
	var b strings.Builder
	for _, message := range messages {
		html, err := alertMessage(ctx, message)
		if err != nil {
			return "", err
		}
		if html == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html)
		b.WriteString("</p>")
	}
	return b.String(), nil
}

func toAny(s []string) []any {
	items := make([]any, 0, len(s))
	for _, v := range s {
		items = append(items, v)
	}
	return items
}

// NewAlert creates an alert. The context defaults to warning.
func NewAlert(message any, attrs ...element.Attr) *element.Element {
	all := append([]element.Attr{element.A(AlertMessage, message)}, attrs...)
	return element.NewWithHooks(alertHooks{}, "div", all...)
}
