package i18n

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
)

// Args holds placeholder values for Format.
//
// Keys carry an optional sigil:
//
//	":name"  inserted verbatim
//	"!name"  HTML-escaped
//	"%name"  HTML-escaped and wrapped in <q>
//
// A key without a sigil answers to all three forms. Numeric keys ("1", "2",
// ...) also answer to the positional forms `\N` and `{N}`.
type Args map[string]any

// Positional builds Args from values, numbered from 1.
func Positional(values ...any) Args {
	args := make(Args, len(values))
	for i, v := range values {
		args[strconv.Itoa(i+1)] = v
	}
	return args
}

// Formatter substitutes placeholders in a template.
type Formatter interface {
	Format(template string, args Args) string
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(template string, args Args) string

// Format implements Formatter.
func (f FormatterFunc) Format(template string, args Args) string {
	return f(template, args)
}

// DefaultFormatter is the placeholder formatter used by translators.
var DefaultFormatter Formatter = FormatterFunc(Format)

// Format replaces placeholders in template with values from args.
// Longer placeholders win over shorter ones sharing a prefix, and replaced
// text is never scanned again.
func Format(template string, args Args) string {
	if len(args) == 0 {
		return template
	}

	holders := make(map[string]string, len(args)*3)
	for key, value := range args {
		s := stringify(value)
		if key == "" {
			continue
		}
		switch key[0] {
		case ':':
			holders[key] = s
			continue
		case '!':
			holders[key] = html.EscapeString(s)
			continue
		case '%':
			holders[key] = "<q>" + html.EscapeString(s) + "</q>"
			continue
		}

		escaped := html.EscapeString(s)
		holders[":"+key] = s
		holders["!"+key] = escaped
		holders["%"+key] = "<q>" + escaped + "</q>"
		if _, err := strconv.Atoi(key); err == nil {
			holders[`\`+key] = s
			holders["{"+key+"}"] = s
		}
	}

	placeholders := make([]string, 0, len(holders))
	for p := range holders {
		placeholders = append(placeholders, p)
	}
	sort.Slice(placeholders, func(i, j int) bool {
		if len(placeholders[i]) != len(placeholders[j]) {
			return len(placeholders[i]) > len(placeholders[j])
		}
		return placeholders[i] < placeholders[j]
	})

	pairs := make([]string, 0, len(placeholders)*2)
	for _, p := range placeholders {
		pairs = append(pairs, p, holders[p])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "<em>null</em>"
	case bool:
		if v {
			return "<em>true</em>"
		}
		return "<em>false</em>"
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
