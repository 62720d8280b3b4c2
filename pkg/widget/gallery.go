package widget

import (
	"sort"

	"github.com/a-h/templ"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
	"github.com/brickrouge-dev/brickrouge/pkg/element"
)

// Sample is a ready-made widget used by the preview gallery and the
// render command.
type Sample struct {
	Name  string
	Title string

	// Notes describe the sample in Markdown.
	Notes string

	// Build creates a fresh widget.
	Build func() templ.Component
}

var samples = map[string]Sample{
	"alert": {
		Title: "Alert",
		Notes: "Messages take a **context**: `success`, `info`, `warning` or `danger`.",
		Build: func() templ.Component {
			return NewAlert("Your changes have been saved.",
				element.A(AlertContext, ContextSuccess),
				element.A(AlertHeading, "Saved"),
				element.A(AlertDismissible, true),
			)
		},
	},
	"button": {
		Title: "Button",
		Notes: "The `btn` class is always rendered first.",
		Build: func() templ.Component {
			return NewButton("Ok", element.A("type", "submit"), element.A("class", "btn-primary"))
		},
	},
	"dropdown-menu": {
		Title: "Dropdown menu",
		Notes: "`false` or `-` options render dividers.",
		Build: func() templ.Component {
			return NewDropdownMenu(
				element.A(element.Options, element.KV("edit", "Edit", "copy", "Duplicate", "sep", Divider, "delete", "Delete")),
				element.A("value", "edit"),
			)
		},
	},
	"file": {
		Title: "File",
		Notes: "`#file-with-limit` shows the maximum upload size.",
		Build: func() templ.Component {
			return NewFile(element.A("name", "photo"), element.A("accept", "image/*"), element.A(FileWithLimit, 2*1024*1024))
		},
	},
	"form": {
		Title: "Form",
		Notes: "Children are wrapped by a **group**; `#actions` set to `true` adds a submit button.",
		Build: func() templ.Component {
			return NewForm(
				element.WithChildren(NewGroup(
					element.A(element.Legend, "Account"),
					element.WithChildren(element.KV(
						"email", NewText(element.A(element.GroupLabel, "Email"), element.A("required", true)),
						"birthday", NewDate(element.A(element.GroupLabel, "Birthday")),
						"newsletter", element.New(element.TypeCheckbox, element.A(element.Label, "Subscribe")),
					)),
				)),
				element.A(Actions, true),
			)
		},
	},
	"modal": {
		Title: "Modal",
		Build: func() templ.Component {
			return NewModal(
				element.A(Title, "Delete record"),
				element.A(element.InnerHTML, "<p>This cannot be undone.</p>"),
				element.A(Actions, ActionsBoolean),
			)
		},
	},
	"pagination": {
		Title: "Pagination",
		Notes: "`#page` is zero based. Pages away from the current one collapse into a gap.",
		Build: func() templ.Component {
			return NewPagination(element.A(Count, 200), element.A(Limit, 10), element.A(Page, 9), element.A(URL, "/articles"))
		},
	},
	"popover": {
		Title: "Popover",
		Build: func() templ.Component {
			return NewPopover(
				element.A(Title, "Options"),
				element.A(Placement, "after"),
				element.A(element.InnerHTML, "Popover content"),
				element.A(Actions, ActionsBoolean),
			)
		},
	},
	"split-button": {
		Title: "Split button",
		Notes: "Class names starting with `btn-` are forwarded to the buttons.",
		Build: func() templ.Component {
			return NewSplitButton("Save",
				element.A("class", "btn-primary dropup"),
				element.A(element.Options, element.KV("draft", "Save as draft", "copy", "Save a copy")),
			)
		},
	},
	"text": {
		Title: "Text",
		Notes: "`#addon` wraps the input in an input group.",
		Build: func() templ.Component {
			return NewText(element.A("name", "price"), element.A(Addon, "€"), element.A(element.Label, "Price"))
		},
	},
}

// Samples returns every sample sorted by name.
func Samples() []Sample {
	names := SampleNames()
	all := make([]Sample, 0, len(names))
	for _, name := range names {
		s, _ := Lookup(name)
		all = append(all, s)
	}
	return all
}

// SampleNames returns the sample names in order.
func SampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the sample called name.
func Lookup(name string) (Sample, error) {
	s, ok := samples[name]
	if !ok {
		return Sample{}, errors.New(errors.CodeUnknownWidget).
			WithDetailf("no widget sample named %q", name).
			WithSuggestion("Run 'brickrouge render --list' to see the available samples")
	}
	s.Name = name
	return s, nil
}
