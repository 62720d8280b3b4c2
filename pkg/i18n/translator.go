package i18n

// Options refine a translation lookup.
type Options struct {
	// Scope is prepended to the pattern for the first lookup, e.g.
	// "element.label".
	Scope string

	// Default is used when no translation exists. When empty the pattern
	// itself is used.
	Default string

	// Locale overrides the translator's locale for this lookup.
	Locale string
}

// Translator turns a message pattern into localized text.
// Implementations must never fail: a missing translation falls back to
// formatting the default or the pattern itself.
type Translator interface {
	Translate(pattern string, args Args, opts Options) string
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(pattern string, args Args, opts Options) string

// Translate implements Translator.
func (f TranslatorFunc) Translate(pattern string, args Args, opts Options) string {
	return f(pattern, args, opts)
}

// Passthrough translates nothing; it only formats the default or the pattern.
type Passthrough struct{}

// Translate implements Translator.
func (Passthrough) Translate(pattern string, args Args, opts Options) string {
	if opts.Default != "" {
		return DefaultFormatter.Format(opts.Default, args)
	}
	return DefaultFormatter.Format(pattern, args)
}
