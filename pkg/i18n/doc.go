// Package i18n provides the translation and formatting collaborators used
// by widgets for labels, help texts, legends and titles.
//
// A Translator never fails: when a message is missing it formats the
// default, or the pattern itself. Catalog is the YAML-backed implementation:
//
//	cat := i18n.NewCatalog("fr")
//	_ = cat.LoadDir("locales")
//	cat.Translate("Name", nil, i18n.Options{Scope: "element.label"})
//
// Format substitutes placeholders with three sigils, ":" for verbatim
// values, "!" for escaped values and "%" for escaped values wrapped in <q>:
//
//	i18n.Format("Hello !name", i18n.Args{"name": "<b>"}) // Hello &lt;b&gt;
package i18n
