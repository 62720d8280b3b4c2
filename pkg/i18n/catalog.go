package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
)

// Catalog is a Translator backed by per-locale message tables.
//
// Lookups try "<scope>.<pattern>" then "<pattern>" in the locale that best
// matches the requested one, then the default, then the pattern itself.
// The found message is passed through the Formatter. It is safe for
// concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	locale    language.Tag
	tags      []language.Tag
	messages  map[language.Tag]map[string]string
	matcher   language.Matcher
	formatter Formatter
}

// NewCatalog creates an empty catalog whose default locale is locale.
// An unparsable locale falls back to English.
func NewCatalog(locale string) *Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Catalog{
		locale:    tag,
		messages:  make(map[language.Tag]map[string]string),
		formatter: DefaultFormatter,
	}
}

// SetFormatter replaces the placeholder formatter.
func (c *Catalog) SetFormatter(f Formatter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formatter = f
}

// Locale returns the default locale.
func (c *Catalog) Locale() string {
	return c.locale.String()
}

// Add merges messages into the table of locale.
func (c *Catalog) Add(locale string, messages map[string]string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return errors.New(errors.CodeTranslation).
			WithDetailf("invalid locale %q", locale).
			Wrap(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.messages[tag]
	if !ok {
		table = make(map[string]string, len(messages))
		c.messages[tag] = table
		c.tags = append(c.tags, tag)
		c.matcher = language.NewMatcher(c.tags)
	}
	for k, v := range messages {
		table[k] = v
	}
	return nil
}

// LoadFile loads a YAML catalog. The locale is the file name without its
// extension ("fr.yml" holds French). Nested maps are flattened with dots:
//
//	element:
//	  label:
//	    Name: Nom
//
// defines "element.label.Name".
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New(errors.CodeTranslation).WithDetailf("read %s", path).Wrap(err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return errors.New(errors.CodeTranslation).WithDetailf("parse %s", path).Wrap(err)
	}

	messages := make(map[string]string)
	flatten("", tree, messages)

	locale := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return c.Add(locale, messages)
}

// LoadDir loads every *.yml and *.yaml file in dir.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.New(errors.CodeTranslation).WithDetailf("read dir %s", dir).Wrap(err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yml", ".yaml":
			if err := c.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

// Translate implements Translator.
func (c *Catalog) Translate(pattern string, args Args, opts Options) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if table := c.table(opts.Locale); table != nil {
		if opts.Scope != "" {
			if msg, ok := table[opts.Scope+"."+pattern]; ok {
				return c.formatter.Format(msg, args)
			}
		}
		if msg, ok := table[pattern]; ok {
			return c.formatter.Format(msg, args)
		}
	}

	if opts.Default != "" {
		return c.formatter.Format(opts.Default, args)
	}
	return c.formatter.Format(pattern, args)
}

// table returns the message table best matching locale. Caller holds mu.
func (c *Catalog) table(locale string) map[string]string {
	if len(c.tags) == 0 {
		return nil
	}
	want := c.locale
	if locale != "" {
		if tag, err := language.Parse(locale); err == nil {
			want = tag
		}
	}
	if table, ok := c.messages[want]; ok {
		return table
	}
	_, index, confidence := c.matcher.Match(want)
	if confidence == language.No {
		return nil
	}
	return c.messages[c.tags[index]]
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		case nil:
			out[full] = ""
		default:
			out[full] = fmt.Sprint(v)
		}
	}
}
