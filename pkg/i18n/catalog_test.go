package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
)

func TestCatalogScopes(t *testing.T) {
	c := NewCatalog("fr")
	require.NoError(t, c.Add("fr", map[string]string{
		"element.label.Name": "Nom",
		"Name":               "Nom (global)",
		"Hello :who":         "Bonjour :who",
	}))

	assert.Equal(t, "Nom", c.Translate("Name", nil, Options{Scope: "element.label"}))
	assert.Equal(t, "Nom (global)", c.Translate("Name", nil, Options{Scope: "group.label"}))
	assert.Equal(t, "Bonjour Zoé", c.Translate("Hello :who", Args{"who": "Zoé"}, Options{}))
	assert.Equal(t, "Missing", c.Translate("Missing", nil, Options{}))
	assert.Equal(t, "Fallback", c.Translate("missing.key", nil, Options{Default: "Fallback"}))
}

func TestCatalogLocaleMatching(t *testing.T) {
	c := NewCatalog("en")
	require.NoError(t, c.Add("en", map[string]string{"Save": "Save"}))
	require.NoError(t, c.Add("fr", map[string]string{"Save": "Enregistrer"}))

	assert.Equal(t, "Save", c.Translate("Save", nil, Options{}))
	assert.Equal(t, "Enregistrer", c.Translate("Save", nil, Options{Locale: "fr"}))
	assert.Equal(t, "Enregistrer", c.Translate("Save", nil, Options{Locale: "fr-CA"}))
}

func TestCatalogEmpty(t *testing.T) {
	c := NewCatalog("not a locale!")
	assert.Equal(t, "en", c.Locale())
	assert.Equal(t, "Ok", c.Translate("Ok", nil, Options{Locale: "de"}))
}

func TestCatalogLoadDir(t *testing.T) {
	dir := t.TempDir()
	content := "element:\n  label:\n    Name: Nom\nbutton:\n  Send: Envoyer\ncount: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.yml"), []byte(content), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	c := NewCatalog("fr")
	require.NoError(t, c.LoadDir(dir))

	assert.Equal(t, "Nom", c.Translate("Name", nil, Options{Scope: "element.label"}))
	assert.Equal(t, "Envoyer", c.Translate("Send", nil, Options{Scope: "button"}))
	assert.Equal(t, "3", c.Translate("count", nil, Options{}))
}

func TestCatalogLoadFileErrors(t *testing.T) {
	c := NewCatalog("en")

	err := c.LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeTranslation))

	bad := filepath.Join(t.TempDir(), "en.yml")
	require.NoError(t, os.WriteFile(bad, []byte("a: [unclosed"), 0o644))
	err = c.LoadFile(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeTranslation))
}
