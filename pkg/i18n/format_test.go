package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     Args
		want     string
	}{
		{"no args", "Hello :name", nil, "Hello :name"},
		{"verbatim", "Hello :name", Args{"name": "<b>Ann</b>"}, "Hello <b>Ann</b>"},
		{"escaped", "Hello !name", Args{"name": "<b>Ann</b>"}, "Hello &lt;b&gt;Ann&lt;/b&gt;"},
		{"quoted", "Hello %name", Args{"name": "A&B"}, "Hello <q>A&amp;B</q>"},
		{"explicit sigil only", "Hello :name !name", Args{"!name": "<x>"}, "Hello :name &lt;x&gt;"},
		{"positional backslash", `\1 and \2`, Positional("a", "b"), "a and b"},
		{"positional braces", "{2} then {1}", Positional("a", "b"), "b then a"},
		{"longest placeholder wins", ":name :names", Args{"name": "x", "names": "y"}, "x y"},
		{"no rescan", ":a", Args{"a": ":b", "b": "nope"}, ":b"},
		{"bool and nil", ":t :f :n", Args{"t": true, "f": false, "n": nil}, "<em>true</em> <em>false</em> <em>null</em>"},
		{"numbers", "Total: :count", Args{"count": 42}, "Total: 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.args))
		})
	}
}

func TestPassthrough(t *testing.T) {
	var tr Passthrough
	assert.Equal(t, "Save", tr.Translate("Save", nil, Options{Scope: "button"}))
	assert.Equal(t, "Send it", tr.Translate("send", nil, Options{Default: "Send it"}))
	assert.Equal(t, "Hi Bo", tr.Translate("Hi :who", Args{"who": "Bo"}, Options{}))
}
