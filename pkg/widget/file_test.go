package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
)

func TestFile(t *testing.T) {
	f := NewFile(
		element.A("name", "photo"),
		element.A("accept", "image/*"),
		element.A(FileWithLimit, 2*1024*1024),
	)

	want := `<div class="widget-file">` +
		`<input type="file" name="photo" accept="image/*" />` +
		`<div class="file-size-limit help-block">The maximum file size must be less than 2 MB.</div>` +
		`</div>`
	assert.Equal(t, want, render(t, f))
}

func TestFileCurrentValue(t *testing.T) {
	f := NewFile(element.A("name", "doc"), element.A("value", "report <final>.pdf"), element.A("required", true))

	want := `<div class="widget-file">` +
		`<input type="file" name="doc" required="required" />` +
		`<div class="file-current">report &lt;final&gt;.pdf</div>` +
		`</div>`
	assert.Equal(t, want, render(t, f))
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{2 * 1024 * 1024, "2 MB"},
		{3 * 1024 * 1024 * 1024, "3 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.n))
	}
}
