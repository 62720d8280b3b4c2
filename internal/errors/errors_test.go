package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "render error",
			code:    CodeInvalidAttributeValue,
			wantMsg: "Invalid attribute value",
			wantCat: CategoryRender,
		},
		{
			name:    "widget error",
			code:    CodeUnexpectedValue,
			wantMsg: "Unexpected widget structure",
			wantCat: CategoryWidget,
		},
		{
			name:    "config error",
			code:    CodeConfigNotFound,
			wantMsg: "Configuration not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "B999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryRender, "tag %q not supported", "blink")
	if err.Message != `tag "blink" not supported` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryRender {
		t.Errorf("Category = %q, want %q", err.Category, CategoryRender)
	}
}

func TestError_Error(t *testing.T) {
	err := New(CodeInvalidAttributeValue)
	if got, want := err.Error(), "B001: Invalid attribute value"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err.WithDetail(`attribute "data" holds []string`)
	if got, want := err.Error(), `B001: Invalid attribute value: attribute "data" holds []string`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := &Error{Message: "plain"}
	if plain.Error() != "plain" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "plain")
	}
}

func TestWrapAndIs(t *testing.T) {
	cause := stderrors.New("disk full")
	err := New(CodeAssetPublish).Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !Is(err, CodeAssetPublish) {
		t.Error("Is should match the outer code")
	}

	outer := fmt.Errorf("publishing: %w", New(CodeAsset).Wrap(New(CodeAssetPublish)))
	if !Is(outer, CodeAssetPublish) {
		t.Error("Is should match a nested code through fmt wrapping")
	}
	if Is(outer, CodeConfigRead) {
		t.Error("Is should not match an absent code")
	}
	if Is(cause, CodeAsset) {
		t.Error("Is should be false for plain errors")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeAsset) != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	e := New(CodeAsset)
	if FromError(e, CodeConfigRead) != e {
		t.Error("FromError should return *Error as-is")
	}

	std := stderrors.New("boom")
	if got := FromError(std, CodeAsset); got.Wrapped != std {
		t.Error("standard error should be wrapped")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	formatted := New(CodeConfigRead).
		WithDetail("unexpected end of JSON input").
		Wrap(stderrors.New("parse")).
		Format()

	for _, want := range []string{"B030", "Failed to read brickrouge.json", "unexpected end", "Cause: parse", "Hint:"} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q in %q", want, formatted)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	got := New(CodeUnknownWidget).WithDetail("carousel").FormatCompact()
	if want := "B050: Unknown widget (carousel)"; got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	out := New(CodeInvalidAttributeValue).WithDetail("x").FormatJSON()

	var decoded map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("FormatJSON produced invalid JSON: %v", err)
	}
	if decoded["code"] != "B001" || decoded["category"] != "render" || decoded["detail"] != "x" {
		t.Errorf("unexpected payload: %v", decoded)
	}
}

func TestFormatHTMLEscapes(t *testing.T) {
	out := New(CodeInvalidAttributeValue).WithDetail(`<script>"x"</script>`).FormatHTML()

	if strings.Contains(out, "<script>") {
		t.Errorf("detail must be escaped, got %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped detail, got %q", out)
	}
	if !strings.HasPrefix(out, `<div class="alert alert-danger exception"`) {
		t.Errorf("unexpected wrapper: %q", out)
	}
}

func TestHTMLRenderer(t *testing.T) {
	var r HTMLRenderer

	if r.Render(nil) != "" {
		t.Error("nil error renders nothing")
	}

	plain := r.Render(stderrors.New("a < b"))
	if !strings.Contains(plain, "a &lt; b") {
		t.Errorf("plain error should be escaped, got %q", plain)
	}

	coded := r.Render(fmt.Errorf("ctx: %w", New(CodeUnexpectedValue)))
	if !strings.Contains(coded, "B002") {
		t.Errorf("coded error should show its code, got %q", coded)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 10)
	for _, line := range lines {
		if len(line) > 10 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if len(wrapText("", 10)) != 0 {
		t.Error("empty text should produce no lines")
	}
}
