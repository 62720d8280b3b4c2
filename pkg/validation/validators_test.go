package validation

import (
	"errors"
	"testing"
)

func TestRequiredValidator(t *testing.T) {
	v := Required("")

	// Empty values should fail
	for _, value := range []any{"", "   ", nil, []string{}} {
		if err := v.Validate(value); err == nil {
			t.Errorf("Expected error for %#v", value)
		}
	}

	// Non-empty values should pass
	for _, value := range []any{"hello", 0, false, []string{"a"}} {
		if err := v.Validate(value); err != nil {
			t.Errorf("Expected no error for %#v, got: %v", value, err)
		}
	}
}

func TestRequiredCustomMessage(t *testing.T) {
	err := Required("Name is required").Validate("")
	if err == nil || err.Error() != "Name is required" {
		t.Errorf("Expected custom message, got: %v", err)
	}
}

func TestMinLengthValidator(t *testing.T) {
	v := MinLength(3, "")

	if err := v.Validate("ab"); err == nil {
		t.Error("Expected error for 'ab' (len 2)")
	}
	if err := v.Validate("abc"); err != nil {
		t.Errorf("Expected no error for 'abc', got: %v", err)
	}
	if err := v.Validate("été"); err != nil {
		t.Errorf("Expected runes to be counted, got: %v", err)
	}

	// Empty strings should pass (use Required for empty check)
	if err := v.Validate(""); err != nil {
		t.Errorf("Expected no error for empty string, got: %v", err)
	}
}

func TestMaxLengthValidator(t *testing.T) {
	v := MaxLength(5, "")

	if err := v.Validate("abcde"); err != nil {
		t.Errorf("Expected no error at limit, got: %v", err)
	}
	if err := v.Validate("abcdef"); err == nil {
		t.Error("Expected error for 'abcdef' (len 6)")
	}
}

func TestEmailValidator(t *testing.T) {
	v := Email("")

	valid := []string{"user@example.com", "first.last+tag@sub.example.org", ""}
	for _, email := range valid {
		if err := v.Validate(email); err != nil {
			t.Errorf("Expected %q to be valid, got: %v", email, err)
		}
	}

	invalid := []string{"plain", "user@", "@example.com", "user@example"}
	for _, email := range invalid {
		if err := v.Validate(email); err == nil {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}

func TestURLValidator(t *testing.T) {
	v := URL("")

	if err := v.Validate("https://example.com/path"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if err := v.Validate("/relative/path"); err == nil {
		t.Error("Expected error for relative URL")
	}
}

func TestPatternValidator(t *testing.T) {
	v := Pattern(`^[a-z]+$`, "lowercase only")

	if err := v.Validate("abc"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	err := v.Validate("ABC")
	if err == nil || err.Error() != "lowercase only" {
		t.Errorf("Expected pattern error, got: %v", err)
	}
}

func TestNumericValidator(t *testing.T) {
	v := Numeric("")

	if err := v.Validate("12345"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if err := v.Validate("12a45"); err == nil {
		t.Error("Expected error for non-digits")
	}
}

func TestMinMaxValidators(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		value   any
		wantErr bool
	}{
		{"min int passes", Min(3, ""), 3, false},
		{"min int fails", Min(3, ""), 2, true},
		{"min string passes", Min(3, ""), "4.5", false},
		{"min non numeric fails", Min(3, ""), "abc", true},
		{"min empty passes", Min(3, ""), "", false},
		{"max float passes", Max(10, ""), 9.99, false},
		{"max float fails", Max(10, ""), 10.01, true},
		{"max uint fails", Max(10, ""), uint(11), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestOneOfValidator(t *testing.T) {
	v := OneOf([]string{"red", "green"}, "")

	if err := v.Validate("red"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if err := v.Validate([]string{"red", "green"}); err != nil {
		t.Errorf("Expected no error for slice, got: %v", err)
	}
	if err := v.Validate([]any{"red", "blue"}); err == nil {
		t.Error("Expected error for slice with unknown choice")
	}
	if err := v.Validate("blue"); err == nil {
		t.Error("Expected error for 'blue'")
	}
}

func TestCustomValidator(t *testing.T) {
	v := Custom(func(value any) error {
		if value == "forbidden" {
			return errors.New("not allowed")
		}
		return nil
	})

	if err := v.Validate("fine"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if err := v.Validate("forbidden"); err == nil || err.Error() != "not allowed" {
		t.Errorf("Expected custom error, got: %v", err)
	}
}
