package validation

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Validator checks the value submitted for one field.
type Validator interface {
	// Validate returns nil when value is acceptable.
	Validate(value any) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(value any) error

// Validate implements Validator.
func (f ValidatorFunc) Validate(value any) error {
	return f(value)
}

// ValidationError is the message of a failed check. Field is filled in by
// RulesValidator.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// message returns msg, or def when msg is empty.
func message(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}

// textRule fails with msg when ok rejects the value as a string. Blank
// values are left to Required.
func textRule(msg string, ok func(s string) bool) Validator {
	return ValidatorFunc(func(value any) error {
		s := asString(value)
		if s == "" || ok(s) {
			return nil
		}
		return ValidationError{Message: msg}
	})
}

// numberRule fails with msg when the value is not a number accepted by ok.
// Blank values pass.
func numberRule(msg string, ok func(f float64) bool) Validator {
	return ValidatorFunc(func(value any) error {
		if blank(value) {
			return nil
		}
		if f, isNumber := asFloat(value); isNumber && ok(f) {
			return nil
		}
		return ValidationError{Message: msg}
	})
}

// Required rejects nil, blank strings and empty collections.
func Required(msg string) Validator {
	msg = message(msg, "This field is required")
	return ValidatorFunc(func(value any) error {
		if blank(value) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MinLength requires at least n characters.
func MinLength(n int, msg string) Validator {
	return textRule(message(msg, fmt.Sprintf("Must be at least %d characters", n)), func(s string) bool {
		return len([]rune(s)) >= n
	})
}

// MaxLength allows at most n characters.
func MaxLength(n int, msg string) Validator {
	return textRule(message(msg, fmt.Sprintf("Must be at most %d characters", n)), func(s string) bool {
		return len([]rune(s)) <= n
	})
}

// Pattern requires a match of the regular expression pattern.
func Pattern(pattern string, msg string) Validator {
	return textRule(message(msg, "Invalid format"), regexp.MustCompile(pattern).MatchString)
}

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email requires something shaped like an email address.
func Email(msg string) Validator {
	return textRule(message(msg, "Invalid email address"), emailRE.MatchString)
}

// URL requires an absolute URL.
func URL(msg string) Validator {
	return textRule(message(msg, "Invalid URL"), func(s string) bool {
		u, err := url.Parse(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	})
}

// Numeric requires digits only.
func Numeric(msg string) Validator {
	return textRule(message(msg, "Must contain only numbers"), func(s string) bool {
		return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
	})
}

// Min requires a number greater than or equal to n.
func Min(n float64, msg string) Validator {
	return numberRule(message(msg, "Must be at least "+strconv.FormatFloat(n, 'f', -1, 64)), func(f float64) bool {
		return f >= n
	})
}

// Max requires a number lower than or equal to n.
func Max(n float64, msg string) Validator {
	return numberRule(message(msg, "Must be at most "+strconv.FormatFloat(n, 'f', -1, 64)), func(f float64) bool {
		return f <= n
	})
}

// OneOf requires the value, or every item of a multi-value field, to be
// one of choices.
func OneOf(choices []string, msg string) Validator {
	msg = message(msg, "Invalid choice")
	allowed := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		allowed[c] = struct{}{}
	}
	return ValidatorFunc(func(value any) error {
		if blank(value) {
			return nil
		}
		for _, item := range asStrings(value) {
			if _, ok := allowed[item]; !ok {
				return ValidationError{Message: msg}
			}
		}
		return nil
	})
}

// Custom wraps fn.
func Custom(fn func(value any) error) Validator {
	return ValidatorFunc(fn)
}

func blank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer:
		return rv.IsNil()
	}
	return false
}

// asString returns the first value of a multi-value field.
func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

func asStrings(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = asString(item)
		}
		return items
	}
	return []string{asString(value)}
}

func asFloat(value any) (float64, bool) {
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(asString(value)), 64)
	return f, err == nil
}
