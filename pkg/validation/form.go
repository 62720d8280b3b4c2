package validation

import (
	"github.com/brickrouge-dev/brickrouge/pkg/element"
)

// FormValidator validates the values submitted by a form. Messages are
// added to errs, created when nil, which is returned.
type FormValidator interface {
	Validate(values any, errs *Errors) *Errors
}

// FormValidatorFunc adapts a function to FormValidator.
type FormValidatorFunc func(values any, errs *Errors) *Errors

// Validate implements FormValidator.
func (f FormValidatorFunc) Validate(values any, errs *Errors) *Errors {
	if errs == nil {
		errs = NewErrors()
	}
	return f(values, errs)
}

// Rule validates one field. Only the first failing validator of a rule
// reports.
type Rule struct {
	Field      string
	Label      string
	Validators []Validator
}

// RulesValidator validates fields against rules.
type RulesValidator struct {
	Rules []Rule
}

var _ FormValidator = (*RulesValidator)(nil)

// Add appends a rule.
func (v *RulesValidator) Add(field, label string, validators ...Validator) *RulesValidator {
	v.Rules = append(v.Rules, Rule{Field: field, Label: label, Validators: validators})
	return v
}

// Validate implements FormValidator.
func (v *RulesValidator) Validate(values any, errs *Errors) *Errors {
	if errs == nil {
		errs = NewErrors()
	}
	for _, rule := range v.Rules {
		value, _ := Lookup(values, rule.Field)
		for _, validator := range rule.Validators {
			if err := validator.Validate(value); err != nil {
				errs.Add(rule.Field, err.Error())
				break
			}
		}
	}
	return errs
}

// FromElement builds rules from the named descendants of root. A control
// with a truthy "required" attribute must not be empty; validators found in
// its "#validator" attribute, a Validator or a []Validator, run next.
func FromElement(root *element.Element) *RulesValidator {
	v := &RulesValidator{}
	element.Walk(root, func(_ string, child *element.Element) bool {
		name := child.GetString("name")
		if name == "" {
			return true
		}

		label := child.GetString(element.Label)
		if label == "" {
			label = child.GetString(element.GroupLabel)
		}

		var validators []Validator
		if element.Truthy(child.Get("required")) {
			msg := ""
			if label != "" {
				msg = label + " is required"
			}
			validators = append(validators, Required(msg))
		}
		switch extra := child.Get(element.Validator).(type) {
		case Validator:
			validators = append(validators, extra)
		case []Validator:
			validators = append(validators, extra...)
		}

		if len(validators) > 0 {
			v.Add(name, label, validators...)
		}
		return true
	})
	return v
}
