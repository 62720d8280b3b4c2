// Package validation checks submitted form values.
//
// Field validators check a single value:
//
//	err := validation.Email("").Validate("not-an-email")
//
// A FormValidator checks a whole set of values and collects the failures in
// an Errors collection. RulesValidator is built from the controls of a form:
// every named control marked "required", or carrying validators in its
// "#validator" attribute, gets a rule.
//
//	v := validation.FromElement(form)
//	errs := v.Validate(values, nil)
//	if errs.Len() > 0 {
//		// re-render the form with errs
//	}
package validation
