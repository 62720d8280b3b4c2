package validation

import (
	"strings"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// Errors collects validation messages per field, in the order fields first
// failed. The empty field holds messages about the form as a whole.
// Reads on a nil *Errors see an empty collection.
type Errors struct {
	fields *ordered.Map[string, []string]
}

// NewErrors creates an empty collection.
func NewErrors() *Errors {
	return &Errors{fields: ordered.New[string, []string]()}
}

// Add records a message for field.
func (e *Errors) Add(field, message string) *Errors {
	if e.fields == nil {
		e.fields = ordered.New[string, []string]()
	}
	messages, _ := e.fields.Get(field)
	e.fields.Set(field, append(messages, message))
	return e
}

// Get returns the messages of field.
func (e *Errors) Get(field string) []string {
	if e == nil {
		return nil
	}
	messages, _ := e.fields.Get(field)
	return messages
}

// Has reports whether field has messages.
func (e *Errors) Has(field string) bool {
	return len(e.Get(field)) > 0
}

// Len returns the number of messages.
func (e *Errors) Len() int {
	if e == nil {
		return 0
	}
	n := 0
	for _, messages := range e.fields.Values() {
		n += len(messages)
	}
	return n
}

// Fields returns the fields with messages.
func (e *Errors) Fields() []string {
	if e == nil {
		return nil
	}
	return e.fields.Keys()
}

// Messages returns every message in order.
func (e *Errors) Messages() []string {
	if e == nil {
		return nil
	}
	var all []string
	for _, messages := range e.fields.Values() {
		all = append(all, messages...)
	}
	return all
}

// Err returns nil when the collection is empty, otherwise a validation
// error listing the messages.
func (e *Errors) Err() error {
	if e.Len() == 0 {
		return nil
	}
	var details []string
	for _, p := range e.fields.Pairs() {
		for _, m := range p.Value {
			if p.Key == "" {
				details = append(details, m)
				continue
			}
			details = append(details, p.Key+": "+m)
		}
	}
	return errors.New(errors.CodeValidation).WithDetail(strings.Join(details, "; "))
}
