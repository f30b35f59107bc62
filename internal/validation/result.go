package validation

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field key to the message the UI shows next to it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the failing field keys in sorted order.
func (e FieldErrors) Fields() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Result is the outcome of validating a payload. Exactly one of Value and
// Errors is set.
type Result[T any] struct {
	Value  *T
	Errors FieldErrors
}

func (r Result[T]) Accepted() bool {
	return len(r.Errors) == 0
}

// Err returns the field errors as an error, or nil when the payload was accepted.
func (r Result[T]) Err() error {
	if r.Accepted() {
		return nil
	}
	return r.Errors
}
