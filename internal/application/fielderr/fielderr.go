package fielderr

import (
	"sort"
	"strings"
)

// NonFieldKey is the bucket for validation messages not tied to a
// specific form field. These render as a standalone notice rather than
// inline next to an input.
const NonFieldKey = "non_field_errors"

// Errors maps form field names to their validation messages. The zero
// value is usable; a nil Errors means "no errors".
type Errors map[string][]string

// Add appends a message for the given field.
// PRE: field and msg are non-empty
// POST: msg is recorded under field
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// AddNonField appends a message to the non-field bucket.
func (e Errors) AddNonField(msg string) {
	e.Add(NonFieldKey, msg)
}

// Has reports whether the field carries at least one message.
// INVARIANT: Errors is not mutated
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// First returns the first message for a field, or "".
// INVARIANT: Errors is not mutated
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// NonField returns the messages in the non-field bucket.
func (e Errors) NonField() []string {
	return e[NonFieldKey]
}

// Empty reports whether no messages are recorded at all.
func (e Errors) Empty() bool {
	for _, msgs := range e {
		if len(msgs) > 0 {
			return false
		}
	}
	return true
}

// Merge copies all messages from other into e.
// PRE: e is non-nil
// POST: every message of other is appended under its field
func (e Errors) Merge(other map[string][]string) {
	for field, msgs := range other {
		e[field] = append(e[field], msgs...)
	}
}

// Fields returns the field names carrying messages, sorted, with the
// non-field bucket excluded.
func (e Errors) Fields() []string {
	var out []string
	for field, msgs := range e {
		if field == NonFieldKey || len(msgs) == 0 {
			continue
		}
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// Summary flattens all messages into one line for logging.
func (e Errors) Summary() string {
	var parts []string
	for _, field := range e.Fields() {
		parts = append(parts, field+": "+strings.Join(e[field], "; "))
	}
	if nf := e.NonField(); len(nf) > 0 {
		parts = append(parts, strings.Join(nf, "; "))
	}
	return strings.Join(parts, ", ")
}

// New returns an empty, ready-to-use Errors.
func New() Errors {
	return make(Errors)
}
