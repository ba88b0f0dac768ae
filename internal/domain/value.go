package domain

import (
	"strings"
	"unicode"

	apperrors "github.com/beliefnet/beliefnet/internal/pkg/errors"
)

// Value is one element of a finite domain, identified by its label.
type Value string

// String returns the value label.
func (v Value) String() string {
	return string(v)
}

// Domain is an ordered, finite set of values a node may take. The declared
// order is the canonical order used for tables, enumeration, and reports.
// A Domain is immutable once constructed.
type Domain struct {
	values []Value
	index  map[Value]int
}

// NewDomain builds a domain from the given values, preserving their order.
// It fails if no values are given, if a value is empty or contains control
// characters, or if a value appears more than once. The control-character
// rule keeps labels printable and table lookup keys unambiguous.
func NewDomain(values ...Value) (*Domain, error) {
	if len(values) == 0 {
		return nil, apperrors.Validation("domain must contain at least one value")
	}

	index := make(map[Value]int, len(values))
	owned := make([]Value, len(values))
	for i, v := range values {
		if v == "" {
			return nil, apperrors.Validation("domain values must not be empty")
		}
		if strings.ContainsFunc(string(v), unicode.IsControl) {
			return nil, apperrors.Validationf("value %q contains a control character", v)
		}
		if _, exists := index[v]; exists {
			return nil, apperrors.Validationf("duplicate value %q in domain", v)
		}
		index[v] = i
		owned[i] = v
	}

	return &Domain{values: owned, index: index}, nil
}

// Values returns the domain values in canonical order.
func (d *Domain) Values() []Value {
	out := make([]Value, len(d.values))
	copy(out, d.values)
	return out
}

// Size returns the number of values in the domain.
func (d *Domain) Size() int {
	return len(d.values)
}

// Contains reports whether v belongs to the domain.
func (d *Domain) Contains(v Value) bool {
	_, ok := d.index[v]
	return ok
}

// IndexOf returns the canonical position of v within the domain.
func (d *Domain) IndexOf(v Value) (int, bool) {
	i, ok := d.index[v]
	return i, ok
}

// At returns the value at canonical position i.
func (d *Domain) At(i int) Value {
	return d.values[i]
}

// Equal reports whether both domains declare the same values in the same
// order.
func (d *Domain) Equal(other *Domain) bool {
	if other == nil || len(d.values) != len(other.values) {
		return false
	}
	for i, v := range d.values {
		if other.values[i] != v {
			return false
		}
	}
	return true
}
