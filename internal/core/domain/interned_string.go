package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Package names and versions repeat across every dependency list in a lock
// document, so interning keeps the parsed model small and makes equality
// checks pointer-cheap.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
// It uses the unique package to intern the string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// NewInternedStrings interns every element of s, preserving order.
func NewInternedStrings(s []string) []InternedString {
	res := make([]InternedString, len(s))
	for i, v := range s {
		res[i] = NewInternedString(v)
	}
	return res
}

// IsZero reports whether the value was never interned. The zero value is
// distinct from an interned empty string and marks optional fields, such as
// the version of a bare dependency reference.
func (is InternedString) IsZero() bool {
	return is.h == (unique.Handle[string]{})
}

// String returns the underlying string value, or "" for the zero value.
func (is InternedString) String() string {
	if is.IsZero() {
		return ""
	}
	return is.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It creates a new handle from the provided text.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
