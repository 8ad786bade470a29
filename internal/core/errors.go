package core

import "fmt"

// ParseError reports a credit-hours field that is not a valid integer
type ParseError struct {
	Course string
	Field  string // "credits" or "definition.credits"
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("course %q: invalid %s %q: %v", e.Course, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedKeyError reports a semester key without a year delimiter
type MalformedKeyError struct {
	Key string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed semester key %q: missing %q year delimiter", e.Key, SemesterDelimiter)
}

// MissingReferenceError reports a checked course without a linked definition
type MissingReferenceError struct {
	Course string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("course %q is checked but has no course definition", e.Course)
}
