package jsonpointer

import "fmt"

// SyntaxError is returned when a pointer string itself is malformed,
// independent of the document it would be evaluated against.
type SyntaxError struct {
	Path   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json pointer syntax error in %q: %s", e.Path, e.Reason)
}

// EvaluationError is returned when a syntactically valid pointer cannot be
// walked through a specific document.
type EvaluationError struct {
	Pointer string
	Reason  string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("could not evaluate json pointer %q: %s", e.Pointer, e.Reason)
}

// MissingTokenError marks a single pointer segment that has no matching key
// or index in the document being walked.
type MissingTokenError string

func (e MissingTokenError) Error() string {
	return fmt.Sprintf("token %q is missing", string(e))
}

// IndexError marks a pointer segment that names an array index out of range.
type IndexError int

func (e IndexError) Error() string {
	return fmt.Sprintf("index %d is out of range", int(e))
}
