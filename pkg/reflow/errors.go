package reflow

import "fmt"

// ParseError reports a malformed bounding region descriptor.
type ParseError struct {
	Source string // the offending descriptor, verbatim
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid bounding region %q: %s", e.Source, e.Reason)
}

// SchemaError reports a required page, line, or word field missing from the
// input document.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid document schema at %s: %s", e.Field, e.Reason)
}

// PageNotFoundError reports a target page number that does not exist in the
// document.
type PageNotFoundError struct {
	Page int
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("page %d not found in document", e.Page)
}
