// Package parse maps raw source payloads into feed.Job records, one
// parser per feed shape.
package parse

import "fmt"

// ParseError signals that a payload could not be interpreted for the
// shape a source declared.
type ParseError struct {
	Source string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Source, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
