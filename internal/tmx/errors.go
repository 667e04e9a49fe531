package tmx

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is the sentinel wrapped by every ParseError.
	ErrMalformed = errors.New("malformed tmx document")
)

// SanitizeError reports an I/O failure while reading a TMX file for
// sanitizing or while writing the sanitized content back.
type SanitizeError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *SanitizeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("sanitize: failed to %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("sanitize: failed to %s: %v", e.Op, e.Err)
}

func (e *SanitizeError) Unwrap() error {
	return e.Err
}

// ParseError reports a document that is not well-formed XML after sanitizing.
type ParseError struct {
	Path string // may be empty when parsing in-memory content
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse TMX at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to parse TMX: %v", e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.Err}
}
