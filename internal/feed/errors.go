package feed

import "fmt"

// FetchError reports a non-200 response from the feed endpoint.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("feed returned status %d from %s", e.StatusCode, e.URL)
}

// ParseError reports a malformed or missing required field while
// normalizing a match element. An attribute that is simply absent from an
// optional spot is not a ParseError; presence with a bad value is.
type ParseError struct {
	Field string
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Field, e.Msg, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Field, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErrorf(field, format string, args ...interface{}) *ParseError {
	return &ParseError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
