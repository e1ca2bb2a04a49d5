package codec

import "fmt"

// ParseError reports syntactically invalid text given to a strict codec.
// It is surfaced to the caller as-is; the store layers never wrap it.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("planar: parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
