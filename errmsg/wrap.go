package errmsg

import (
	"errors"
	"fmt"
)

// nilText is what fmt prints for a nil error or Stringer.
const nilText = "<nil>"

// From converts any error into an ErrorMessage holding err.Error().
// Error is called exactly once. A nil err, or a nil *ErrorMessage, yields "<nil>".
func From(err error) ErrorMessage {
	if err == nil {
		return ErrorMessage{msg: nilText}
	}

	if p, ok := err.(*ErrorMessage); ok {
		if p == nil {
			return ErrorMessage{msg: nilText}
		}
		return *p
	}

	return ErrorMessage{msg: err.Error()}
}

// FromStringer converts a display-only value into an ErrorMessage holding s.String().
// A nil s yields "<nil>".
func FromStringer(s fmt.Stringer) ErrorMessage {
	if s == nil {
		return ErrorMessage{msg: nilText}
	}

	return ErrorMessage{msg: s.String()}
}

// Ensure converts any error to an ErrorMessage at a return site.
//
// Behavior:
//   - nil input => nil output
//   - if an ErrorMessage (or non-nil *ErrorMessage) is in err's chain => that message is returned
//   - otherwise err is rendered with From (a bare nil *ErrorMessage becomes "<nil>")
func Ensure(err error) error {
	if err == nil {
		return nil
	}

	var m ErrorMessage
	if errors.As(err, &m) {
		return m
	}

	var p *ErrorMessage
	if errors.As(err, &p) && p != nil {
		return *p
	}

	return From(err)
}
