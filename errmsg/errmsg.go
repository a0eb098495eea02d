package errmsg

import (
	"fmt"
	"log/slog"

	"github.com/next-trace/scg-errmsg/contract"
)

// ErrorMessage is a resolved, human-readable error message.
//
// It holds a single owned string and nothing else. Values are immutable once
// built and two values with equal text compare and render identically.
type ErrorMessage struct {
	msg string
}

// compile-time guarantee that ErrorMessage implements contract.Message
var _ contract.Message = ErrorMessage{}

// ------ standard error interface

func (m ErrorMessage) Error() string { return m.msg }

// ------ rendering

// String returns the message exactly as it was constructed.
func (m ErrorMessage) String() string { return m.msg }

// GoString makes %#v print the message instead of a struct literal.
func (m ErrorMessage) GoString() string { return m.msg }

// Format prints the raw message for every verb, except %q which quotes it.
// Width, precision and the '-' flag are applied as they would be for a string.
func (m ErrorMessage) Format(s fmt.State, verb rune) {
	if verb != 'q' {
		verb = 's'
	}
	// ignore write errors in formatting paths
	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), m.msg)
}

// LogValue records the message as a plain string attribute.
func (m ErrorMessage) LogValue() slog.Value { return slog.StringValue(m.msg) }

// ------ core constructors

// New creates an ErrorMessage holding text verbatim.
// Byte slices are copied, so later writes to the slice do not affect the message.
func New[S ~string | ~[]byte](text S) ErrorMessage {
	return ErrorMessage{msg: string(text)}
}

// Newf formats according to a format specifier and wraps the result.
func Newf(format string, args ...any) ErrorMessage {
	return ErrorMessage{msg: fmt.Sprintf(format, args...)}
}
