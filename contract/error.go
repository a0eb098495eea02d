// Package contract exposes the minimal message interface used by other packages.
package contract

import "fmt"

// Message is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return the same text from Error() and String(), unchanged from construction.
//   - Print that text for %v, %+v, %#v and %s (no type name, quoting or struct dump).
//   - Be immutable once built.
type Message interface {
	error
	fmt.Stringer
	fmt.Formatter
	fmt.GoStringer
}
