package errmsg

import (
	"fmt"
	"io"
	"os"
)

// Exit statuses returned by Report.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Report writes "Error: <message>\n" to w and returns ExitFailure.
// A nil err writes nothing and returns ExitSuccess.
func Report(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", From(err))

	return ExitFailure
}

// Main runs fn, reports its error to stderr and exits with a failure status if there was one.
func Main(fn func() error) {
	if code := Report(os.Stderr, fn()); code != ExitSuccess {
		os.Exit(code)
	}
}
