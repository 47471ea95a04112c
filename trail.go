package doctext

import (
	"fmt"
	"strings"
)

// Trail accumulates diagnostic messages across extraction stages.
// It is append-only; the code of the most recent entry becomes the code of
// the final error.
type Trail struct {
	entries []string
	code    string
}

// Add appends a formatted diagnostic with the given error code.
func (t *Trail) Add(code, format string, args ...any) {
	t.entries = append(t.entries, fmt.Sprintf(format, args...))
	t.code = code
}

// Entries returns a copy of the accumulated diagnostics in order.
func (t *Trail) Entries() []string {
	return append([]string(nil), t.entries...)
}

// Len returns the number of diagnostics.
func (t *Trail) Len() int {
	return len(t.entries)
}

// Code returns the code of the most recent diagnostic.
func (t *Trail) Code() string {
	return t.code
}

// String joins the diagnostics with newlines.
func (t *Trail) String() string {
	return strings.Join(t.entries, "\n")
}

// Err composes the final failure for the named file.
func (t *Trail) Err(name string) *Error {
	if len(t.entries) == 0 {
		return Errorf(EINTERNAL, "Error processing file %s: unknown error", name)
	}
	code := t.code
	if code == "" {
		code = EINTERNAL
	}
	return Errorf(code, "Error processing file %s: %s", name, t.String())
}
