package tabular

import "fmt"

// InputError reports a source file that is missing, unreadable, empty, or
// malformed. It aborts the run.
type InputError struct {
	Path string
	Line int // 1-based line of a malformed row, 0 when not row-specific
	Err  error
}

func (e InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("input %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

// Cause returns the underlying error.
func (e InputError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e InputError) Unwrap() error { return e.Err }

// OutputError reports a destination that cannot be created or written. The
// destination is left without a (valid) partial file.
type OutputError struct {
	Path string
	Err  error
}

func (e OutputError) Error() string {
	return fmt.Sprintf("output %s: %v", e.Path, e.Err)
}

// Cause returns the underlying error.
func (e OutputError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e OutputError) Unwrap() error { return e.Err }
