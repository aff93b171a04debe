package docfill

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoPlaceholders marks a well-formed document with no {{placeholder}}
// fields. Preparing such a document succeeds; callers that require fields
// (the fill CLI, for one) wrap this sentinel.
var ErrNoPlaceholders = errors.New("document contains no placeholders")

// DocumentError represents a failure while loading or writing a document.
type DocumentError struct {
	Op    string
	Path  string
	Cause error
}

func (e *DocumentError) Error() string {
	switch {
	case e.Path != "" && e.Cause != nil:
		return fmt.Sprintf("document error during %s of '%s': %v", e.Op, e.Path, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("document error during %s: %v", e.Op, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("document error during %s of '%s'", e.Op, e.Path)
	default:
		return fmt.Sprintf("document error during %s", e.Op)
	}
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error.
func NewDocumentError(op, path string, cause error) error {
	return &DocumentError{Op: op, Path: path, Cause: cause}
}

// IncompleteFillError reports the placeholders a fill map is missing. The
// fill engine itself fails open on missing keys; this error is returned only
// when strict fill is enabled, and is also what callers should surface after
// checking totality themselves via Template.MissingValues.
type IncompleteFillError struct {
	Missing []string
}

func (e *IncompleteFillError) Error() string {
	return fmt.Sprintf("fill map is missing %d placeholder(s): %s",
		len(e.Missing), strings.Join(e.Missing, ", "))
}
