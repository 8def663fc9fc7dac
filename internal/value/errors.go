package value

import (
	"errors"
	"fmt"
)

// ErrShape matches every *ShapeError via errors.Is.
var ErrShape = errors.New("shape mismatch")

// ShapeError reports that a value does not structurally match the
// descriptor it was checked against.
type ShapeError struct {
	// Path locates the offending value, e.g. "$.keywords[2]".
	Path string
	// Expected and Actual are tag names, or full type renderings for
	// list element mismatches.
	Expected string
	Actual   string
	// Reason is set for missing or unexpected product fields.
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("shape error at %s: %s (expected %s, got %s)", e.Path, e.Reason, e.Expected, e.Actual)
	}
	return fmt.Sprintf("shape error at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrShape) hold for any ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

const rootPath = "$"

func fieldPath(parent, name string) string {
	return parent + "." + name
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

func tagName(v Value) string {
	if v == nil {
		return "none"
	}
	return v.Tag().String()
}
