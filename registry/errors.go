// Package registry provides loading and a typed, read-only view of Khronos
// API registry documents such as vk.xml.
package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrFormat indicates the document cannot be read as a registry.
	ErrFormat = errors.New("registry: invalid registry document")

	// ErrNotFound indicates a named entity is not in the registry.
	ErrNotFound = errors.New("registry: entity not found")
)

// FormatError provides detailed information about loading failures.
type FormatError struct {
	Element string // Element kind where the error occurred
	Name    string // Name of the offending element, if known
	Message string // Description of the error
	Err     error  // Underlying error, if any
}

func (e *FormatError) Error() string {
	where := e.Element
	if e.Name != "" {
		where = fmt.Sprintf("%s %q", e.Element, e.Name)
	}
	if e.Err != nil {
		return fmt.Sprintf("registry: format error in %s: %s: %v", where, e.Message, e.Err)
	}
	return fmt.Sprintf("registry: format error in %s: %s", where, e.Message)
}

// Unwrap returns the underlying error. A FormatError always matches
// ErrFormat under errors.Is.
func (e *FormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrFormat, e.Err}
	}
	return []error{ErrFormat}
}
