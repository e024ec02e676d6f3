// Package ir defines the profile-agnostic intermediate representation handed
// to binding emitters: structures, functions, enums, and constants, plus
// their profile-scoped projections.
package ir

import (
	"errors"
	"fmt"
)

// Sentinel errors for fatal conversion conditions.
var (
	// ErrDuplicateEntity indicates two entities of one category share a
	// native name.
	ErrDuplicateEntity = errors.New("ir: duplicate entity")

	// ErrUnresolvableSize indicates a type whose byte size cannot be
	// determined, so a union layout cannot be computed.
	ErrUnresolvableSize = errors.New("ir: unresolvable type size")
)

// Category names an entity dictionary.
type Category string

const (
	CategoryStruct   Category = "struct"
	CategoryFunction Category = "function"
	CategoryEnum     Category = "enum"
	CategoryConstant Category = "constant"
)

// DuplicateError reports a native name inserted twice into one category.
type DuplicateError struct {
	Category   Category
	NativeName string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("ir: duplicate %s %q", e.Category, e.NativeName)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicateEntity }

// SizeError reports a type that could not be sized.
type SizeError struct {
	Type     string // Native type name as requested
	Resolved string // Name after following the alias maps
}

func (e *SizeError) Error() string {
	if e.Resolved != e.Type {
		return fmt.Sprintf("ir: cannot size type %q (resolved to %q)", e.Type, e.Resolved)
	}
	return fmt.Sprintf("ir: cannot size type %q", e.Type)
}

func (e *SizeError) Unwrap() error { return ErrUnresolvableSize }
