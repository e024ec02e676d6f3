package convert

import (
	"errors"
	"fmt"
	"iter"

	"github.com/skdltmxn/khronos-ir/internal/ordered"
	"github.com/skdltmxn/khronos-ir/ir"
	"github.com/skdltmxn/khronos-ir/registry"
)

// ErrNilSpecification is returned by Convert when given no registry.
var ErrNilSpecification = errors.New("convert: nil specification")

// Result holds the canonical entities of one conversion run. Entities are
// never modified after Convert returns.
type Result struct {
	ctx        *Context
	features   []*registry.Feature
	extensions []*registry.Extension

	structs   *ordered.Map[string, *ir.Struct]
	functions *ordered.Map[string, *ir.Function]
	enums     *ordered.Map[string, *ir.Enum]
	constants *ordered.Map[string, *ir.Constant]
}

// Convert builds the canonical IR for spec. Base types are registered
// first, then enums (including flag unification) so that later entities
// can resolve flag types, then structures, functions, and constants. No
// Result is returned on error.
func Convert(spec *registry.Specification, ctx *Context) (*Result, error) {
	if spec == nil {
		return nil, ErrNilSpecification
	}
	if ctx == nil {
		ctx = NewContext("", nil)
	}
	if ctx.TypeMaps == nil {
		ctx.TypeMaps = NewTypeMaps()
	}

	ctx.TypeMaps.Append(TypeMap(spec.BaseTypes))

	enums, err := ctx.convertEnums(spec)
	if err != nil {
		return nil, fmt.Errorf("convert: enums: %w", err)
	}

	structs, err := ctx.convertStructs(spec)
	if err != nil {
		return nil, fmt.Errorf("convert: structs: %w", err)
	}

	functions, err := ctx.convertFunctions(spec)
	if err != nil {
		return nil, fmt.Errorf("convert: functions: %w", err)
	}

	constants, err := ctx.convertConstants(spec)
	if err != nil {
		return nil, fmt.Errorf("convert: constants: %w", err)
	}

	return &Result{
		ctx:        ctx,
		features:   spec.Features,
		extensions: spec.Extensions,
		structs:    structs,
		functions:  functions,
		enums:      enums,
		constants:  constants,
	}, nil
}

// Context returns the context the result was converted with.
func (r *Result) Context() *Context {
	return r.ctx
}

// Struct looks up a structure, union, or handle by native name.
func (r *Result) Struct(native string) (*ir.Struct, bool) {
	return r.structs.Get(native)
}

// Function looks up a function by native name.
func (r *Result) Function(native string) (*ir.Function, bool) {
	return r.functions.Get(native)
}

// Enum looks up an enum by the native name it has in the registry. Flag
// enums are found under their "FlagBits" spelling.
func (r *Result) Enum(native string) (*ir.Enum, bool) {
	return r.enums.Get(native)
}

// Constant looks up a constant by native name.
func (r *Result) Constant(native string) (*ir.Constant, bool) {
	return r.constants.Get(native)
}

// NumStructs returns the number of canonical structures.
func (r *Result) NumStructs() int { return r.structs.Len() }

// NumFunctions returns the number of canonical functions.
func (r *Result) NumFunctions() int { return r.functions.Len() }

// NumEnums returns the number of canonical enums.
func (r *Result) NumEnums() int { return r.enums.Len() }

// NumConstants returns the number of canonical constants.
func (r *Result) NumConstants() int { return r.constants.Len() }

// CanonicalStructs yields each structure, union, and handle once, in
// conversion order.
func (r *Result) CanonicalStructs() iter.Seq[*ir.Struct] { return r.structs.Values() }

// CanonicalFunctions yields each function once, in registry order.
func (r *Result) CanonicalFunctions() iter.Seq[*ir.Function] { return r.functions.Values() }

// CanonicalEnums yields each enum once, in registry order.
func (r *Result) CanonicalEnums() iter.Seq[*ir.Enum] { return r.enums.Values() }
