package convert

import (
	"strings"

	"github.com/skdltmxn/khronos-ir/ir"
	"github.com/skdltmxn/khronos-ir/registry"
)

// pointerSize is the size of pointer-sized fields on 64-bit targets.
const pointerSize = 8

// primitiveSizes holds the byte sizes of canonical primitive type names.
var primitiveSizes = map[string]int{
	"byte":   1,
	"sbyte":  1,
	"bool":   1,
	"short":  2,
	"ushort": 2,
	"int":    4,
	"uint":   4,
	"float":  4,
	"long":   8,
	"ulong":  8,
	"double": 8,
	"nint":   pointerSize,
	"nuint":  pointerSize,
}

// ConvertType copies a native type reference into canonical form. No
// narrowing happens here.
func ConvertType(t registry.TypeSpec) ir.Type {
	return ir.Type{
		Name:              t.Name,
		OriginalName:      t.Name,
		IndirectionLevels: t.PointerIndirection,
		ArrayDimensions:   t.ArrayDimensions,
	}
}

// Resolve returns t with its name mapped through the alias table. The
// original name is kept, or set to the unresolved name if empty.
func (c *Context) Resolve(t ir.Type) ir.Type {
	if t.OriginalName == "" {
		t.OriginalName = t.Name
	}
	t.Name = c.TypeMaps.Resolve(t.Name)
	return t
}

// SizeOf returns the byte size of a named type. The name is resolved
// through the alias table and matched against the primitive sizes. Names
// that stay within the registry's own type namespace (for example "Vk...")
// are enums, flags, or handles represented as 4 bytes. Anything else fails
// with ir.ErrUnresolvableSize.
func (c *Context) SizeOf(typeName string) (int, error) {
	chain := c.TypeMaps.Chain(typeName)
	resolved := chain[len(chain)-1]

	if size, ok := primitiveSizes[resolved]; ok {
		return size, nil
	}

	// Enum and flag aliases resolve to display names, which no longer carry
	// the prefix, so the whole chain is checked.
	prefix := c.TypePrefix()
	for _, name := range chain {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return 4, nil
		}
	}

	return 0, &ir.SizeError{Type: typeName, Resolved: resolved}
}
