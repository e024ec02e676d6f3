package convert

import (
	"strings"

	"github.com/skdltmxn/khronos-ir/internal/ordered"
	"github.com/skdltmxn/khronos-ir/ir"
	"github.com/skdltmxn/khronos-ir/naming"
	"github.com/skdltmxn/khronos-ir/registry"
)

// Canonical constant type names.
const (
	typeFloat  = "float"
	typeUint   = "uint"
	typeUlong  = "ulong"
	typeString = "string"
)

// convertConstants collects API constants followed by the constants of
// each extension and its standalone enum entries. The same name declared
// twice with the same value is kept once.
func (c *Context) convertConstants(spec *registry.Specification) (*ordered.Map[string, *ir.Constant], error) {
	constants := ordered.New[string, *ir.Constant](len(spec.Constants))

	add := func(k *ir.Constant) error {
		if err := constants.Insert(k.NativeName, k); err != nil {
			if prev, _ := constants.Get(k.NativeName); prev.Value == k.Value {
				return nil
			}
			return &ir.DuplicateError{Category: ir.CategoryConstant, NativeName: k.NativeName}
		}
		return nil
	}

	for _, def := range spec.Constants {
		k := &ir.Constant{
			Name:          naming.Translate(def.Name, c.Prefix),
			NativeName:    def.Name,
			Value:         def.Value,
			Type:          ir.Type{Name: constantType(def.Type)},
			ExtensionName: ir.CoreExtension,
		}
		if err := add(k); err != nil {
			return nil, err
		}
	}

	for _, ext := range spec.Extensions {
		category := naming.TrimPrefix(ext.Name, c.Prefix)

		for _, ec := range ext.Constants {
			if err := add(c.extensionConstant(ec.Name, ec.Value, category)); err != nil {
				return nil, err
			}
		}

		for _, ee := range ext.EnumExtensions {
			if ee.ExtendedType != "" {
				continue
			}
			if err := add(c.extensionConstant(ee.Name, ee.Value, category)); err != nil {
				return nil, err
			}
		}
	}

	return constants, nil
}

func (c *Context) extensionConstant(name, value, category string) *ir.Constant {
	typ := typeUint
	if strings.HasPrefix(value, `"`) {
		typ = typeString
	}

	return &ir.Constant{
		Name:          naming.Translate(name, c.Prefix),
		NativeName:    name,
		Value:         value,
		Type:          ir.Type{Name: typ},
		ExtensionName: category,
	}
}

func constantType(kind registry.ConstantKind) string {
	switch kind {
	case registry.ConstantFloat32:
		return typeFloat
	case registry.ConstantUInt32:
		return typeUint
	default:
		return typeUlong
	}
}
