package convert

import (
	"strings"

	"github.com/samber/lo"

	"github.com/skdltmxn/khronos-ir/internal/ordered"
	"github.com/skdltmxn/khronos-ir/ir"
	"github.com/skdltmxn/khronos-ir/naming"
	"github.com/skdltmxn/khronos-ir/registry"
)

// convertEnums builds the enum dictionary, registers flags typedefs that
// have no bit enum of their own, and unifies flag names.
func (c *Context) convertEnums(spec *registry.Specification) (*ordered.Map[string, *ir.Enum], error) {
	enums := ordered.New[string, *ir.Enum](len(spec.Enums))

	for _, def := range spec.Enums {
		name := naming.TranslateLite(def.Name, c.Prefix)
		e := &ir.Enum{
			Name:       name,
			NativeName: def.Name,
			Tokens: lo.Map(def.Values, func(v registry.EnumValue, _ int) ir.Token {
				return ir.Token{
					Name:       naming.TrimToken(naming.Translate(v.Name, c.Prefix), name),
					NativeName: v.Name,
					Value:      v.Value,
					Doc:        v.Comment,
				}
			}),
		}
		if def.Kind == registry.EnumBitmask {
			e.Attributes = []ir.Attribute{{Name: ir.AttrFlags}}
		}

		if err := enums.Insert(def.Name, e); err != nil {
			return nil, &ir.DuplicateError{Category: ir.CategoryEnum, NativeName: def.Name}
		}
	}

	// Flags typedefs without a bit enum (reserved flags) alias the generic
	// carrier directly.
	orphans := TypeMap{}
	for _, td := range spec.Typedefs {
		if td.Type == c.flagsTypeName() && !enums.Has(td.Requires) {
			orphans[td.Name] = td.Type
		}
	}
	c.TypeMaps.Append(orphans)

	if err := c.unifyFlags(enums); err != nil {
		return nil, err
	}
	return enums, nil
}

// unifyFlags renames "FlagBits" enums to "Flags" and appends a type map
// from both native spellings to the display name, so references through
// either spelling resolve to the unified enum.
func (c *Context) unifyFlags(enums *ordered.Map[string, *ir.Enum]) error {
	tm := TypeMap{}
	renamed := make(map[string]bool, enums.Len())

	for native, e := range enums.All() {
		e.Name = strings.ReplaceAll(e.Name, "FlagBits", "Flags")
		e.NativeName = strings.ReplaceAll(e.NativeName, "FlagBits", "Flags")

		if renamed[e.NativeName] {
			return &ir.DuplicateError{Category: ir.CategoryEnum, NativeName: e.NativeName}
		}
		renamed[e.NativeName] = true

		tm[e.NativeName] = e.Name
		if native != e.NativeName {
			tm[native] = e.Name
		}
	}

	c.TypeMaps.Append(tm)
	return nil
}
