package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/skdltmxn/khronos-ir/internal/ordered"
	"github.com/skdltmxn/khronos-ir/ir"
	"github.com/skdltmxn/khronos-ir/naming"
	"github.com/skdltmxn/khronos-ir/registry"
)

// Field names and types of converted handles.
const (
	handleField           = "Handle"
	dispatchableHandle    = "nint"
	nonDispatchableHandle = "ulong"
)

// convertStructs builds the structure dictionary: structures first, then
// handles, then unions, all keyed by native name.
func (c *Context) convertStructs(spec *registry.Specification) (*ordered.Map[string, *ir.Struct], error) {
	n := len(spec.Structures) + len(spec.Handles) + len(spec.Unions)
	structs := ordered.New[string, *ir.Struct](n)

	add := func(s *ir.Struct) error {
		if err := structs.Insert(s.NativeName, s); err != nil {
			return &ir.DuplicateError{Category: ir.CategoryStruct, NativeName: s.NativeName}
		}
		return nil
	}

	for _, def := range spec.Structures {
		if err := add(c.convertStructure(def)); err != nil {
			return nil, err
		}
	}

	for _, def := range spec.Handles {
		if err := add(c.convertHandle(def)); err != nil {
			return nil, err
		}
	}

	for _, def := range spec.Unions {
		s, err := c.convertUnion(def)
		if err != nil {
			return nil, err
		}
		if err := add(s); err != nil {
			return nil, err
		}
	}

	return structs, nil
}

func (c *Context) convertStructure(def *registry.StructureDefinition) *ir.Struct {
	return &ir.Struct{
		Name:       naming.TranslateLite(def.Name, c.Prefix),
		NativeName: def.Name,
		Fields: lo.Map(def.Members, func(m registry.MemberSpec, _ int) ir.Field {
			return c.convertMember(m)
		}),
	}
}

func (c *Context) convertMember(m registry.MemberSpec) ir.Field {
	f := ir.Field{
		Name:       naming.Translate(m.Name, c.Prefix),
		NativeName: m.Name,
		NativeType: m.Type.String(),
		Type:       ConvertType(m.Type),
		Count:      memberCount(m),
		Doc:        m.Comment,
	}

	if m.Type.Name == c.structureTypeName() && m.LegalValues != "" {
		f.DefaultAssignment = c.defaultAssignment(m.LegalValues)
	}
	return f
}

// defaultAssignment renders the first legal value of a discriminator
// member as "StructureType.Token".
func (c *Context) defaultAssignment(values string) string {
	first, _, _ := strings.Cut(values, ",")
	first = strings.TrimSpace(first)

	enum := naming.TranslateLite(c.structureTypeName(), c.Prefix)
	token := naming.TrimToken(naming.Translate(first, c.Prefix), enum)
	return enum + "." + token
}

func memberCount(m registry.MemberSpec) *ir.Count {
	switch {
	case m.ElementCountSymbolic != "":
		return ir.NewSymbolicCount(m.ElementCountSymbolic)
	case m.ElementCount != 1:
		return ir.NewStaticCount(m.ElementCount)
	default:
		return nil
	}
}

func (c *Context) convertHandle(def *registry.HandleDefinition) *ir.Struct {
	typ := nonDispatchableHandle
	if def.CanBeDispatched {
		typ = dispatchableHandle
	}

	return &ir.Struct{
		Name:       naming.TranslateLite(def.Name, c.Prefix),
		NativeName: def.Name,
		Fields: []ir.Field{{
			Name: handleField,
			Type: ir.Type{Name: typ},
		}},
	}
}

// convertUnion lays out a union explicitly. Repeated members are unrolled
// into one field per element at consecutive offsets; every other member
// sits at offset 0.
func (c *Context) convertUnion(def *registry.StructureDefinition) (*ir.Struct, error) {
	s := &ir.Struct{
		Name:       naming.TranslateLite(def.Name, c.Prefix),
		NativeName: def.Name,
		Attributes: []ir.Attribute{{Name: ir.AttrExplicitLayout}},
	}

	for _, m := range def.Members {
		name := naming.Translate(m.Name, c.Prefix)

		if m.ElementCount <= 1 {
			f := c.convertMember(m)
			f.Attributes = append(f.Attributes, offsetAttribute(0))
			s.Fields = append(s.Fields, f)
			continue
		}

		size, err := c.elementSize(m.Type)
		if err != nil {
			return nil, fmt.Errorf("convert: union %s member %s: %w", def.Name, m.Name, err)
		}

		elem := ConvertType(m.Type)
		elem.ArrayDimensions = nil
		for i := 0; i < m.ElementCount; i++ {
			s.Fields = append(s.Fields, ir.Field{
				Name:       fmt.Sprintf("%s_%d", name, i),
				NativeName: m.Name,
				NativeType: m.Type.String(),
				Type:       elem,
				Doc:        m.Comment,
				Attributes: []ir.Attribute{offsetAttribute(i * size)},
			})
		}
	}

	return s, nil
}

// elementSize sizes one element of an array member.
func (c *Context) elementSize(t registry.TypeSpec) (int, error) {
	if t.PointerIndirection > 0 {
		return pointerSize, nil
	}
	return c.SizeOf(t.Name)
}

func offsetAttribute(offset int) ir.Attribute {
	return ir.Attribute{
		Name:      ir.AttrFieldOffset,
		Arguments: []string{strconv.Itoa(offset)},
	}
}
