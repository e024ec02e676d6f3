package convert

import (
	"strings"

	"github.com/samber/lo"

	"github.com/skdltmxn/khronos-ir/internal/ordered"
	"github.com/skdltmxn/khronos-ir/ir"
	"github.com/skdltmxn/khronos-ir/naming"
	"github.com/skdltmxn/khronos-ir/registry"
)

func (c *Context) convertFunctions(spec *registry.Specification) (*ordered.Map[string, *ir.Function], error) {
	functions := ordered.New[string, *ir.Function](len(spec.Commands))

	for _, cmd := range spec.Commands {
		fn := &ir.Function{
			Name:       naming.Translate(cmd.Name, c.Prefix),
			NativeName: cmd.Name,
			ReturnType: ConvertType(cmd.ReturnType),
			Parameters: lo.Map(cmd.Parameters, func(p registry.ParameterDefinition, _ int) ir.Parameter {
				return ir.Parameter{
					Name:  p.Name,
					Type:  ConvertType(p.Type),
					Flow:  convertFlow(p.Modifier),
					Count: parameterCount(p),
				}
			}),
		}

		if err := functions.Insert(cmd.Name, fn); err != nil {
			return nil, &ir.DuplicateError{Category: ir.CategoryFunction, NativeName: cmd.Name}
		}
	}

	return functions, nil
}

// parameterCount differs from the member rule: a literal count is kept
// even when it is 1, and a symbolic len may list several expressions.
func parameterCount(p registry.ParameterDefinition) *ir.Count {
	switch {
	case p.IsNullTerminated:
		return nil
	case p.ElementCountSymbolic != "":
		return ir.NewSymbolicCount(strings.Split(p.ElementCountSymbolic, ",")...)
	default:
		return ir.NewStaticCount(p.ElementCount)
	}
}

func convertFlow(m registry.ParameterModifier) ir.FlowDirection {
	switch m {
	case registry.ModifierOut:
		return ir.FlowOut
	case registry.ModifierRef:
		return ir.FlowRef
	default:
		return ir.FlowIn
	}
}
