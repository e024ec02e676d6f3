package main

import (
	"fmt"
	"strings"

	"github.com/skdltmxn/khronos-ir/ir"
)

func formatType(t ir.Type) string {
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteString(strings.Repeat("*", t.IndirectionLevels))
	for _, dim := range t.ArrayDimensions {
		fmt.Fprintf(&b, "[%s]", dim)
	}
	return b.String()
}

func printFields(s *ir.Struct, indent string) {
	for i := range s.Fields {
		f := &s.Fields[i]

		fmt.Fprintf(output, "%s%-32s %s", indent, f.Name, formatType(f.Type))
		if f.Count != nil {
			fmt.Fprintf(output, " count=%s", f.Count)
		}
		if off, ok := f.Offset(); ok {
			fmt.Fprintf(output, " offset=%d", off)
		}
		if f.DefaultAssignment != "" {
			fmt.Fprintf(output, " default=%s", f.DefaultAssignment)
		}
		fmt.Fprintln(output)
	}
}

func printParameters(fn *ir.Function, indent string) {
	for _, p := range fn.Parameters {
		fmt.Fprintf(output, "%s%-4s %-32s %s", indent, p.Flow, p.Name, formatType(p.Type))
		if p.Count != nil {
			fmt.Fprintf(output, " count=%s", p.Count)
		}
		fmt.Fprintln(output)
	}
}

func printTokens(e *ir.Enum, indent string) {
	for _, t := range e.Tokens {
		fmt.Fprintf(output, "%s%-40s = %s\n", indent, t.Name, t.Value)
	}
}

func printStructDetail(s *ir.Struct) {
	fmt.Fprintf(output, "Struct:\n")
	fmt.Fprintf(output, "  Name: %s\n", s.Name)
	fmt.Fprintf(output, "  Native: %s\n", s.NativeName)
	if s.HasAttribute(ir.AttrExplicitLayout) {
		fmt.Fprintf(output, "  Layout: explicit\n")
	}
	fmt.Fprintf(output, "  Fields: %d\n", len(s.Fields))
	printFields(s, "    ")
	fmt.Fprintln(output)
}

func printFunctionDetail(fn *ir.Function) {
	fmt.Fprintf(output, "Function:\n")
	fmt.Fprintf(output, "  Name: %s\n", fn.Name)
	fmt.Fprintf(output, "  Native: %s\n", fn.NativeName)
	fmt.Fprintf(output, "  Returns: %s\n", formatType(fn.ReturnType))
	fmt.Fprintf(output, "  Parameters: %d\n", len(fn.Parameters))
	printParameters(fn, "    ")
	fmt.Fprintln(output)
}

func printEnumDetail(e *ir.Enum) {
	fmt.Fprintf(output, "Enum:\n")
	fmt.Fprintf(output, "  Name: %s\n", e.Name)
	fmt.Fprintf(output, "  Native: %s\n", e.NativeName)
	fmt.Fprintf(output, "  Flags: %v\n", e.IsFlags())
	fmt.Fprintf(output, "  Tokens: %d\n", len(e.Tokens))
	printTokens(e, "    ")
	fmt.Fprintln(output)
}

func printConstantDetail(k *ir.Constant) {
	fmt.Fprintf(output, "Constant:\n")
	fmt.Fprintf(output, "  Name: %s\n", k.Name)
	fmt.Fprintf(output, "  Native: %s\n", k.NativeName)
	fmt.Fprintf(output, "  Value: %s\n", k.Value)
	fmt.Fprintf(output, "  Type: %s\n", k.Type.Name)
	fmt.Fprintf(output, "  Category: %s\n", k.ExtensionName)
	fmt.Fprintln(output)
}
